package recipe

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	recipeService "smart-recipe-generator/internal/core/recipe"
	"smart-recipe-generator/internal/pkg/common"
)

// Handler serves the recipe search endpoint.
type Handler struct {
	pipeline *recipeService.Service
}

// NewHandler creates a Handler.
func NewHandler(pipeline *recipeService.Service) *Handler {
	return &Handler{pipeline: pipeline}
}

// searchRequest is the JSON body of POST /api/v1/recipes/search.
type searchRequest struct {
	Ingredients    []string `json:"ingredients" binding:"required"`
	DietTags       []string `json:"dietTags"`
	MaxTimeMinutes int      `json:"maxTimeMinutes"`
	Difficulty     string   `json:"difficulty"`
	Cuisine        string   `json:"cuisine"`
	Servings       int      `json:"servings"`
}

// HandleSearch runs the retrieval pipeline for one query.
func (h *Handler) HandleSearch(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
	}

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("invalid search request body",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "request body is not a valid search query",
			Details: err.Error(),
		})
		return
	}

	common.LogInfo("recipe search request",
		zap.Int("ingredients", len(req.Ingredients)),
		zap.String("cuisine", req.Cuisine),
		zap.String("difficulty", req.Difficulty),
		zap.Int("max_time_minutes", req.MaxTimeMinutes),
		zap.String("request_id", requestID),
	)

	resp, err := h.pipeline.Search(c.Request.Context(), &recipeService.SearchRequest{
		Ingredients:    req.Ingredients,
		DietTags:       req.DietTags,
		MaxTimeMinutes: req.MaxTimeMinutes,
		Difficulty:     req.Difficulty,
		Cuisine:        req.Cuisine,
		Servings:       req.Servings,
	})
	if err != nil {
		h.writeError(c, err, requestID)
		return
	}

	common.LogInfo("recipe search completed",
		zap.Int("total", resp.Metadata.TotalRecipes),
		zap.String("strategy", resp.Metadata.Strategy),
		zap.String("request_id", requestID),
	)
	c.JSON(http.StatusOK, resp)
}

// writeError maps pipeline errors onto HTTP responses. Unknown errors become
// a generic 500 so internals never leak.
func (h *Handler) writeError(c *gin.Context, err error, requestID string) {
	var ce *common.CustomError
	if errors.As(err, &ce) {
		common.LogWarn("recipe search rejected",
			zap.String("code", ce.Code),
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(ce.Status, common.ErrorResponse{
			Code:    ce.Code,
			Message: ce.Message,
		})
		return
	}

	common.LogError("recipe search failed",
		zap.Error(err),
		zap.String("request_id", requestID),
	)
	c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Code:    common.ErrCodeInternalError,
		Message: "internal server error",
	})
}
