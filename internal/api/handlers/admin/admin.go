package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smart-recipe-generator/internal/infrastructure/store"
	"smart-recipe-generator/internal/pkg/common"
)

// Handler serves administrative endpoints.
type Handler struct {
	store *store.RecipeStore
}

// NewHandler creates a Handler.
func NewHandler(s *store.RecipeStore) *Handler {
	return &Handler{store: s}
}

// HandleSeed replaces the stored recipe set with the embedded seed data.
func (h *Handler) HandleSeed(c *gin.Context) {
	count, err := h.store.Seed(c.Request.Context())
	if err != nil {
		common.LogError("seeding failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, common.ErrorResponse{
			Code:    common.ErrCodeStoreUnavailable,
			Message: "failed to seed recipe store",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"seeded": count,
	})
}
