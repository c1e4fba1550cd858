package api

import (
	"context"
	"net/http"
	"time"

	adminHandler "smart-recipe-generator/internal/api/handlers/admin"
	"smart-recipe-generator/internal/api/handlers/health"
	recipeHandler "smart-recipe-generator/internal/api/handlers/recipe"
	"smart-recipe-generator/internal/api/middleware"
	"smart-recipe-generator/internal/core/ai/cache"
	"smart-recipe-generator/internal/core/ai/openrouter"
	recipeService "smart-recipe-generator/internal/core/recipe"
	"smart-recipe-generator/internal/infrastructure/config"
	"smart-recipe-generator/internal/infrastructure/store"
	"smart-recipe-generator/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// One search may include a generation call, so the request timeout
	// has to sit above the generation timeout.
	timeoutDuration = 120 * time.Second
	// 1MB is plenty for an ingredient list.
	maxBodySize = 1 << 20
)

// SetupRouter wires middleware, services and routes.
func SetupRouter(cfg *config.Config, recipeStore *store.RecipeStore, cacheSvc *cache.Service) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))
	router.Use(middleware.Deduplication(cfg))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cacheSvc.Enabled()),
		zap.String("model", cfg.OpenRouter.Model),
		zap.Duration("generation_timeout", cfg.OpenRouter.Timeout),
	)

	generator := openrouter.NewClient(cfg.OpenRouter, cacheSvc)
	pipeline := recipeService.NewService(recipeStore, generator, cfg.Pipeline, cfg.OpenRouter.Timeout)

	// Request timeout wrapper.
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
			})
			c.Abort()
			return
		}
	})

	router.GET("/health", health.HealthCheck(cfg))
	router.GET("/ready", health.ReadinessCheck(recipeStore))
	router.GET("/live", health.LivenessCheck)

	api := router.Group("/api/v1")
	{
		searchHandler := recipeHandler.NewHandler(pipeline)
		api.POST("/recipes/search", searchHandler.HandleSearch)

		seedHandler := adminHandler.NewHandler(recipeStore)
		api.POST("/admin/seed", seedHandler.HandleSeed)
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
