package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-recipe-generator/internal/api"
	"smart-recipe-generator/internal/core/ai/cache"
	"smart-recipe-generator/internal/infrastructure/config"
	"smart-recipe-generator/internal/infrastructure/store"
	"smart-recipe-generator/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("configuration loaded",
		zap.String("openrouter_model", cfg.OpenRouter.Model),
		zap.String("database", cfg.Database.Name),
	)

	recipeStore, err := store.NewRecipeStore(cfg.Database)
	if err != nil {
		common.LogFatal("Failed to connect to recipe store", zap.Error(err))
	}

	// An empty store is useless for retrieval, so seed it on first boot.
	bootCtx, bootCancel := context.WithTimeout(context.Background(), 30*time.Second)
	count, err := recipeStore.Count(bootCtx)
	if err != nil {
		bootCancel()
		common.LogFatal("Failed to query recipe store", zap.Error(err))
	}
	if count == 0 {
		seeded, err := recipeStore.Seed(bootCtx)
		if err != nil {
			bootCancel()
			common.LogFatal("Failed to seed recipe store", zap.Error(err))
		}
		common.LogInfo("recipe store seeded on first boot", zap.Int("count", seeded))
	}
	bootCancel()

	cacheSvc := cache.NewService(cfg.Cache)
	defer cacheSvc.Close()

	router, err := api.SetupRouter(cfg, recipeStore, cacheSvc)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
