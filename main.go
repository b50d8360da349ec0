package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"kaapi/backend/internal/config"
	"kaapi/backend/internal/db"
	"kaapi/backend/internal/handler"
	kaapihttp "kaapi/backend/internal/http"
	"kaapi/backend/internal/logger"
	"kaapi/backend/internal/metrics"
	"kaapi/backend/internal/ratelimit"
	"kaapi/backend/internal/repository"
	"kaapi/backend/internal/service"
	"kaapi/backend/internal/service/ai"
	"kaapi/backend/pkg/snowflake"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(1); err != nil {
		logger.Error("failed to init id generator", "error", err)
		os.Exit(1)
	}
	metrics.Init()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.SeedSampleData(database); err != nil {
		logger.Error("failed to seed sample data", "error", err)
		os.Exit(1)
	}

	revenueRepo := repository.NewRevenueRepository(database)
	uploadRepo := repository.NewUploadRepository(database)
	insightsRepo := repository.NewInsightsRepository(database)

	var provider ai.Provider
	if cfg.AIAPIKey != "" {
		provider, err = ai.NewProvider(ai.Config{
			Provider: cfg.AIProvider,
			APIKey:   cfg.AIAPIKey,
			Model:    cfg.AIModel,
			BaseURL:  cfg.AIBaseURL,
		})
		if err != nil {
			logger.Error("failed to configure ai provider", "provider", cfg.AIProvider, "error", err)
			os.Exit(1)
		}
		logger.Info("ai provider configured", "provider", provider.Name(), "model", cfg.AIModel)
	} else {
		logger.Warn("no ai api key set, chat assistant disabled")
	}

	uploadService := service.NewUploadService(uploadRepo, revenueRepo, cfg.MaxUploadBytes)
	revenueService := service.NewRevenueService(revenueRepo)
	insightsService := service.NewInsightsService(insightsRepo)
	chatService := service.NewChatService(provider, ai.NewRateLimiter(ai.DefaultRateLimit))

	limiter := ratelimit.New()
	limiter.StartSweeper(ratelimit.DefaultSweepInterval)
	defer limiter.Stop()

	origins := []string{cfg.AppBaseURL}
	if cfg.AppBaseURL != "http://localhost:3000" {
		origins = append(origins, "http://localhost:3000")
	}

	e := kaapihttp.NewRouter(
		handler.NewUploadHandler(uploadService, cfg.MaxUploadBytes),
		handler.NewRevenueHandler(revenueService),
		handler.NewInsightsHandler(insightsService),
		handler.NewChatHandler(chatService),
		limiter,
		origins,
		cfg.StaticDir,
	)

	go func() {
		logger.Info("server listening", "addr", cfg.Addr)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}
