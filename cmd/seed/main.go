package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"catalogapi.app/internal/app"
	"catalogapi.app/internal/config"
	"catalogapi.app/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	logger.NewWithLevel(logger.ParseLevel(os.Getenv("LOG_LEVEL"))).SetDefault()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	deps, err := app.NewDependencyContainer(app.DependencyConfig{
		Database: cfg.Database,
		Cache:    cfg.Cache,
		Log:      cfg.Log,
	}, cfg)
	if err != nil {
		slog.Error("Failed to initialize dependencies", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	result, err := app.SeedCatalog(ctx, cfg, deps)
	cancel()

	if cleanupErr := deps.Cleanup(); cleanupErr != nil {
		slog.Warn("Error releasing resources", "error", cleanupErr)
	}
	if err != nil {
		slog.Error("Error seeding database", "error", err)
		os.Exit(1)
	}

	slog.Info("Seed completed",
		"products", result.Products,
		"cache_purged", result.CachePurged,
		"cache_keys_deleted", result.CacheKeys)
}
