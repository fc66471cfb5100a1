// Package main implements the entry point for the neurograph application
// shell, which bootstraps the anatomical knowledge graph and its review
// scheduler from a persisted snapshot or the bundled seed catalog.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/neurorad/neurograph/internal/config"
	"github.com/neurorad/neurograph/internal/platform/logger"
)

// main loads configuration, sets up logging, wires the services, and runs
// the startup contract.
func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		app.logger.Error("bootstrap failed", slog.String("error", err.Error()))
		log.Fatalf("Failed to bootstrap catalog: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and wires the
// application components. Returns the wired application and any
// initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		slog.String("log_level", cfg.Logging.Level),
		slog.String("storage_dir", cfg.Storage.Dir),
		slog.String("cache_name", cfg.Storage.CacheName),
		slog.String("seed_path", cfg.Catalog.SeedPath))

	return newApplication(cfg, appLogger), nil
}
