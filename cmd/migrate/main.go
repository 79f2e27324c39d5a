package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ghuser/assettrack/migrations/preferences"
	"github.com/ghuser/assettrack/pkg/config"
	"github.com/ghuser/assettrack/pkg/database"
	"github.com/ghuser/assettrack/pkg/logger"
	"github.com/ghuser/assettrack/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	log := logger.New(cfg)
	ctx := context.Background()

	db, err := database.Open(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close() //nolint:errcheck

	if err := migrator.RunMigrations(ctx, db, preferences.FS); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: deferred close is best-effort
	}
	log.Info("migrations applied")
}
