package app

import (
	"github.com/ghuser/assettrack/pkg/cache"
	"github.com/ghuser/assettrack/pkg/config"
	"github.com/ghuser/assettrack/pkg/database"
	"github.com/ghuser/assettrack/pkg/events"
	"github.com/ghuser/assettrack/pkg/logger"
	"github.com/ghuser/assettrack/pkg/telemetry"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every service's route registration during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods;
// trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "room deleted", "room_id", id)
//	app.Logger.ErrorContext(ctx, "failed to publish", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient // nil when REDIS_URL is empty
	DB       *database.Database // nil when DATABASE_URL is empty
	Metrics  *telemetry.InventoryMetrics
}
