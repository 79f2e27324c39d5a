package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/ghuser/assettrack/migrations/preferences"
	"github.com/ghuser/assettrack/pkg/app"
	"github.com/ghuser/assettrack/pkg/cache"
	"github.com/ghuser/assettrack/pkg/config"
	"github.com/ghuser/assettrack/pkg/database"
	"github.com/ghuser/assettrack/pkg/events"
	"github.com/ghuser/assettrack/pkg/httpx"
	"github.com/ghuser/assettrack/pkg/logger"
	"github.com/ghuser/assettrack/pkg/migrator"
	"github.com/ghuser/assettrack/pkg/telemetry"
	inventoryApi "github.com/ghuser/assettrack/services/inventory/application/api"
	preferencesApi "github.com/ghuser/assettrack/services/preferences/application/api"
	preferencesSvcs "github.com/ghuser/assettrack/services/preferences/application/services"
)

// @title			Campus Inventory API
// @version		1.0
// @description	Tracks blocks, rooms and items across a campus with derived asset values.
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
// @host			localhost:8080
// @BasePath		/api
// @schemes		http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Telemetry: OTel tracing + metrics
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	// Crash reporting is optional: log and continue on failure.
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	metrics, err := telemetry.NewInventoryMetrics(otel.GetMeterProvider())
	if err != nil {
		log.Error("failed to create inventory metrics", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	switch {
	case errors.Is(err, cache.ErrNotConfigured):
		log.Info("REDIS_URL not set, preferences are kept in memory")
	case err != nil:
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	default:
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")
	}

	var db *database.Database
	if cfg.DatabaseURL != "" {
		db, err = database.Open(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close() //nolint:errcheck

		if cfg.MigrateOnStart {
			if err := migrator.RunMigrations(ctx, db, preferences.FS); err != nil {
				log.Error("failed to run migrations", "error", err)
				os.Exit(1)
			}
		}
	}

	appConfig := &app.Application{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		DB:       db,
		Metrics:  metrics,
	}
	prefs := preferencesSvcs.New(appConfig)

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RateLimitPerMinute: cfg.RateLimitPerMinute,
			MaxBodyBytes:       int64(cfg.LogoMaxBytes) + 64<<10,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Preferences: prefs.Preferences,
		EventBus:    eventBus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)

	var routeErr error
	r.Route("/api", func(r chi.Router) {
		routeErr = registerRoutes(ctx, r, appConfig, prefs)
	})
	if routeErr != nil {
		log.Error("failed to register routes", "error", routeErr)
		os.Exit(1)
	}

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	stop()
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
func registerRoutes(ctx context.Context, r chi.Router, a *app.Application, prefs *preferencesSvcs.Services) error {
	if err := inventoryApi.InventoryRoutes(ctx, r, a); err != nil {
		return err
	}
	preferencesApi.PreferencesRoutes(r, prefs)
	return nil
}
