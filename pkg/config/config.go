package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP
	HTTPAddr string `conf:"default::8080,env:HTTP_ADDR"`
	// RateLimitPerMinute caps requests per client IP; 0 disables the limiter.
	RateLimitPerMinute int `conf:"default:100,env:RATE_LIMIT_PER_MINUTE"`

	// Preference store: Redis when REDIS_URL is set, otherwise the SQL database
	// at DATABASE_URL (postgres:// or sqlite:), otherwise process memory.
	RedisURL       string `conf:"env:REDIS_URL"`
	DatabaseURL    string `conf:"env:DATABASE_URL,mask"`
	MigrateOnStart bool   `conf:"default:true,env:MIGRATE_ON_START"`

	// Inventory
	// SeedFile is a YAML or TOML seed path or an s3://bucket/key URL; empty
	// loads the built-in campus dataset.
	SeedFile      string `conf:"env:SEED_FILE"`
	OpLogCapacity int    `conf:"default:200,env:OPLOG_CAPACITY"`

	// S3 settings apply only to s3:// seed locations.
	SeedS3Region    string `conf:"default:us-east-1,env:SEED_S3_REGION"`
	SeedS3Endpoint  string `conf:"env:SEED_S3_ENDPOINT"`
	SeedS3PathStyle bool   `conf:"default:false,env:SEED_S3_PATH_STYLE"`

	// Preferences
	LogoMaxBytes int `conf:"default:524288,env:LOGO_MAX_BYTES"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	LogFormat   string `conf:"default:json,enum:json|text,env:LOG_FORMAT"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// CORS: comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Observability
	ServiceName    string `conf:"default:assettrack,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`

	// TraceSampleRatio applies to root spans; children follow their parent.
	TraceSampleRatio float64 `conf:"default:1,env:OTEL_TRACE_SAMPLE_RATIO"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ValidateForProduction enforces security requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	for _, origin := range strings.Split(cfg.CORSAllowedOrigins, ",") {
		if strings.TrimSpace(origin) == "*" {
			errs = append(errs, "CORS_ALLOWED_ORIGINS must list explicit origins in production (got '*')")
			break
		}
	}

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if cfg.TraceSampleRatio < 0 || cfg.TraceSampleRatio > 1 {
		errs = append(errs, fmt.Sprintf("OTEL_TRACE_SAMPLE_RATIO must be within [0,1] (got %g)", cfg.TraceSampleRatio))
	}

	if cfg.OpLogCapacity <= 0 {
		errs = append(errs, fmt.Sprintf("OPLOG_CAPACITY must be positive (got %d)", cfg.OpLogCapacity))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
