package services

import (
	"github.com/ghuser/assettrack/pkg/app"
	"github.com/ghuser/assettrack/services/preferences/domain/repositories"
	"github.com/ghuser/assettrack/services/preferences/infrastructure/persistence/memory"
	"github.com/ghuser/assettrack/services/preferences/infrastructure/persistence/redis"
	"github.com/ghuser/assettrack/services/preferences/infrastructure/persistence/sqlstore"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Preferences *PreferencesService
}

// New picks the preference store: Redis when a client is configured, then the
// SQL database, then process memory.
func New(a *app.Application) *Services {
	var repo repositories.PreferencesRepository
	var backend string
	switch {
	case a.Redis != nil:
		repo = redis.NewPreferencesRepository(a.Redis)
		backend = "redis"
	case a.DB != nil:
		repo = sqlstore.NewPreferencesRepository(a.DB)
		backend = string(a.DB.Dialect())
	default:
		repo = memory.NewPreferencesRepository()
		backend = "memory"
	}

	log := a.Logger.With("service", "preferences")
	log.Info("preference store initialized", "backend", backend)
	return &Services{
		Preferences: NewPreferencesService(repo, a.Config.LogoMaxBytes, log),
	}
}
