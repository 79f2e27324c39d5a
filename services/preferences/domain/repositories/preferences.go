package repositories

import (
	"context"

	"github.com/ghuser/assettrack/services/preferences/domain/models"
)

// PreferencesRepository persists presentation preferences per owner.
// Get returns models.Default() for owners that never saved anything.
type PreferencesRepository interface {
	Get(ctx context.Context, owner string) (models.Preferences, error)
	SaveTheme(ctx context.Context, owner string, theme models.Theme) error
	SaveLogo(ctx context.Context, owner string, logo models.Logo) error
	ClearLogo(ctx context.Context, owner string) error
	Ping(ctx context.Context) error
}
