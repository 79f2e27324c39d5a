package memory

import (
	"context"
	"sync"

	"github.com/ghuser/assettrack/services/preferences/domain/models"
	"github.com/ghuser/assettrack/services/preferences/domain/repositories"
)

// PreferencesRepository keeps preferences in process memory. Used when no
// Redis URL is configured; values are lost on restart.
type PreferencesRepository struct {
	mu    sync.RWMutex
	prefs map[string]models.Preferences
}

var _ repositories.PreferencesRepository = (*PreferencesRepository)(nil)

func NewPreferencesRepository() *PreferencesRepository {
	return &PreferencesRepository{prefs: make(map[string]models.Preferences)}
}

func (r *PreferencesRepository) Get(_ context.Context, owner string) (models.Preferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.prefs[owner]; ok {
		return p, nil
	}
	return models.Default(), nil
}

func (r *PreferencesRepository) SaveTheme(_ context.Context, owner string, theme models.Theme) error {
	r.update(owner, func(p *models.Preferences) { p.Theme = theme })
	return nil
}

func (r *PreferencesRepository) SaveLogo(_ context.Context, owner string, logo models.Logo) error {
	r.update(owner, func(p *models.Preferences) { p.Logo = logo })
	return nil
}

func (r *PreferencesRepository) ClearLogo(_ context.Context, owner string) error {
	r.update(owner, func(p *models.Preferences) { p.Logo = "" })
	return nil
}

// Ping always succeeds.
func (r *PreferencesRepository) Ping(_ context.Context) error { return nil }

func (r *PreferencesRepository) update(owner string, fn func(*models.Preferences)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.prefs[owner]
	if !ok {
		p = models.Default()
	}
	fn(&p)
	r.prefs[owner] = p
}
