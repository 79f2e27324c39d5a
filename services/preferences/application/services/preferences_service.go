package services

import (
	"context"
	"fmt"

	"github.com/ghuser/assettrack/pkg/logger"
	"github.com/ghuser/assettrack/services/preferences/domain/models"
	"github.com/ghuser/assettrack/services/preferences/domain/repositories"
)

// DefaultOwner keys the single preference record of an unauthenticated deployment.
const DefaultOwner = "default"

// PreferencesService reads and updates presentation preferences.
type PreferencesService struct {
	repo         repositories.PreferencesRepository
	owner        string
	logoMaxBytes int
	log          logger.Logger
}

func NewPreferencesService(repo repositories.PreferencesRepository, logoMaxBytes int, log logger.Logger) *PreferencesService {
	return &PreferencesService{repo: repo, owner: DefaultOwner, logoMaxBytes: logoMaxBytes, log: log}
}

func (s *PreferencesService) Get(ctx context.Context) (models.Preferences, error) {
	p, err := s.repo.Get(ctx, s.owner)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("get preferences: %w", err)
	}
	return p, nil
}

// SetTheme validates and stores theme.
func (s *PreferencesService) SetTheme(ctx context.Context, theme string) (models.Preferences, error) {
	t, err := models.NewTheme(theme)
	if err != nil {
		return models.Preferences{}, err
	}
	if err := s.repo.SaveTheme(ctx, s.owner, t); err != nil {
		return models.Preferences{}, fmt.Errorf("save theme: %w", err)
	}
	s.log.InfoContext(ctx, "theme changed", "theme", t.String())
	return s.Get(ctx)
}

// ToggleTheme switches between light and dark.
func (s *PreferencesService) ToggleTheme(ctx context.Context) (models.Preferences, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return models.Preferences{}, err
	}
	return s.SetTheme(ctx, p.Theme.Toggle().String())
}

// SetLogo validates and stores a data-URL logo.
func (s *PreferencesService) SetLogo(ctx context.Context, dataURL string) (models.Preferences, error) {
	logo, err := models.NewLogo(dataURL, s.logoMaxBytes)
	if err != nil {
		return models.Preferences{}, err
	}
	if err := s.repo.SaveLogo(ctx, s.owner, logo); err != nil {
		return models.Preferences{}, fmt.Errorf("save logo: %w", err)
	}
	s.log.InfoContext(ctx, "logo updated", "bytes", len(dataURL))
	return s.Get(ctx)
}

// ClearLogo restores the default logo.
func (s *PreferencesService) ClearLogo(ctx context.Context) (models.Preferences, error) {
	if err := s.repo.ClearLogo(ctx, s.owner); err != nil {
		return models.Preferences{}, fmt.Errorf("clear logo: %w", err)
	}
	return s.Get(ctx)
}

// Ping probes the backing store.
func (s *PreferencesService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
