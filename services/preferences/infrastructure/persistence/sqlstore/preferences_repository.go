// Package sqlstore keeps preferences in the preferences table of a PostgreSQL
// or SQLite database migrated with migrations/preferences.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ghuser/assettrack/pkg/database"
	"github.com/ghuser/assettrack/services/preferences/domain/models"
	"github.com/ghuser/assettrack/services/preferences/domain/repositories"
)

const (
	selectPreferences = `SELECT theme, logo FROM preferences WHERE owner = ?`
	upsertTheme       = `INSERT INTO preferences (owner, theme, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (owner) DO UPDATE SET theme = excluded.theme, updated_at = excluded.updated_at`
	upsertLogo = `INSERT INTO preferences (owner, logo, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (owner) DO UPDATE SET logo = excluded.logo, updated_at = excluded.updated_at`
	clearLogo = `UPDATE preferences SET logo = '', updated_at = ? WHERE owner = ?`
)

// PreferencesRepository implements repositories.PreferencesRepository on a SQL database.
type PreferencesRepository struct {
	db  *database.Database
	now func() time.Time
}

var _ repositories.PreferencesRepository = (*PreferencesRepository)(nil)

func NewPreferencesRepository(db *database.Database) *PreferencesRepository {
	return &PreferencesRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Get returns the owner's row, or defaults when there is none.
func (r *PreferencesRepository) Get(ctx context.Context, owner string) (models.Preferences, error) {
	var theme, logo string
	err := r.db.DB().QueryRowContext(ctx, r.db.Rebind(selectPreferences), owner).Scan(&theme, &logo)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Default(), nil
	}
	if err != nil {
		return models.Preferences{}, fmt.Errorf("query preferences: %w", err)
	}

	p := models.Default()
	if t, err := models.NewTheme(theme); err == nil {
		p.Theme = t
	}
	p.Logo = models.Logo(logo)
	return p, nil
}

func (r *PreferencesRepository) SaveTheme(ctx context.Context, owner string, theme models.Theme) error {
	if _, err := r.db.DB().ExecContext(ctx, r.db.Rebind(upsertTheme), owner, theme.String(), r.now()); err != nil {
		return fmt.Errorf("upsert theme: %w", err)
	}
	return nil
}

func (r *PreferencesRepository) SaveLogo(ctx context.Context, owner string, logo models.Logo) error {
	if _, err := r.db.DB().ExecContext(ctx, r.db.Rebind(upsertLogo), owner, logo.String(), r.now()); err != nil {
		return fmt.Errorf("upsert logo: %w", err)
	}
	return nil
}

// ClearLogo is a no-op for owners without a row.
func (r *PreferencesRepository) ClearLogo(ctx context.Context, owner string) error {
	if _, err := r.db.DB().ExecContext(ctx, r.db.Rebind(clearLogo), r.now(), owner); err != nil {
		return fmt.Errorf("clear logo: %w", err)
	}
	return nil
}

func (r *PreferencesRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
