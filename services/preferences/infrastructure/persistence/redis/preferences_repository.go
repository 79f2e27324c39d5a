package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ghuser/assettrack/pkg/cache"
	"github.com/ghuser/assettrack/services/preferences/domain/models"
	"github.com/ghuser/assettrack/services/preferences/domain/repositories"
)

const (
	keyPrefix = "preferences"

	fieldTheme     = "theme"
	fieldLogo      = "logo"
	fieldUpdatedAt = "updated_at"
)

// PreferencesRepository stores preferences as a Redis hash per owner.
// Key format: "preferences:{owner}"
type PreferencesRepository struct {
	client *cache.RedisClient
}

var _ repositories.PreferencesRepository = (*PreferencesRepository)(nil)

func NewPreferencesRepository(client *cache.RedisClient) *PreferencesRepository {
	return &PreferencesRepository{client: client}
}

// Get reads the owner's hash. Missing or unknown fields fall back to defaults.
func (r *PreferencesRepository) Get(ctx context.Context, owner string) (models.Preferences, error) {
	vals, err := r.client.Client().HGetAll(ctx, r.key(owner)).Result()
	if err != nil {
		return models.Preferences{}, fmt.Errorf("preferences get: %w", err)
	}

	p := models.Default()
	if theme, err := models.NewTheme(vals[fieldTheme]); err == nil {
		p.Theme = theme
	}
	p.Logo = models.Logo(vals[fieldLogo])
	return p, nil
}

func (r *PreferencesRepository) SaveTheme(ctx context.Context, owner string, theme models.Theme) error {
	return r.set(ctx, owner, fieldTheme, theme.String())
}

func (r *PreferencesRepository) SaveLogo(ctx context.Context, owner string, logo models.Logo) error {
	return r.set(ctx, owner, fieldLogo, logo.String())
}

func (r *PreferencesRepository) ClearLogo(ctx context.Context, owner string) error {
	key := r.key(owner)
	pipe := r.client.Client().TxPipeline()
	pipe.HDel(ctx, key, fieldLogo)
	pipe.HSet(ctx, key, fieldUpdatedAt, time.Now().UTC().Format(time.RFC3339Nano))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("preferences clear logo: %w", err)
	}
	return nil
}

func (r *PreferencesRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

// set writes one field plus updated_at in a single MULTI/EXEC.
func (r *PreferencesRepository) set(ctx context.Context, owner, field, value string) error {
	key := r.key(owner)
	_, err := r.client.Client().TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, key,
			field, value,
			fieldUpdatedAt, time.Now().UTC().Format(time.RFC3339Nano),
		)
		return nil
	})
	if err != nil {
		return fmt.Errorf("preferences set %s: %w", field, err)
	}
	return nil
}

func (r *PreferencesRepository) key(owner string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, owner)
}
