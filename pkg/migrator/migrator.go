package migrator

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/ghuser/assettrack/pkg/database"
)

// RunMigrations runs all pending goose migrations from files against db.
func RunMigrations(ctx context.Context, db *database.Database, files fs.FS) error {
	provider, err := goose.NewProvider(goose.Dialect(db.Dialect()), db.DB(), files)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to up migrations: %w", err)
	}
	return nil
}

// Version reports the highest applied migration version.
func Version(ctx context.Context, db *database.Database, files fs.FS) (int64, error) {
	provider, err := goose.NewProvider(goose.Dialect(db.Dialect()), db.DB(), files)
	if err != nil {
		return 0, fmt.Errorf("failed to create goose provider: %w", err)
	}
	return provider.GetDBVersion(ctx)
}
