package services

import (
	"context"

	"github.com/ghuser/assettrack/pkg/app"
	"github.com/ghuser/assettrack/services/inventory/infrastructure/persistence/memory"
	"github.com/ghuser/assettrack/services/inventory/infrastructure/seed"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Inventory *InventoryService
}

// New loads the configured seed and wires the inventory service with the
// shared infrastructure from the Application container.
func New(ctx context.Context, a *app.Application) (*Services, error) {
	loader, err := seed.NewLoader(ctx, a.Config.SeedFile, seed.S3Config{
		Region:    a.Config.SeedS3Region,
		Endpoint:  a.Config.SeedS3Endpoint,
		PathStyle: a.Config.SeedS3PathStyle,
	})
	if err != nil {
		return nil, err
	}

	initial, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	var bus Publisher
	if a.EventBus != nil {
		bus = a.EventBus
	}

	repo := memory.NewInventoryRepository(initial)
	return &Services{
		Inventory: NewInventoryService(repo, bus, a.Metrics, a.Logger.With("service", "inventory"), loader.Load),
	}, nil
}
