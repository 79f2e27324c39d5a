package memory

import (
	"context"
	"sync"

	"github.com/ghuser/assettrack/services/inventory/domain/models"
	"github.com/ghuser/assettrack/services/inventory/domain/repositories"
)

// InventoryRepository implements repositories.InventoryRepository in process
// memory. Writers are serialized; readers get the current immutable root.
type InventoryRepository struct {
	mu      sync.RWMutex
	current models.Inventory
	version uint64
}

// compile-time interface check
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// NewInventoryRepository returns a repository holding initial at version 1.
func NewInventoryRepository(initial models.Inventory) *InventoryRepository {
	return &InventoryRepository{current: initial, version: 1}
}

// Load returns the current snapshot.
func (r *InventoryRepository) Load(_ context.Context) (repositories.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return repositories.Snapshot{Inventory: r.current, Version: r.version}, nil
}

// Update runs fn under the write lock. A context that is already done is
// rejected before fn runs.
func (r *InventoryRepository) Update(ctx context.Context, fn repositories.MutateFunc) (repositories.Snapshot, bool, error) {
	if err := ctx.Err(); err != nil {
		return repositories.Snapshot{}, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next, applied := fn(r.current)
	if applied {
		r.current = next
		r.version++
	}
	return repositories.Snapshot{Inventory: r.current, Version: r.version}, applied, nil
}

// Reset replaces the tree and bumps the version.
func (r *InventoryRepository) Reset(ctx context.Context, inv models.Inventory) (repositories.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return repositories.Snapshot{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = inv
	r.version++
	return repositories.Snapshot{Inventory: r.current, Version: r.version}, nil
}
