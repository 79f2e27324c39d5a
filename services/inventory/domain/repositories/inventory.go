package repositories

import (
	"context"

	"github.com/ghuser/assettrack/services/inventory/domain/models"
)

// Snapshot is an immutable view of the inventory at a given version.
type Snapshot struct {
	Inventory models.Inventory
	Version   uint64
}

// MutateFunc derives the next inventory from the current one. It must not
// modify current and reports whether anything changed.
type MutateFunc func(current models.Inventory) (next models.Inventory, applied bool)

// InventoryRepository owns the single current inventory tree.
// The domain layer owns this interface; infrastructure implements it.
type InventoryRepository interface {
	// Load returns the current snapshot.
	Load(ctx context.Context) (Snapshot, error)

	// Update runs fn against the current tree with writers serialized. When fn
	// applies, its result becomes current and the version is incremented.
	// The returned snapshot is the current one after the call.
	Update(ctx context.Context, fn MutateFunc) (Snapshot, bool, error)

	// Reset replaces the tree wholesale (seeding) and increments the version.
	Reset(ctx context.Context, inv models.Inventory) (Snapshot, error)
}
