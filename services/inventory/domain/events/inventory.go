package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicInventoryMutated is the Watermill topic published after every mutation
// attempt, whether or not it applied.
const TopicInventoryMutated = "inventory.mutated"

// Operation names one mutation engine operation.
type Operation string

const (
	OpAddBlock    Operation = "add_block"
	OpEditBlock   Operation = "edit_block"
	OpDeleteBlock Operation = "delete_block"
	OpAddRoom     Operation = "add_room"
	OpEditRoom    Operation = "edit_room"
	OpDeleteRoom  Operation = "delete_room"
	OpAddItem     Operation = "add_item"
	OpEditItem    Operation = "edit_item"
	OpDeleteItem  Operation = "delete_item"
	OpReset       Operation = "reset"
)

// Outcome records whether a mutation changed the tree.
type Outcome string

const (
	OutcomeApplied Outcome = "applied"
	// OutcomeNoop means the target id was not present; the tree is unchanged.
	OutcomeNoop Outcome = "noop"
)

// InventoryMutatedEvent describes one mutation attempt.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicInventoryMutated).
type InventoryMutatedEvent struct {
	EventID          uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version          int       `json:"version"`  // Schema version; increment on breaking changes
	Operation        Operation `json:"operation"`
	Outcome          Outcome   `json:"outcome"`
	BlockID          string    `json:"block_id,omitempty"`
	RoomID           string    `json:"room_id,omitempty"`
	ItemID           string    `json:"item_id,omitempty"`
	InventoryVersion uint64    `json:"inventory_version"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// OutcomeOf maps an applied flag to an Outcome.
func OutcomeOf(applied bool) Outcome {
	if applied {
		return OutcomeApplied
	}
	return OutcomeNoop
}
