// Package subscribers holds the inventory's event consumers.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/assettrack/pkg/logger"
	"github.com/ghuser/assettrack/services/inventory/domain/events"
)

// Subscriber is the subset of the event bus needed to register handlers.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// InventoryMutatedHandler feeds the operation log and flags mutations that
// addressed ids which no longer exist.
type InventoryMutatedHandler struct {
	oplog *OperationLog
	log   logger.Logger
}

func NewInventoryMutatedHandler(oplog *OperationLog, log logger.Logger) *InventoryMutatedHandler {
	return &InventoryMutatedHandler{oplog: oplog, log: log}
}

// Handle decodes one InventoryMutatedEvent.
func (h *InventoryMutatedHandler) Handle(ctx context.Context, msg *message.Message) error {
	var evt events.InventoryMutatedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode %s: %w", events.TopicInventoryMutated, err)
	}

	h.oplog.Append(evt)

	if evt.Outcome == events.OutcomeNoop {
		h.log.WarnContext(ctx, "mutation targeted a missing entity; inventory unchanged",
			"operation", evt.Operation,
			"block_id", evt.BlockID,
			"room_id", evt.RoomID,
			"item_id", evt.ItemID,
			"inventory_version", evt.InventoryVersion,
		)
		return nil
	}
	h.log.DebugContext(ctx, "inventory mutated",
		"operation", evt.Operation,
		"inventory_version", evt.InventoryVersion,
	)
	return nil
}

// Register subscribes h to the inventory topic and logs handler failures
// until the subscription ends.
func Register(ctx context.Context, bus Subscriber, h *InventoryMutatedHandler) error {
	errCh, err := bus.Subscribe(ctx, events.TopicInventoryMutated, h.Handle)
	if err != nil {
		return fmt.Errorf("subscribe operation log: %w", err)
	}
	go func() {
		for err := range errCh {
			h.log.ErrorContext(ctx, "operation log handler failed", "error", err)
		}
	}()
	return nil
}
