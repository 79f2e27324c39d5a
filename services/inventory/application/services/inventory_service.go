package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/assettrack/pkg/logger"
	"github.com/ghuser/assettrack/pkg/telemetry"
	inventorydomain "github.com/ghuser/assettrack/services/inventory/domain"
	"github.com/ghuser/assettrack/services/inventory/domain/events"
	"github.com/ghuser/assettrack/services/inventory/domain/models"
	"github.com/ghuser/assettrack/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/assettrack/services/inventory/domain/services"
)

const eventSchemaVersion = 1

// Publisher is the subset of the event bus the service needs.
type Publisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// SeedFunc produces the inventory installed by Reset.
type SeedFunc func(ctx context.Context) (models.Inventory, error)

// MutationResult reports the outcome of a mutation. Version is the inventory
// version after the call; it is unchanged when Applied is false.
type MutationResult struct {
	Applied bool
	Version uint64
}

// ItemFields is the caller-supplied payload for adding or editing an item.
type ItemFields struct {
	Name      string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// InventoryService owns the campus inventory. It validates caller input,
// runs the mutation engine inside the repository's write lock, then records
// the attempt in the operation log and metrics.
//
// A mutation whose target id is missing is not an error: it returns
// Applied=false and leaves the tree untouched.
//
// Writes and their events are serialized by writeMu, so events reach the
// operation log in inventory version order.
type InventoryService struct {
	writeMu sync.Mutex
	repo    repositories.InventoryRepository
	bus     Publisher
	metrics *telemetry.InventoryMetrics
	log     logger.Logger
	seed    SeedFunc
}

// NewInventoryService returns an InventoryService. bus and metrics may be nil.
func NewInventoryService(
	repo repositories.InventoryRepository,
	bus Publisher,
	metrics *telemetry.InventoryMetrics,
	log logger.Logger,
	seed SeedFunc,
) *InventoryService {
	return &InventoryService{repo: repo, bus: bus, metrics: metrics, log: log, seed: seed}
}

// Snapshot returns the whole tree with its version.
func (s *InventoryService) Snapshot(ctx context.Context) (repositories.Snapshot, error) {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return repositories.Snapshot{}, fmt.Errorf("load inventory: %w", err)
	}
	return snap, nil
}

// Stats returns the dashboard totals.
func (s *InventoryService) Stats(ctx context.Context) (domainsvcs.Stats, uint64, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return domainsvcs.Stats{}, 0, err
	}
	return domainsvcs.ComputeStats(snap.Inventory), snap.Version, nil
}

// BlockValues returns the per-block totals shown in the value chart.
func (s *InventoryService) BlockValues(ctx context.Context) ([]domainsvcs.BlockValue, uint64, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}
	return domainsvcs.BlockValues(snap.Inventory), snap.Version, nil
}

// View returns the filtered tree with each block's rooms sorted.
func (s *InventoryService) View(ctx context.Context, term string, sort domainsvcs.RoomSort) (models.Inventory, uint64, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return models.Inventory{}, 0, err
	}
	return domainsvcs.View(snap.Inventory, term, sort), snap.Version, nil
}

// Block returns one block.
func (s *InventoryService) Block(ctx context.Context, blockID models.BlockID) (models.Block, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return models.Block{}, err
	}
	b, ok := snap.Inventory.Block(blockID)
	if !ok {
		return models.Block{}, fmt.Errorf("%w: %s", inventorydomain.ErrBlockNotFound, blockID)
	}
	return b, nil
}

// Item returns one item.
func (s *InventoryService) Item(ctx context.Context, blockID models.BlockID, roomID models.RoomID, itemID models.ItemID) (models.Item, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return models.Item{}, err
	}
	if _, ok := snap.Inventory.Block(blockID); !ok {
		return models.Item{}, fmt.Errorf("%w: %s", inventorydomain.ErrBlockNotFound, blockID)
	}
	r, ok := snap.Inventory.Room(blockID, roomID)
	if !ok {
		return models.Item{}, fmt.Errorf("%w: %s", inventorydomain.ErrRoomNotFound, roomID)
	}
	it, ok := r.Item(itemID)
	if !ok {
		return models.Item{}, fmt.Errorf("%w: %s", inventorydomain.ErrItemNotFound, itemID)
	}
	return it, nil
}

// Items returns the items of one room narrowed by f.
func (s *InventoryService) Items(ctx context.Context, blockID models.BlockID, roomID models.RoomID, f domainsvcs.ItemFilter) ([]models.Item, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := snap.Inventory.Block(blockID); !ok {
		return nil, fmt.Errorf("%w: %s", inventorydomain.ErrBlockNotFound, blockID)
	}
	r, ok := snap.Inventory.Room(blockID, roomID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", inventorydomain.ErrRoomNotFound, roomID)
	}
	return domainsvcs.FilterItems(r.Items, f), nil
}

// AddBlock appends an empty block.
func (s *InventoryService) AddBlock(ctx context.Context, name string) (models.Block, MutationResult, error) {
	n, err := newName(name)
	if err != nil {
		return models.Block{}, MutationResult{}, err
	}
	var added models.Block
	res, err := s.mutate(ctx, target{op: events.OpAddBlock}, func(cur models.Inventory) (models.Inventory, bool) {
		var next models.Inventory
		next, added = domainsvcs.AddBlock(cur, n)
		return next, true
	})
	if err != nil {
		return models.Block{}, MutationResult{}, err
	}
	return added, res, nil
}

// EditBlock renames a block and returns it as of the reported version. The
// block is the zero value when the mutation did not apply.
func (s *InventoryService) EditBlock(ctx context.Context, blockID models.BlockID, name string) (models.Block, MutationResult, error) {
	n, err := newName(name)
	if err != nil {
		return models.Block{}, MutationResult{}, err
	}
	var edited models.Block
	res, err := s.mutate(ctx, target{op: events.OpEditBlock, block: blockID}, func(cur models.Inventory) (models.Inventory, bool) {
		next, ok := domainsvcs.EditBlock(cur, blockID, n)
		if ok {
			edited, _ = next.Block(blockID)
		}
		return next, ok
	})
	if err != nil {
		return models.Block{}, MutationResult{}, err
	}
	return edited, res, nil
}

// DeleteBlock removes a block with all its rooms and items.
func (s *InventoryService) DeleteBlock(ctx context.Context, blockID models.BlockID) (MutationResult, error) {
	return s.mutate(ctx, target{op: events.OpDeleteBlock, block: blockID}, func(cur models.Inventory) (models.Inventory, bool) {
		return domainsvcs.DeleteBlock(cur, blockID)
	})
}

// AddRoom appends an empty room to a block. The returned room is the zero
// value when the block does not exist.
func (s *InventoryService) AddRoom(ctx context.Context, blockID models.BlockID, name string) (models.Room, MutationResult, error) {
	n, err := newName(name)
	if err != nil {
		return models.Room{}, MutationResult{}, err
	}
	var added models.Room
	res, err := s.mutate(ctx, target{op: events.OpAddRoom, block: blockID}, func(cur models.Inventory) (models.Inventory, bool) {
		var (
			next models.Inventory
			ok   bool
		)
		next, added, ok = domainsvcs.AddRoom(cur, blockID, n)
		return next, ok
	})
	if err != nil {
		return models.Room{}, MutationResult{}, err
	}
	return added, res, nil
}

// EditRoom renames a room and returns it as of the reported version. The
// room is the zero value when the mutation did not apply.
func (s *InventoryService) EditRoom(ctx context.Context, blockID models.BlockID, roomID models.RoomID, name string) (models.Room, MutationResult, error) {
	n, err := newName(name)
	if err != nil {
		return models.Room{}, MutationResult{}, err
	}
	var edited models.Room
	res, err := s.mutate(ctx, target{op: events.OpEditRoom, block: blockID, room: roomID}, func(cur models.Inventory) (models.Inventory, bool) {
		next, ok := domainsvcs.EditRoom(cur, blockID, roomID, n)
		if ok {
			edited, _ = next.Room(blockID, roomID)
		}
		return next, ok
	})
	if err != nil {
		return models.Room{}, MutationResult{}, err
	}
	return edited, res, nil
}

// DeleteRoom removes a room with all its items.
func (s *InventoryService) DeleteRoom(ctx context.Context, blockID models.BlockID, roomID models.RoomID) (MutationResult, error) {
	return s.mutate(ctx, target{op: events.OpDeleteRoom, block: blockID, room: roomID}, func(cur models.Inventory) (models.Inventory, bool) {
		return domainsvcs.DeleteRoom(cur, blockID, roomID)
	})
}

// AddItem appends an item to a room. The returned item is the zero value
// when the room does not exist.
func (s *InventoryService) AddItem(ctx context.Context, blockID models.BlockID, roomID models.RoomID, f ItemFields) (models.Item, MutationResult, error) {
	in, err := newItemInput(f)
	if err != nil {
		return models.Item{}, MutationResult{}, err
	}
	var added models.Item
	res, err := s.mutate(ctx, target{op: events.OpAddItem, block: blockID, room: roomID}, func(cur models.Inventory) (models.Inventory, bool) {
		var (
			next models.Inventory
			ok   bool
		)
		next, added, ok = domainsvcs.AddItem(cur, blockID, roomID, in)
		return next, ok
	})
	if err != nil {
		return models.Item{}, MutationResult{}, err
	}
	return added, res, nil
}

// EditItem replaces the fields of an item, keeping its id.
func (s *InventoryService) EditItem(ctx context.Context, blockID models.BlockID, roomID models.RoomID, itemID models.ItemID, f ItemFields) (models.Item, MutationResult, error) {
	in, err := newItemInput(f)
	if err != nil {
		return models.Item{}, MutationResult{}, err
	}
	edited := models.Item{ID: itemID, Name: in.Name, Quantity: in.Quantity, UnitPrice: in.UnitPrice}
	res, err := s.mutate(ctx, target{op: events.OpEditItem, block: blockID, room: roomID, item: itemID}, func(cur models.Inventory) (models.Inventory, bool) {
		return domainsvcs.EditItem(cur, blockID, roomID, edited)
	})
	if err != nil {
		return models.Item{}, MutationResult{}, err
	}
	if !res.Applied {
		return models.Item{}, res, nil
	}
	return edited, res, nil
}

// DeleteItem removes an item.
func (s *InventoryService) DeleteItem(ctx context.Context, blockID models.BlockID, roomID models.RoomID, itemID models.ItemID) (MutationResult, error) {
	return s.mutate(ctx, target{op: events.OpDeleteItem, block: blockID, room: roomID, item: itemID}, func(cur models.Inventory) (models.Inventory, bool) {
		return domainsvcs.DeleteItem(cur, blockID, roomID, itemID)
	})
}

// Reset reinstalls the seed inventory.
func (s *InventoryService) Reset(ctx context.Context) (MutationResult, error) {
	inv, err := s.seed(ctx)
	if err != nil {
		return MutationResult{}, fmt.Errorf("load seed: %w", err)
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	snap, err := s.repo.Reset(ctx, inv)
	if err != nil {
		return MutationResult{}, fmt.Errorf("reset inventory: %w", err)
	}
	res := MutationResult{Applied: true, Version: snap.Version}
	s.record(ctx, target{op: events.OpReset}, res)
	return res, nil
}

// target identifies the entity a mutation addresses.
type target struct {
	op    events.Operation
	block models.BlockID
	room  models.RoomID
	item  models.ItemID
}

func (s *InventoryService) mutate(ctx context.Context, t target, fn repositories.MutateFunc) (MutationResult, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	snap, applied, err := s.repo.Update(ctx, fn)
	if err != nil {
		return MutationResult{}, fmt.Errorf("%s: %w", t.op, err)
	}
	res := MutationResult{Applied: applied, Version: snap.Version}
	s.record(ctx, t, res)
	return res, nil
}

// record publishes the operation-log event and counts the attempt. Publish
// failures are logged and reported, never returned: the mutation already
// happened.
func (s *InventoryService) record(ctx context.Context, t target, res MutationResult) {
	s.metrics.RecordMutation(ctx, string(t.op), res.Applied)

	if s.bus == nil {
		return
	}
	evt := events.InventoryMutatedEvent{
		EventID:          uuid.New(),
		Version:          eventSchemaVersion,
		Operation:        t.op,
		Outcome:          events.OutcomeOf(res.Applied),
		BlockID:          string(t.block),
		RoomID:           string(t.room),
		ItemID:           string(t.item),
		InventoryVersion: res.Version,
		OccurredAt:       time.Now().UTC(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to encode inventory event", "error", err, "operation", t.op)
		return
	}
	msg := message.NewMessage(evt.EventID.String(), payload)
	if err := s.bus.Publish(ctx, events.TopicInventoryMutated, msg); err != nil {
		s.log.ErrorContext(ctx, "failed to publish inventory event", "error", err, "operation", t.op)
		telemetry.CaptureError(ctx, err, "operation", string(t.op))
	}
}

func newName(s string) (models.Name, error) {
	n, err := models.NewName(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", inventorydomain.ErrInvalidName, err)
	}
	return n, nil
}

func newItemInput(f ItemFields) (models.ItemInput, error) {
	n, err := newName(f.Name)
	if err != nil {
		return models.ItemInput{}, err
	}
	in := models.ItemInput{Name: n, Quantity: f.Quantity, UnitPrice: f.UnitPrice}
	if err := domainsvcs.ValidateItemInput(in); err != nil {
		return models.ItemInput{}, err
	}
	return in, nil
}
