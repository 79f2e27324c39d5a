package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/shopspring/decimal"

	"github.com/ghuser/assettrack/pkg/logger"
	inventorydomain "github.com/ghuser/assettrack/services/inventory/domain"
	"github.com/ghuser/assettrack/services/inventory/domain/events"
	"github.com/ghuser/assettrack/services/inventory/domain/models"
	domainsvcs "github.com/ghuser/assettrack/services/inventory/domain/services"
	"github.com/ghuser/assettrack/services/inventory/infrastructure/persistence/memory"
	"github.com/ghuser/assettrack/services/inventory/infrastructure/seed"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.InventoryMutatedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, msgs ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	if topic != events.TopicInventoryMutated {
		return errors.New("unexpected topic " + topic)
	}
	for _, m := range msgs {
		var evt events.InventoryMutatedEvent
		if err := json.Unmarshal(m.Payload, &evt); err != nil {
			return err
		}
		p.events = append(p.events, evt)
	}
	return nil
}

func (p *recordingPublisher) last() events.InventoryMutatedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.events[len(p.events)-1]
}

func newTestService(t *testing.T) (*InventoryService, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{}
	load := func(context.Context) (models.Inventory, error) { return seed.Default(), nil }
	svc := NewInventoryService(memory.NewInventoryRepository(seed.Default()), pub, nil, logger.Nop(), load)
	return svc, pub
}

func TestInventoryService_AddBlock(t *testing.T) {
	svc, pub := newTestService(t)
	ctx := context.Background()

	b, res, err := svc.AddBlock(ctx, "  Block D - Library  ")
	if err != nil {
		t.Fatalf("AddBlock: %v", err)
	}
	if !res.Applied || res.Version != 2 {
		t.Errorf("unexpected result: %+v", res)
	}
	if b.Name != "Block D - Library" {
		t.Errorf("name not trimmed: %q", b.Name)
	}
	if len(b.Rooms) != 0 || b.Rooms == nil {
		t.Errorf("new block must have an empty room list: %+v", b.Rooms)
	}

	evt := pub.last()
	if evt.Operation != events.OpAddBlock || evt.Outcome != events.OutcomeApplied || evt.InventoryVersion != 2 {
		t.Errorf("unexpected event: %+v", evt)
	}
}

func TestInventoryService_ValidationRejectsBeforeEngine(t *testing.T) {
	svc, pub := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{"empty block name", func() error { _, _, err := svc.AddBlock(ctx, "   "); return err }, inventorydomain.ErrInvalidName},
		{"empty room name", func() error { _, _, err := svc.EditRoom(ctx, "block-1", "room-1-1", ""); return err }, inventorydomain.ErrInvalidName},
		{"negative quantity", func() error {
			_, _, err := svc.AddItem(ctx, "block-1", "room-1-1", ItemFields{Name: "Scales", Quantity: -1, UnitPrice: decimal.NewFromInt(5)})
			return err
		}, inventorydomain.ErrInvalidQuantity},
		{"negative price", func() error {
			_, _, err := svc.EditItem(ctx, "block-1", "room-1-1", "item-1-1-1", ItemFields{Name: "Microscopes", Quantity: 1, UnitPrice: decimal.NewFromInt(-5)})
			return err
		}, inventorydomain.ErrInvalidUnitPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	snap, _ := svc.Snapshot(ctx)
	if snap.Version != 1 {
		t.Errorf("rejected input changed version to %d", snap.Version)
	}
	if len(pub.events) != 0 {
		t.Errorf("rejected input published %d events", len(pub.events))
	}
}

func TestInventoryService_StaleReferenceIsNoop(t *testing.T) {
	svc, pub := newTestService(t)
	ctx := context.Background()

	res, err := svc.DeleteRoom(ctx, "block-1", "room-9-9")
	if err != nil {
		t.Fatalf("DeleteRoom: %v", err)
	}
	if res.Applied || res.Version != 1 {
		t.Errorf("expected no-op at version 1, got %+v", res)
	}

	evt := pub.last()
	if evt.Outcome != events.OutcomeNoop || evt.RoomID != "room-9-9" || evt.BlockID != "block-1" {
		t.Errorf("unexpected event: %+v", evt)
	}

	room, res, err := svc.AddRoom(ctx, "block-missing", "Annex")
	if err != nil {
		t.Fatalf("AddRoom: %v", err)
	}
	if res.Applied || room.ID != "" {
		t.Errorf("AddRoom on missing block must be a no-op: %+v %+v", res, room)
	}

	item, res, err := svc.EditItem(ctx, "block-1", "room-1-1", "item-missing", ItemFields{Name: "X", Quantity: 1, UnitPrice: decimal.NewFromInt(1)})
	if err != nil {
		t.Fatalf("EditItem: %v", err)
	}
	if res.Applied || item.ID != "" {
		t.Errorf("EditItem on missing item must be a no-op: %+v %+v", res, item)
	}
}

func TestInventoryService_ItemLifecycle(t *testing.T) {
	svc, pub := newTestService(t)
	ctx := context.Background()

	added, res, err := svc.AddItem(ctx, "block-2", "room-2-1", ItemFields{Name: "Pottery Wheels", Quantity: 6, UnitPrice: decimal.RequireFromString("420.50")})
	if err != nil || !res.Applied {
		t.Fatalf("AddItem: %+v %v", res, err)
	}

	stats, _, _ := svc.Stats(ctx)
	if !stats.TotalValue.Equal(decimal.RequireFromString("101373")) {
		t.Errorf("total after add: got %s, want 101373", stats.TotalValue)
	}

	edited, res, err := svc.EditItem(ctx, "block-2", "room-2-1", added.ID, ItemFields{Name: "Pottery Wheels", Quantity: 4, UnitPrice: decimal.RequireFromString("420.50")})
	if err != nil || !res.Applied {
		t.Fatalf("EditItem: %+v %v", res, err)
	}
	if edited.ID != added.ID || edited.Quantity != 4 {
		t.Errorf("unexpected edited item: %+v", edited)
	}

	res, err = svc.DeleteItem(ctx, "block-2", "room-2-1", added.ID)
	if err != nil || !res.Applied {
		t.Fatalf("DeleteItem: %+v %v", res, err)
	}
	if res.Version != 4 {
		t.Errorf("version: got %d, want 4", res.Version)
	}

	stats, _, _ = svc.Stats(ctx)
	if !stats.TotalValue.Equal(decimal.NewFromInt(98850)) {
		t.Errorf("total after round trip: got %s, want 98850", stats.TotalValue)
	}

	wantOps := []events.Operation{events.OpAddItem, events.OpEditItem, events.OpDeleteItem}
	if len(pub.events) != len(wantOps) {
		t.Fatalf("events: got %d, want %d", len(pub.events), len(wantOps))
	}
	for i, op := range wantOps {
		if pub.events[i].Operation != op {
			t.Errorf("event %d: got %s, want %s", i, pub.events[i].Operation, op)
		}
	}
}

func TestInventoryService_DeleteBlockIsTransitive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.DeleteBlock(ctx, "block-1"); err != nil {
		t.Fatalf("DeleteBlock: %v", err)
	}
	if _, err := svc.Items(ctx, "block-1", "room-1-1", domainsvcs.ItemFilter{}); !errors.Is(err, inventorydomain.ErrBlockNotFound) {
		t.Errorf("expected ErrBlockNotFound, got %v", err)
	}
	stats, _, _ := svc.Stats(ctx)
	if stats.BlockCount != 2 || stats.RoomCount != 3 || stats.ItemCount != 7 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestInventoryService_Items(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	minQty := int64(20)
	items, err := svc.Items(ctx, "block-1", "room-1-1", domainsvcs.ItemFilter{MinQty: &minQty})
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items with quantity >= 20, got %d", len(items))
	}

	if _, err := svc.Items(ctx, "block-1", "room-2-1", domainsvcs.ItemFilter{}); !errors.Is(err, inventorydomain.ErrRoomNotFound) {
		t.Errorf("room in another block: expected ErrRoomNotFound, got %v", err)
	}
}

func TestInventoryService_Block(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	b, err := svc.Block(ctx, "block-3")
	if err != nil {
		t.Fatalf("Block: %v", err)
	}
	if len(b.Rooms) != 2 {
		t.Errorf("rooms: got %d, want 2", len(b.Rooms))
	}
	if _, err := svc.Block(ctx, "block-9"); !errors.Is(err, inventorydomain.ErrBlockNotFound) {
		t.Errorf("expected ErrBlockNotFound, got %v", err)
	}
}

func TestInventoryService_Item(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	it, err := svc.Item(ctx, "block-1", "room-1-1", "item-1-1-1")
	if err != nil {
		t.Fatalf("Item: %v", err)
	}
	if it.Name != "Microscopes" || it.Quantity != 15 {
		t.Errorf("unexpected item: %+v", it)
	}

	tests := []struct {
		name    string
		blockID models.BlockID
		roomID  models.RoomID
		itemID  models.ItemID
		want    error
	}{
		{"missing block", "block-9", "room-1-1", "item-1-1-1", inventorydomain.ErrBlockNotFound},
		{"missing room", "block-1", "room-9", "item-1-1-1", inventorydomain.ErrRoomNotFound},
		{"room from another block", "block-2", "room-1-1", "item-1-1-1", inventorydomain.ErrRoomNotFound},
		{"missing item", "block-1", "room-1-1", "item-9", inventorydomain.ErrItemNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Item(ctx, tt.blockID, tt.roomID, tt.itemID); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInventoryService_EditReturnsRenamedEntity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	b, res, err := svc.EditBlock(ctx, "block-1", "  Block A - Life Sciences ")
	if err != nil {
		t.Fatalf("EditBlock: %v", err)
	}
	if !res.Applied || b.ID != "block-1" || b.Name != "Block A - Life Sciences" || len(b.Rooms) != 2 {
		t.Errorf("EditBlock returned %+v (%+v)", b, res)
	}

	r, res, err := svc.EditRoom(ctx, "block-1", "room-1-2", "Chemistry Lab (A-110)")
	if err != nil {
		t.Fatalf("EditRoom: %v", err)
	}
	if !res.Applied || r.ID != "room-1-2" || r.Name != "Chemistry Lab (A-110)" {
		t.Errorf("EditRoom returned %+v (%+v)", r, res)
	}

	b, res, err = svc.EditBlock(ctx, "block-9", "Nowhere")
	if err != nil {
		t.Fatalf("EditBlock noop: %v", err)
	}
	if res.Applied || b.ID != "" {
		t.Errorf("noop EditBlock returned %+v (%+v)", b, res)
	}
	r, res, err = svc.EditRoom(ctx, "block-2", "room-1-2", "Nowhere")
	if err != nil {
		t.Fatalf("EditRoom noop: %v", err)
	}
	if res.Applied || r.ID != "" {
		t.Errorf("noop EditRoom returned %+v (%+v)", r, res)
	}
}

func TestInventoryService_ConcurrentEventsFollowVersionOrder(t *testing.T) {
	svc, pub := newTestService(t)
	ctx := context.Background()

	const writers = 16
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_, _, _ = svc.AddBlock(ctx, fmt.Sprintf("Block %d", i))
			} else {
				_, _, _ = svc.EditBlock(ctx, "block-1", fmt.Sprintf("Block A %d", i))
			}
		}()
	}
	wg.Wait()

	pub.mu.Lock()
	defer pub.mu.Unlock()
	if len(pub.events) != writers {
		t.Fatalf("recorded %d events, want %d", len(pub.events), writers)
	}
	for i := 1; i < len(pub.events); i++ {
		if pub.events[i].InventoryVersion < pub.events[i-1].InventoryVersion {
			t.Fatalf("event %d has version %d after %d", i, pub.events[i].InventoryVersion, pub.events[i-1].InventoryVersion)
		}
	}
	if got := pub.events[len(pub.events)-1].InventoryVersion; got != writers+1 {
		t.Errorf("last version = %d, want %d", got, writers+1)
	}
}

func TestInventoryService_ViewAndChart(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	inv, version, err := svc.View(ctx, "lab", domainsvcs.RoomSort{Key: domainsvcs.SortByItemCount, Direction: domainsvcs.Descending})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if version != 1 {
		t.Errorf("version: got %d", version)
	}
	if len(inv.Blocks) != 2 {
		t.Fatalf("expected blocks A and C, got %d", len(inv.Blocks))
	}
	if inv.Blocks[0].Rooms[0].ID != "room-1-1" {
		t.Errorf("expected the 3-item physics lab first, got %s", inv.Blocks[0].Rooms[0].ID)
	}

	values, _, err := svc.BlockValues(ctx)
	if err != nil {
		t.Fatalf("BlockValues: %v", err)
	}
	if len(values) != 3 || values[0].Label != "A" {
		t.Errorf("unexpected chart values: %+v", values)
	}
}

func TestInventoryService_Reset(t *testing.T) {
	svc, pub := newTestService(t)
	ctx := context.Background()

	if _, err := svc.DeleteBlock(ctx, "block-3"); err != nil {
		t.Fatalf("DeleteBlock: %v", err)
	}
	res, err := svc.Reset(ctx)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if !res.Applied || res.Version != 3 {
		t.Errorf("unexpected result: %+v", res)
	}
	snap, _ := svc.Snapshot(ctx)
	if !snap.Inventory.Equal(seed.Default()) {
		t.Error("reset did not restore the seed")
	}
	if pub.last().Operation != events.OpReset {
		t.Errorf("expected reset event, got %s", pub.last().Operation)
	}
}

func TestInventoryService_ResetSeedError(t *testing.T) {
	seedErr := errors.New("seed unreadable")
	svc := NewInventoryService(memory.NewInventoryRepository(seed.Default()), nil, nil, logger.Nop(),
		func(context.Context) (models.Inventory, error) { return models.Inventory{}, seedErr })

	if _, err := svc.Reset(context.Background()); !errors.Is(err, seedErr) {
		t.Fatalf("expected seed error, got %v", err)
	}
}

func TestInventoryService_PublishFailureDoesNotFailMutation(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("bus closed")}
	svc := NewInventoryService(memory.NewInventoryRepository(seed.Default()), pub, nil, logger.Nop(),
		func(context.Context) (models.Inventory, error) { return seed.Default(), nil })

	_, res, err := svc.EditBlock(context.Background(), "block-1", "Block A - Life Sciences")
	if err != nil {
		t.Fatalf("EditBlock: %v", err)
	}
	if !res.Applied {
		t.Error("mutation must apply even when publishing fails")
	}
}
