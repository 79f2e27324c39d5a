package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/assettrack/services/inventory/domain/events"
	"github.com/ghuser/assettrack/services/inventory/domain/models"
	domainsvcs "github.com/ghuser/assettrack/services/inventory/domain/services"
)

// Money values are encoded as JSON strings ("350", "0.5") to keep them exact.

// NameRequest is the request body for creating or renaming a block or room.
type NameRequest struct {
	Name string `json:"name" validate:"required,max=255" example:"Block D - Library"`
} // @name NameRequest

// ItemRequest is the request body for creating or editing an item.
// unit_price accepts a JSON number or a numeric string.
type ItemRequest struct {
	Name      string           `json:"name"       validate:"required,max=255" example:"Microscopes"`
	Quantity  *int64           `json:"quantity"   validate:"required"         example:"15"`
	UnitPrice *decimal.Decimal `json:"unit_price" validate:"required"         swaggertype:"string" example:"350"`
} // @name ItemRequest

// ItemResponse is one item with its derived value.
type ItemResponse struct {
	ID         string          `json:"id"          example:"item-1-1-1"`
	Name       string          `json:"name"        example:"Microscopes"`
	Quantity   int64           `json:"quantity"    example:"15"`
	UnitPrice  decimal.Decimal `json:"unit_price"  swaggertype:"string" example:"350"`
	TotalValue decimal.Decimal `json:"total_value" swaggertype:"string" example:"5250"`
} // @name ItemResponse

// RoomResponse is one room with its items and derived totals.
type RoomResponse struct {
	ID         string          `json:"id"          example:"room-1-1"`
	Name       string          `json:"name"        example:"Physics Lab (A-101)"`
	ItemCount  int             `json:"item_count"  example:"3"`
	TotalValue decimal.Decimal `json:"total_value" swaggertype:"string" example:"7500"`
	Items      []ItemResponse  `json:"items"`
} // @name RoomResponse

// BlockResponse is one block with its rooms and derived totals.
type BlockResponse struct {
	ID         string          `json:"id"          example:"block-1"`
	Name       string          `json:"name"        example:"Block A - Science Wing"`
	ItemCount  int             `json:"item_count"  example:"5"`
	TotalValue decimal.Decimal `json:"total_value" swaggertype:"string" example:"8250"`
	Rooms      []RoomResponse  `json:"rooms"`
} // @name BlockResponse

// InventoryResponse is a versioned tree snapshot.
type InventoryResponse struct {
	Version uint64          `json:"version" example:"1"`
	Blocks  []BlockResponse `json:"blocks"`
} // @name InventoryResponse

// StatsResponse carries the dashboard totals.
type StatsResponse struct {
	Version    uint64          `json:"version"     example:"1"`
	Blocks     int             `json:"blocks"      example:"3"`
	Rooms      int             `json:"rooms"       example:"5"`
	Items      int             `json:"items"       example:"12"`
	TotalValue decimal.Decimal `json:"total_value" swaggertype:"string" example:"98850"`
} // @name StatsResponse

// ChartPoint is one bar of the value-by-block chart.
type ChartPoint struct {
	BlockID string          `json:"block_id" example:"block-1"`
	Name    string          `json:"name"     example:"Block A - Science Wing"`
	Label   string          `json:"label"    example:"A"`
	Value   decimal.Decimal `json:"value"    swaggertype:"string" example:"8250"`
} // @name ChartPoint

// ChartResponse lists one point per block in inventory order.
type ChartResponse struct {
	Version uint64       `json:"version" example:"1"`
	Points  []ChartPoint `json:"points"`
} // @name ChartResponse

// ItemsResponse lists the filtered items of one room.
type ItemsResponse struct {
	BlockID string         `json:"block_id" example:"block-1"`
	RoomID  string         `json:"room_id"  example:"room-1-1"`
	Items   []ItemResponse `json:"items"`
} // @name ItemsResponse

// MutationResponse reports a mutation outcome. When applied is false the
// target id did not exist and version is unchanged.
type MutationResponse struct {
	Applied bool           `json:"applied" example:"true"`
	Version uint64         `json:"version" example:"2"`
	Block   *BlockResponse `json:"block,omitempty"`
	Room    *RoomResponse  `json:"room,omitempty"`
	Item    *ItemResponse  `json:"item,omitempty"`
} // @name MutationResponse

// OperationResponse is one operation-log entry.
type OperationResponse struct {
	EventID          string    `json:"event_id"`
	Operation        string    `json:"operation"         example:"delete_room"`
	Outcome          string    `json:"outcome"           example:"noop"`
	BlockID          string    `json:"block_id,omitempty" example:"block-1"`
	RoomID           string    `json:"room_id,omitempty"  example:"room-9-9"`
	ItemID           string    `json:"item_id,omitempty"`
	InventoryVersion uint64    `json:"inventory_version" example:"4"`
	OccurredAt       time.Time `json:"occurred_at"`
} // @name OperationResponse

// OperationsResponse lists recent operations, newest first.
type OperationsResponse struct {
	Operations []OperationResponse `json:"operations"`
} // @name OperationsResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"block not found: block-9"`
} // @name ErrorResponse

func toItemResponse(it models.Item) ItemResponse {
	return ItemResponse{
		ID:         string(it.ID),
		Name:       it.Name.String(),
		Quantity:   it.Quantity,
		UnitPrice:  it.UnitPrice,
		TotalValue: it.Value(),
	}
}

func toItemResponses(items []models.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out
}

func toRoomResponse(r models.Room) RoomResponse {
	return RoomResponse{
		ID:         string(r.ID),
		Name:       r.Name.String(),
		ItemCount:  r.ItemCount(),
		TotalValue: r.Value(),
		Items:      toItemResponses(r.Items),
	}
}

func toBlockResponse(b models.Block) BlockResponse {
	rooms := make([]RoomResponse, 0, len(b.Rooms))
	for _, r := range b.Rooms {
		rooms = append(rooms, toRoomResponse(r))
	}
	return BlockResponse{
		ID:         string(b.ID),
		Name:       b.Name.String(),
		ItemCount:  b.ItemCount(),
		TotalValue: b.Value(),
		Rooms:      rooms,
	}
}

func toInventoryResponse(inv models.Inventory, version uint64) InventoryResponse {
	blocks := make([]BlockResponse, 0, len(inv.Blocks))
	for _, b := range inv.Blocks {
		blocks = append(blocks, toBlockResponse(b))
	}
	return InventoryResponse{Version: version, Blocks: blocks}
}

func toStatsResponse(s domainsvcs.Stats, version uint64) StatsResponse {
	return StatsResponse{
		Version:    version,
		Blocks:     s.BlockCount,
		Rooms:      s.RoomCount,
		Items:      s.ItemCount,
		TotalValue: s.TotalValue,
	}
}

func toChartResponse(values []domainsvcs.BlockValue, version uint64) ChartResponse {
	points := make([]ChartPoint, 0, len(values))
	for _, v := range values {
		points = append(points, ChartPoint{
			BlockID: string(v.BlockID),
			Name:    v.Name.String(),
			Label:   v.Label,
			Value:   v.Value,
		})
	}
	return ChartResponse{Version: version, Points: points}
}

func toOperationResponse(e events.InventoryMutatedEvent) OperationResponse {
	return OperationResponse{
		EventID:          e.EventID.String(),
		Operation:        string(e.Operation),
		Outcome:          string(e.Outcome),
		BlockID:          e.BlockID,
		RoomID:           e.RoomID,
		ItemID:           e.ItemID,
		InventoryVersion: e.InventoryVersion,
		OccurredAt:       e.OccurredAt,
	}
}
