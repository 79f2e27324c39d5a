package models

import "github.com/shopspring/decimal"

// Room groups Items and is owned by exactly one Block.
// Items keep insertion order.
type Room struct {
	ID    RoomID
	Name  Name
	Items []Item
}

// NewRoom constructs an empty Room with a generated ID.
func NewRoom(name Name) Room {
	return Room{ID: NewRoomID(), Name: name, Items: []Item{}}
}

// ItemCount returns the number of items held by the room.
func (r Room) ItemCount() int {
	return len(r.Items)
}

// Item returns the item with the given id.
func (r Room) Item(id ItemID) (Item, bool) {
	for _, it := range r.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Value sums the value of every item in the room.
func (r Room) Value() decimal.Decimal {
	total := decimal.Zero
	for _, it := range r.Items {
		total = total.Add(it.Value())
	}
	return total
}

// Equal compares rooms field by field, including item order.
func (r Room) Equal(o Room) bool {
	if r.ID != o.ID || r.Name != o.Name || len(r.Items) != len(o.Items) {
		return false
	}
	for i := range r.Items {
		if !r.Items[i].Equal(o.Items[i]) {
			return false
		}
	}
	return true
}
