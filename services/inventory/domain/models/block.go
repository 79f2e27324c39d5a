package models

import "github.com/shopspring/decimal"

// Block is a top-level organizational unit (e.g. a building wing).
// Rooms keep insertion order.
type Block struct {
	ID    BlockID
	Name  Name
	Rooms []Room
}

// NewBlock constructs an empty Block with a generated ID.
func NewBlock(name Name) Block {
	return Block{ID: NewBlockID(), Name: name, Rooms: []Room{}}
}

// Room returns the room with the given id.
func (b Block) Room(id RoomID) (Room, bool) {
	for _, r := range b.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// ItemCount returns the number of items across all rooms of the block.
func (b Block) ItemCount() int {
	n := 0
	for _, r := range b.Rooms {
		n += len(r.Items)
	}
	return n
}

// Value sums the value of every item below the block.
func (b Block) Value() decimal.Decimal {
	total := decimal.Zero
	for _, r := range b.Rooms {
		total = total.Add(r.Value())
	}
	return total
}

// Equal compares blocks field by field, including room and item order.
func (b Block) Equal(o Block) bool {
	if b.ID != o.ID || b.Name != o.Name || len(b.Rooms) != len(o.Rooms) {
		return false
	}
	for i := range b.Rooms {
		if !b.Rooms[i].Equal(o.Rooms[i]) {
			return false
		}
	}
	return true
}
