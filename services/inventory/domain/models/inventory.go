package models

// Inventory is the aggregate root: an ordered sequence of Blocks.
//
// An Inventory is treated as an immutable value. Operations that change it
// build new slices for every level they touch and share the untouched
// subtrees, so any previously obtained Inventory remains a valid snapshot.
type Inventory struct {
	Blocks []Block
}

// NewInventory wraps blocks in an Inventory.
func NewInventory(blocks ...Block) Inventory {
	if blocks == nil {
		blocks = []Block{}
	}
	return Inventory{Blocks: blocks}
}

// Block returns the block with the given id.
func (inv Inventory) Block(id BlockID) (Block, bool) {
	for _, b := range inv.Blocks {
		if b.ID == id {
			return b, true
		}
	}
	return Block{}, false
}

// Room returns the room identified by (blockID, roomID).
func (inv Inventory) Room(blockID BlockID, roomID RoomID) (Room, bool) {
	b, ok := inv.Block(blockID)
	if !ok {
		return Room{}, false
	}
	return b.Room(roomID)
}

// Equal reports whether two inventories are structurally equal:
// same blocks, rooms and items in the same order with equal fields.
func (inv Inventory) Equal(o Inventory) bool {
	if len(inv.Blocks) != len(o.Blocks) {
		return false
	}
	for i := range inv.Blocks {
		if !inv.Blocks[i].Equal(o.Blocks[i]) {
			return false
		}
	}
	return true
}
