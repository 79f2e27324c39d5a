// Package services contains stateless domain services for the inventory
// bounded context: the mutation engine, the query/derivation engine and the
// validation rules callers apply before invoking the engine.
//
// Every function here is pure. Mutations take the current Inventory and
// return a new one; the bool result reports whether the operation applied.
// A mutation whose target cannot be located is a no-op and returns its input
// unchanged. The engine never validates its inputs.
package services

import "github.com/ghuser/assettrack/services/inventory/domain/models"

// AddBlock appends a new empty Block named name.
func AddBlock(inv models.Inventory, name models.Name) (models.Inventory, models.Block) {
	b := models.NewBlock(name)
	return models.Inventory{Blocks: appendCopy(inv.Blocks, b)}, b
}

// EditBlock replaces the name of the matching Block.
func EditBlock(inv models.Inventory, blockID models.BlockID, name models.Name) (models.Inventory, bool) {
	return updateBlock(inv, blockID, func(b models.Block) (models.Block, bool) {
		b.Name = name
		return b, true
	})
}

// DeleteBlock removes the matching Block together with its Rooms and Items.
func DeleteBlock(inv models.Inventory, blockID models.BlockID) (models.Inventory, bool) {
	i := indexOf(inv.Blocks, func(b models.Block) bool { return b.ID == blockID })
	if i < 0 {
		return inv, false
	}
	return models.Inventory{Blocks: removeAt(inv.Blocks, i)}, true
}

// AddRoom appends a new empty Room named name to the matching Block.
func AddRoom(inv models.Inventory, blockID models.BlockID, name models.Name) (models.Inventory, models.Room, bool) {
	r := models.NewRoom(name)
	next, ok := updateBlock(inv, blockID, func(b models.Block) (models.Block, bool) {
		b.Rooms = appendCopy(b.Rooms, r)
		return b, true
	})
	if !ok {
		return inv, models.Room{}, false
	}
	return next, r, true
}

// EditRoom replaces the name of the matching Room.
func EditRoom(inv models.Inventory, blockID models.BlockID, roomID models.RoomID, name models.Name) (models.Inventory, bool) {
	return updateRoom(inv, blockID, roomID, func(r models.Room) (models.Room, bool) {
		r.Name = name
		return r, true
	})
}

// DeleteRoom removes the matching Room together with its Items.
func DeleteRoom(inv models.Inventory, blockID models.BlockID, roomID models.RoomID) (models.Inventory, bool) {
	return updateBlock(inv, blockID, func(b models.Block) (models.Block, bool) {
		i := indexOf(b.Rooms, func(r models.Room) bool { return r.ID == roomID })
		if i < 0 {
			return b, false
		}
		b.Rooms = removeAt(b.Rooms, i)
		return b, true
	})
}

// AddItem appends a new Item built from in to the matching Room.
func AddItem(inv models.Inventory, blockID models.BlockID, roomID models.RoomID, in models.ItemInput) (models.Inventory, models.Item, bool) {
	it := models.NewItem(in)
	next, ok := updateRoom(inv, blockID, roomID, func(r models.Room) (models.Room, bool) {
		r.Items = appendCopy(r.Items, it)
		return r, true
	})
	if !ok {
		return inv, models.Item{}, false
	}
	return next, it, true
}

// EditItem replaces the Item whose id matches item.ID with item.
func EditItem(inv models.Inventory, blockID models.BlockID, roomID models.RoomID, item models.Item) (models.Inventory, bool) {
	return updateRoom(inv, blockID, roomID, func(r models.Room) (models.Room, bool) {
		i := indexOf(r.Items, func(it models.Item) bool { return it.ID == item.ID })
		if i < 0 {
			return r, false
		}
		items := make([]models.Item, len(r.Items))
		copy(items, r.Items)
		items[i] = item
		r.Items = items
		return r, true
	})
}

// DeleteItem removes the matching Item.
func DeleteItem(inv models.Inventory, blockID models.BlockID, roomID models.RoomID, itemID models.ItemID) (models.Inventory, bool) {
	return updateRoom(inv, blockID, roomID, func(r models.Room) (models.Room, bool) {
		i := indexOf(r.Items, func(it models.Item) bool { return it.ID == itemID })
		if i < 0 {
			return r, false
		}
		r.Items = removeAt(r.Items, i)
		return r, true
	})
}

// updateBlock rebuilds the block list with fn applied to the matching Block.
// fn receives a copy; any slice it changes must be freshly allocated.
func updateBlock(inv models.Inventory, blockID models.BlockID, fn func(models.Block) (models.Block, bool)) (models.Inventory, bool) {
	i := indexOf(inv.Blocks, func(b models.Block) bool { return b.ID == blockID })
	if i < 0 {
		return inv, false
	}
	nb, ok := fn(inv.Blocks[i])
	if !ok {
		return inv, false
	}
	blocks := make([]models.Block, len(inv.Blocks))
	copy(blocks, inv.Blocks)
	blocks[i] = nb
	return models.Inventory{Blocks: blocks}, true
}

func updateRoom(inv models.Inventory, blockID models.BlockID, roomID models.RoomID, fn func(models.Room) (models.Room, bool)) (models.Inventory, bool) {
	return updateBlock(inv, blockID, func(b models.Block) (models.Block, bool) {
		i := indexOf(b.Rooms, func(r models.Room) bool { return r.ID == roomID })
		if i < 0 {
			return b, false
		}
		nr, ok := fn(b.Rooms[i])
		if !ok {
			return b, false
		}
		rooms := make([]models.Room, len(b.Rooms))
		copy(rooms, b.Rooms)
		rooms[i] = nr
		b.Rooms = rooms
		return b, true
	})
}

func indexOf[T any](s []T, match func(T) bool) int {
	for i, v := range s {
		if match(v) {
			return i
		}
	}
	return -1
}

// appendCopy returns a new slice holding s followed by v; s is never written.
func appendCopy[T any](s []T, v T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}

// removeAt returns a new slice without element i; s is never written.
func removeAt[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}
