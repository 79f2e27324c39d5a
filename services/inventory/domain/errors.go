package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
//
// Validation errors are raised by callers of the mutation engine before it is
// invoked. A mutation that references a missing id is never an error; it is a
// no-op. The NotFound sentinels are only returned by reads.
var (
	// ErrInvalidName indicates a block, room or item name violates domain constraints.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidQuantity indicates an item quantity is negative.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidUnitPrice indicates an item unit price is negative.
	ErrInvalidUnitPrice = errors.New("invalid unit price")

	// ErrBlockNotFound indicates the requested block does not exist.
	ErrBlockNotFound = errors.New("block not found")

	// ErrRoomNotFound indicates the requested room does not exist in its block.
	ErrRoomNotFound = errors.New("room not found")

	// ErrItemNotFound indicates the requested item does not exist in its room.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidSeed indicates a seed dataset breaks a tree invariant.
	ErrInvalidSeed = errors.New("invalid seed inventory")
)
