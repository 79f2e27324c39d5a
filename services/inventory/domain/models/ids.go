package models

import "github.com/google/uuid"

// BlockID, RoomID and ItemID are opaque identifiers. Generated ids carry a
// kind prefix followed by a random UUID; seeded ids may be any unique string.
type (
	BlockID string
	RoomID  string
	ItemID  string
)

const (
	blockIDPrefix = "block-"
	roomIDPrefix  = "room-"
	itemIDPrefix  = "item-"
)

// NewBlockID returns a fresh BlockID.
func NewBlockID() BlockID { return BlockID(blockIDPrefix + uuid.NewString()) }

// NewRoomID returns a fresh RoomID.
func NewRoomID() RoomID { return RoomID(roomIDPrefix + uuid.NewString()) }

// NewItemID returns a fresh ItemID.
func NewItemID() ItemID { return ItemID(itemIDPrefix + uuid.NewString()) }
