package models

import "github.com/shopspring/decimal"

// Item is a leaf inventory record. It is owned by exactly one Room.
type Item struct {
	ID        ItemID
	Name      Name
	Quantity  int64
	UnitPrice decimal.Decimal
}

// ItemInput carries the mutable fields of an Item for add and edit operations.
type ItemInput struct {
	Name      Name
	Quantity  int64
	UnitPrice decimal.Decimal
}

// NewItem constructs an Item with a generated ID.
func NewItem(in ItemInput) Item {
	return Item{
		ID:        NewItemID(),
		Name:      in.Name,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
	}
}

// Value returns quantity × unit price. It is never cached.
func (i Item) Value() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// Equal reports whether two items hold the same id and field values.
func (i Item) Equal(o Item) bool {
	return i.ID == o.ID &&
		i.Name == o.Name &&
		i.Quantity == o.Quantity &&
		i.UnitPrice.Equal(o.UnitPrice)
}
