package services

import (
	"fmt"

	inventorydomain "github.com/ghuser/assettrack/services/inventory/domain"
	"github.com/ghuser/assettrack/services/inventory/domain/models"
)

// ValidateItemInput checks the numeric constraints on an item payload:
// quantity and unit price must not be negative.
func ValidateItemInput(in models.ItemInput) error {
	if in.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be >= 0, got %d", inventorydomain.ErrInvalidQuantity, in.Quantity)
	}
	if in.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: unit price must be >= 0, got %s", inventorydomain.ErrInvalidUnitPrice, in.UnitPrice)
	}
	return nil
}

// ValidateInventory checks a whole tree before it is installed as the current
// inventory (seed data). It enforces name and numeric constraints and that
// every id is unique across the whole tree, whatever its kind.
func ValidateInventory(inv models.Inventory) error {
	ids := make(idSet)

	for _, b := range inv.Blocks {
		if err := checkEntity("block", string(b.ID), b.Name); err != nil {
			return err
		}
		if err := ids.claim("block", string(b.ID)); err != nil {
			return err
		}

		for _, r := range b.Rooms {
			if err := checkEntity("room", string(r.ID), r.Name); err != nil {
				return err
			}
			if err := ids.claim("room", string(r.ID)); err != nil {
				return err
			}

			for _, it := range r.Items {
				if err := checkEntity("item", string(it.ID), it.Name); err != nil {
					return err
				}
				if err := ids.claim("item", string(it.ID)); err != nil {
					return err
				}

				in := models.ItemInput{Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
				if err := ValidateItemInput(in); err != nil {
					return fmt.Errorf("%w: item %q: %w", inventorydomain.ErrInvalidSeed, it.ID, err)
				}
			}
		}
	}
	return nil
}

func checkEntity(kind, id string, name models.Name) error {
	if id == "" {
		return fmt.Errorf("%w: %s without id", inventorydomain.ErrInvalidSeed, kind)
	}
	if _, err := models.NewName(name.String()); err != nil {
		return fmt.Errorf("%w: %s %q: %w", inventorydomain.ErrInvalidSeed, kind, id, err)
	}
	return nil
}

// idSet records ids of every kind, mapped to the kind that first used them.
type idSet map[string]string

func (s idSet) claim(kind, id string) error {
	if owner, dup := s[id]; dup {
		return fmt.Errorf("%w: duplicate id %q on %s, already used by a %s", inventorydomain.ErrInvalidSeed, id, kind, owner)
	}
	s[id] = kind
	return nil
}
