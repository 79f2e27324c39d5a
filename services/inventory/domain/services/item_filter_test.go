package services

import (
	"testing"

	"github.com/ghuser/assettrack/services/inventory/domain/models"
)

func ptr(n int64) *int64 { return &n }

func TestParseItemFilter(t *testing.T) {
	tests := []struct {
		name    string
		min     string
		max     string
		wantMin *int64
		wantMax *int64
	}{
		{"absent bounds", "", "", nil, nil},
		{"plain integers", "10", "100", ptr(10), ptr(100)},
		{"whitespace", " 5 ", "\t7", ptr(5), ptr(7)},
		{"leading digits", "12abc", "3.9", ptr(12), ptr(3)},
		{"negative", "-4", "+6", ptr(-4), ptr(6)},
		{"unparseable", "abc", "-", nil, nil},
		{"overflow", "99999999999999999999", "", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ParseItemFilter("", tt.min, tt.max)
			if !sameBound(f.MinQty, tt.wantMin) {
				t.Errorf("MinQty = %v, want %v", deref(f.MinQty), deref(tt.wantMin))
			}
			if !sameBound(f.MaxQty, tt.wantMax) {
				t.Errorf("MaxQty = %v, want %v", deref(f.MaxQty), deref(tt.wantMax))
			}
		})
	}
}

func sameBound(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func TestFilterItems(t *testing.T) {
	items := campus().Blocks[0].Rooms[0].Items // Microscopes 15, Beakers 150, Bunsen Burners 20

	tests := []struct {
		name   string
		filter ItemFilter
		want   []models.ItemID
	}{
		{"no criteria keeps all", ItemFilter{}, []models.ItemID{"item-1-1-1", "item-1-1-2", "item-1-1-3"}},
		{"name only", ItemFilter{NamePart: "BURN"}, []models.ItemID{"item-1-1-3"}},
		{"min only", ItemFilter{MinQty: ptr(20)}, []models.ItemID{"item-1-1-2", "item-1-1-3"}},
		{"max only", ItemFilter{MaxQty: ptr(20)}, []models.ItemID{"item-1-1-1", "item-1-1-3"}},
		{"range", ItemFilter{MinQty: ptr(16), MaxQty: ptr(149)}, []models.ItemID{"item-1-1-3"}},
		{"all criteria ANDed", ItemFilter{NamePart: "s", MinQty: ptr(100)}, []models.ItemID{"item-1-1-2"}},
		{"inverted range", ItemFilter{MinQty: ptr(100), MaxQty: ptr(10)}, []models.ItemID{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterItems(items, tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d items, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("item %d: got %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilterItems_ReturnsCopy(t *testing.T) {
	items := campus().Blocks[0].Rooms[0].Items
	got := FilterItems(items, ItemFilter{})
	got[0].Quantity = 0
	if items[0].Quantity != 15 {
		t.Fatal("FilterItems must not alias its input")
	}
}
