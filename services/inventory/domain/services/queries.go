package services

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ghuser/assettrack/services/inventory/domain/models"
)

// Stats holds the dashboard aggregates of an Inventory.
type Stats struct {
	BlockCount int
	RoomCount  int
	ItemCount  int
	TotalValue decimal.Decimal
}

// ComputeStats walks the tree once, counting entities and summing item values.
func ComputeStats(inv models.Inventory) Stats {
	s := Stats{BlockCount: len(inv.Blocks), TotalValue: decimal.Zero}
	for _, b := range inv.Blocks {
		s.RoomCount += len(b.Rooms)
		for _, r := range b.Rooms {
			s.ItemCount += len(r.Items)
			for _, it := range r.Items {
				s.TotalValue = s.TotalValue.Add(it.Value())
			}
		}
	}
	return s
}

// BlockValue is one bar of the per-block value chart.
type BlockValue struct {
	BlockID models.BlockID
	Name    models.Name
	Label   string
	Value   decimal.Decimal
}

// BlockValues returns the value of every Block, in Block order.
func BlockValues(inv models.Inventory) []BlockValue {
	out := make([]BlockValue, 0, len(inv.Blocks))
	for _, b := range inv.Blocks {
		out = append(out, BlockValue{
			BlockID: b.ID,
			Name:    b.Name,
			Label:   chartLabel(b.Name),
			Value:   b.Value(),
		})
	}
	return out
}

// chartLabel shortens "Block A - Science Wing" to "A". Names with a single
// word are used as is.
func chartLabel(name models.Name) string {
	fields := strings.Fields(name.String())
	if len(fields) > 1 {
		return fields[1]
	}
	return name.String()
}

// Filter returns the part of inv matching term, compared case-insensitively
// as a substring.
//
// A Room whose own name matches keeps all its Items. Otherwise it survives
// only if some Item names match, and keeps just those Items. A Block survives
// if its name matches or any of its Rooms survives, and keeps only the
// surviving Rooms. An empty term returns inv unchanged.
func Filter(inv models.Inventory, term string) models.Inventory {
	if term == "" {
		return inv
	}
	m := newMatcher(term)

	blocks := make([]models.Block, 0, len(inv.Blocks))
	for _, b := range inv.Blocks {
		rooms := make([]models.Room, 0, len(b.Rooms))
		for _, r := range b.Rooms {
			if m.match(r.Name.String()) {
				rooms = append(rooms, r)
				continue
			}
			items := make([]models.Item, 0, len(r.Items))
			for _, it := range r.Items {
				if m.match(it.Name.String()) {
					items = append(items, it)
				}
			}
			if len(items) > 0 {
				rooms = append(rooms, models.Room{ID: r.ID, Name: r.Name, Items: items})
			}
		}
		if len(rooms) > 0 || m.match(b.Name.String()) {
			blocks = append(blocks, models.Block{ID: b.ID, Name: b.Name, Rooms: rooms})
		}
	}
	return models.Inventory{Blocks: blocks}
}

// matcher performs case-folded substring matching. It is not safe for
// concurrent use.
type matcher struct {
	fold   cases.Caser
	needle string
}

func newMatcher(term string) *matcher {
	c := cases.Fold()
	return &matcher{fold: c, needle: c.String(term)}
}

func (m *matcher) match(s string) bool {
	return strings.Contains(m.fold.String(s), m.needle)
}

// RoomSortKey selects the room attribute to sort on.
type RoomSortKey string

// SortDirection selects ascending or descending order.
type SortDirection string

const (
	SortByName      RoomSortKey = "name"
	SortByItemCount RoomSortKey = "itemCount"

	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// RoomSort configures SortRooms. The zero value sorts by name ascending.
type RoomSort struct {
	Key       RoomSortKey
	Direction SortDirection
}

// ParseRoomSort validates textual sort options. Empty strings select the defaults.
func ParseRoomSort(key, direction string) (RoomSort, error) {
	s := RoomSort{Key: SortByName, Direction: Ascending}
	switch RoomSortKey(key) {
	case "":
	case SortByName, SortByItemCount:
		s.Key = RoomSortKey(key)
	default:
		return RoomSort{}, fmt.Errorf("unknown sort key %q", key)
	}
	switch SortDirection(direction) {
	case "":
	case Ascending, Descending:
		s.Direction = SortDirection(direction)
	default:
		return RoomSort{}, fmt.Errorf("unknown sort direction %q", direction)
	}
	return s, nil
}

// SortRooms returns a stably sorted copy of rooms. Names are compared with
// locale-aware collation; item counts by the length of the item list.
func SortRooms(rooms []models.Room, s RoomSort) []models.Room {
	out := slices.Clone(rooms)
	if out == nil {
		out = []models.Room{}
	}

	var cmp func(a, b models.Room) int
	switch s.Key {
	case SortByItemCount:
		cmp = func(a, b models.Room) int { return a.ItemCount() - b.ItemCount() }
	default:
		col := collate.New(language.English)
		cmp = func(a, b models.Room) int { return col.CompareString(a.Name.String(), b.Name.String()) }
	}
	if s.Direction == Descending {
		asc := cmp
		cmp = func(a, b models.Room) int { return -asc(a, b) }
	}

	slices.SortStableFunc(out, cmp)
	return out
}

// View filters inv by term and then sorts the Rooms of every Block
// independently. Block order is preserved.
func View(inv models.Inventory, term string, s RoomSort) models.Inventory {
	filtered := Filter(inv, term)
	blocks := make([]models.Block, 0, len(filtered.Blocks))
	for _, b := range filtered.Blocks {
		blocks = append(blocks, models.Block{ID: b.ID, Name: b.Name, Rooms: SortRooms(b.Rooms, s)})
	}
	return models.Inventory{Blocks: blocks}
}
