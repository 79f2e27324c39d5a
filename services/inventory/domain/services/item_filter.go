package services

import (
	"strconv"
	"strings"

	"github.com/ghuser/assettrack/services/inventory/domain/models"
)

// ItemFilter narrows the items of a room. Every criterion is optional; the
// criteria that are set must all hold.
type ItemFilter struct {
	NamePart string
	MinQty   *int64
	MaxQty   *int64
}

// ParseItemFilter builds an ItemFilter from raw form values. A bound that is
// absent or does not start with an integer imposes no constraint. Leading
// digits are honoured, so "12abc" reads as 12.
func ParseItemFilter(namePart, minQty, maxQty string) ItemFilter {
	return ItemFilter{
		NamePart: namePart,
		MinQty:   parseBound(minQty),
		MaxQty:   parseBound(maxQty),
	}
}

func parseBound(s string) *int64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return nil
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// IsZero reports whether f imposes no constraint.
func (f ItemFilter) IsZero() bool {
	return f.NamePart == "" && f.MinQty == nil && f.MaxQty == nil
}

// FilterItems returns the items satisfying f, in their original order.
func FilterItems(items []models.Item, f ItemFilter) []models.Item {
	out := make([]models.Item, 0, len(items))
	if f.IsZero() {
		return append(out, items...)
	}
	var m *matcher
	if f.NamePart != "" {
		m = newMatcher(f.NamePart)
	}
	for _, it := range items {
		if m != nil && !m.match(it.Name.String()) {
			continue
		}
		if f.MinQty != nil && it.Quantity < *f.MinQty {
			continue
		}
		if f.MaxQty != nil && it.Quantity > *f.MaxQty {
			continue
		}
		out = append(out, it)
	}
	return out
}
