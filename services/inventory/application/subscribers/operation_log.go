package subscribers

import (
	"sync"

	"github.com/ghuser/assettrack/services/inventory/domain/events"
)

// OperationLog is a bounded ring of recent mutation attempts. Once full, the
// oldest entry is overwritten.
type OperationLog struct {
	mu      sync.RWMutex
	entries []events.InventoryMutatedEvent
	next    int
	full    bool
}

// NewOperationLog returns a log holding at most capacity entries (minimum 1).
func NewOperationLog(capacity int) *OperationLog {
	if capacity < 1 {
		capacity = 1
	}
	return &OperationLog{entries: make([]events.InventoryMutatedEvent, capacity)}
}

// Append records evt.
func (l *OperationLog) Append(evt events.InventoryMutatedEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[l.next] = evt
	l.next = (l.next + 1) % len(l.entries)
	if l.next == 0 {
		l.full = true
	}
}

// Len returns the number of stored entries.
func (l *OperationLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.len()
}

func (l *OperationLog) len() int {
	if l.full {
		return len(l.entries)
	}
	return l.next
}

// Recent returns up to limit entries, newest first. limit <= 0 returns all.
func (l *OperationLog) Recent(limit int) []events.InventoryMutatedEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := l.len()
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]events.InventoryMutatedEvent, 0, n)
	for i := 1; i <= n; i++ {
		idx := (l.next - i + len(l.entries)) % len(l.entries)
		out = append(out, l.entries[idx])
	}
	return out
}
