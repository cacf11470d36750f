package fixture

import (
	"sync"
	"sync/atomic"
)

// sequence hands out monotonically increasing ids starting at 1.
// Safe for concurrent callers.
type sequence struct {
	n atomic.Int64
}

func (s *sequence) next() int {
	return int(s.n.Add(1))
}

// table is an append-only record collection. Appends are serialized so
// no record is lost under concurrent adds, and readers never observe a
// partial append. Duplicate ids are the caller's problem; the table
// enforces nothing.
type table[T any] struct {
	mu   sync.RWMutex
	rows []T
}

func (t *table[T]) add(row T) {
	t.mu.Lock()
	t.rows = append(t.rows, row)
	t.mu.Unlock()
}

// find returns the first row matching pred, in insertion order.
func (t *table[T]) find(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, row := range t.rows {
		if pred(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// all returns a defensive copy in insertion order.
func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}
