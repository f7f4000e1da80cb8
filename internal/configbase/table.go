package configbase

import "sync"

// Table holds the rows of one configuration table in their stored order.
// It is safe for concurrent use: readers get a snapshot copy, writers replace
// the whole row set at once.
type Table[T any] struct {
	name  string
	mu    sync.RWMutex
	items []T
}

// NewTable creates an empty table.
func NewTable[T any](name string) *Table[T] {
	return &Table[T]{name: name}
}

// Name returns the table name.
func (t *Table[T]) Name() string {
	return t.name
}

// Items returns a copy of the rows.
func (t *Table[T]) Items() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, len(t.items))
	copy(out, t.items)
	return out
}

// Len returns the number of rows.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}

// Replace swaps the row set for items. The slice is copied.
func (t *Table[T]) Replace(items []T) {
	cp := make([]T, len(items))
	copy(cp, items)

	t.mu.Lock()
	t.items = cp
	t.mu.Unlock()
}

// Add appends rows.
func (t *Table[T]) Add(items ...T) {
	t.mu.Lock()
	t.items = append(t.items, items...)
	t.mu.Unlock()
}
