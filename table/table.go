package table

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"sync"
)

// ErrIndexOutOfRange is returned when a position is outside the table.
var ErrIndexOutOfRange = errors.New("index out of range")

// entry is one record. pos is its current position in the table.
type entry[V any] struct {
	value V
	pos   int
}

// indexUpdater is the maintenance side of an Index.
type indexUpdater[V any] interface {
	add(e *entry[V])
	remove(e *entry[V])
	clear()
}

// Table is an ordered collection of records with secondary indexes.
type Table[V any] struct {
	mu      sync.RWMutex
	rows    []*entry[V]
	indexes []indexUpdater[V]
	logger  *slog.Logger
}

// New creates an empty table.
func New[V any](opts ...Option) *Table[V] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	return &Table[V]{
		rows:   make([]*entry[V], 0, c.capacity),
		logger: c.logger,
	}
}

func (t *Table[V]) checkPos(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: position %d, length %d", ErrIndexOutOfRange, i, len(t.rows))
	}
	return nil
}

// renumber fixes positions from i onwards.
func (t *Table[V]) renumber(i int) {
	for ; i < len(t.rows); i++ {
		t.rows[i].pos = i
	}
}

// Len returns the number of records.
func (t *Table[V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.rows)
}

// Add appends v to the table.
func (t *Table[V]) Add(v V) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := &entry[V]{value: v, pos: len(t.rows)}
	t.rows = append(t.rows, e)

	for _, idx := range t.indexes {
		idx.add(e)
	}
}

// Insert places v at position i, shifting later records up. i may equal
// Len().
func (t *Table[V]) Insert(i int, v V) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkPos(i, len(t.rows)+1); err != nil {
		return err
	}

	e := &entry[V]{value: v}
	t.rows = slices.Insert(t.rows, i, e)
	t.renumber(i)

	for _, idx := range t.indexes {
		idx.add(e)
	}

	return nil
}

// At returns the record at position i.
func (t *Table[V]) At(i int) (V, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if err := t.checkPos(i, len(t.rows)); err != nil {
		var zero V
		return zero, err
	}

	return t.rows[i].value, nil
}

// Replace overwrites the record at position i and moves it to the bucket of
// its new key in every index.
func (t *Table[V]) Replace(i int, v V) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkPos(i, len(t.rows)); err != nil {
		return err
	}

	e := t.rows[i]
	for _, idx := range t.indexes {
		idx.remove(e)
	}

	e.value = v

	for _, idx := range t.indexes {
		idx.add(e)
	}

	return nil
}

// RemoveAt deletes the record at position i.
func (t *Table[V]) RemoveAt(i int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkPos(i, len(t.rows)); err != nil {
		return err
	}

	t.removeAt(i)
	return nil
}

func (t *Table[V]) removeAt(i int) {
	e := t.rows[i]
	for _, idx := range t.indexes {
		idx.remove(e)
	}

	t.rows = slices.Delete(t.rows, i, i+1)
	t.renumber(i)
}

// RemoveFunc deletes the first record for which match returns true and
// reports whether one was found.
func (t *Table[V]) RemoveFunc(match func(V) bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexFunc(match)
	if i < 0 {
		return false
	}

	t.removeAt(i)
	return true
}

// Clear removes every record. Indexes stay declared and become empty.
func (t *Table[V]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	clear(t.rows)
	t.rows = t.rows[:0]

	for _, idx := range t.indexes {
		idx.clear()
	}
}

// IndexFunc returns the position of the first record for which match returns
// true, or -1.
func (t *Table[V]) IndexFunc(match func(V) bool) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.indexFunc(match)
}

func (t *Table[V]) indexFunc(match func(V) bool) int {
	return slices.IndexFunc(t.rows, func(e *entry[V]) bool {
		return match(e.value)
	})
}

// Values returns a copy of the records in table order.
func (t *Table[V]) Values() []V {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]V, len(t.rows))
	for i, e := range t.rows {
		out[i] = e.value
	}
	return out
}

// All returns an iterator over (position, record) pairs of a snapshot taken
// when iteration starts.
func (t *Table[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, v := range t.Values() {
			if !yield(i, v) {
				return
			}
		}
	}
}
