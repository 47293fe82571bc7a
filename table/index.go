package table

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/hupe1980/bitkit"
)

// Index groups the records of a Table by key.
type Index[K comparable, V any] struct {
	name    string
	t       *Table[V]
	key     func(V) K
	buckets map[K][]*entry[V]
	// keys of live entries, so removal does not depend on key being
	// deterministic.
	keyOf map[*entry[V]]K
}

// CreateIndex declares an index on t keyed by key. Records already in the
// table are indexed immediately; later mutations keep the index current.
func CreateIndex[K comparable, V any](t *Table[V], key func(V) K, opts ...IndexOption) *Index[K, V] {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := indexConfig{name: fmt.Sprintf("index%d", len(t.indexes))}
	for _, opt := range opts {
		opt(&c)
	}

	idx := &Index[K, V]{
		name:    c.name,
		t:       t,
		key:     key,
		buckets: make(map[K][]*entry[V]),
		keyOf:   make(map[*entry[V]]K, len(t.rows)),
	}

	for _, e := range t.rows {
		idx.add(e)
	}

	t.indexes = append(t.indexes, idx)

	logger := &bitkit.Logger{Logger: t.logger}
	logger.LogIndexRebuild(context.Background(), idx.name, len(t.rows), len(idx.buckets))

	return idx
}

func (idx *Index[K, V]) add(e *entry[V]) {
	k := idx.key(e.value)
	idx.keyOf[e] = k
	idx.buckets[k] = append(idx.buckets[k], e)
}

func (idx *Index[K, V]) remove(e *entry[V]) {
	k, ok := idx.keyOf[e]
	if !ok {
		return
	}
	delete(idx.keyOf, e)

	bucket := idx.buckets[k]
	if i := slices.Index(bucket, e); i >= 0 {
		bucket = slices.Delete(bucket, i, i+1)
	}

	if len(bucket) == 0 {
		delete(idx.buckets, k)
		return
	}
	idx.buckets[k] = bucket
}

func (idx *Index[K, V]) clear() {
	clear(idx.buckets)
	clear(idx.keyOf)
}

// Name returns the name the index was created with.
func (idx *Index[K, V]) Name() string {
	return idx.name
}

// Get returns the records with key k in table order. The result is a copy;
// it is nil when no record has the key.
func (idx *Index[K, V]) Get(k K) []V {
	idx.t.mu.RLock()
	defer idx.t.mu.RUnlock()

	bucket := idx.buckets[k]
	if len(bucket) == 0 {
		return nil
	}

	sorted := slices.Clone(bucket)
	slices.SortFunc(sorted, func(a, b *entry[V]) int {
		return a.pos - b.pos
	})

	out := make([]V, len(sorted))
	for i, e := range sorted {
		out[i] = e.value
	}
	return out
}

// Contains reports whether any record has key k.
func (idx *Index[K, V]) Contains(k K) bool {
	idx.t.mu.RLock()
	defer idx.t.mu.RUnlock()

	_, ok := idx.buckets[k]
	return ok
}

// Len returns the number of distinct keys.
func (idx *Index[K, V]) Len() int {
	idx.t.mu.RLock()
	defer idx.t.mu.RUnlock()

	return len(idx.buckets)
}

// Keys returns an iterator over a snapshot of the distinct keys, in no
// particular order.
func (idx *Index[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		idx.t.mu.RLock()
		keys := make([]K, 0, len(idx.buckets))
		for k := range idx.buckets {
			keys = append(keys, k)
		}
		idx.t.mu.RUnlock()

		for _, k := range keys {
			if !yield(k) {
				return
			}
		}
	}
}
