// Package chainmap provides HashMap and HashSet, generic hash tables that
// resolve collisions by chaining and resize themselves from the number of
// live entries.
package chainmap

import (
	"fmt"
	"iter"
)

// Entry is a key paired with its value.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// HashMap is an unordered key-value container on a bucket array with
// separate chaining.
//
// The bucket array is resized by the map itself: whenever an insert or an
// erase pushes the load factor out of the configured bounds, all entries are
// re-placed into a new array sized from the number of live entries.
//
// HashMap is not safe for concurrent use. Create it with New or one of the
// NewFrom constructors, the zero value is not usable.
type HashMap[K comparable, V any] struct {
	table[K, V]
}

// Returns a new empty map.
func New[K comparable, V any](opts ...Option[K, V]) *HashMap[K, V] {
	var m HashMap[K, V]
	m.init(opts...)

	return &m
}

// NewFromRange returns a map holding the entries of the half-open range
// [first, last). Both iterators must come from the same map.
func NewFromRange[K comparable, V any](first, last Iterator[K, V], opts ...Option[K, V]) *HashMap[K, V] {
	m := New(opts...)
	for it := first; !it.Equal(last); it.Advance() {
		m.Insert(it.Key(), it.Value())
	}

	return m
}

// NewFromSeq returns a map holding the pairs yielded by seq.
// For repeated keys the first pair wins.
func NewFromSeq[K comparable, V any](seq iter.Seq2[K, V], opts ...Option[K, V]) *HashMap[K, V] {
	m := New(opts...)
	for k, v := range seq {
		m.Insert(k, v)
	}

	return m
}

// NewFromEntries returns a map holding the given entries.
// For repeated keys the first entry wins.
func NewFromEntries[K comparable, V any](entries []Entry[K, V], opts ...Option[K, V]) *HashMap[K, V] {
	m := New(opts...)
	for _, e := range entries {
		m.InsertEntry(e)
	}

	return m
}

// Insert adds the key with the given value if the key is absent.
// An existing value is never overwritten.
// Returns whether the entry was added.
func (m *HashMap[K, V]) Insert(key K, value V) bool {
	_, ok := m.insert(key, value)
	return ok
}

func (m *HashMap[K, V]) InsertEntry(e Entry[K, V]) bool {
	return m.Insert(e.Key, e.Value)
}

// Erase removes the key. Returns false if it wasn't present.
func (m *HashMap[K, V]) Erase(key K) bool {
	return m.erase(key)
}

// Find returns an iterator at the key, or End if the key is absent.
func (m *HashMap[K, V]) Find(key K) Iterator[K, V] {
	return m.find(key)
}

func (m *HashMap[K, V]) CFind(key K) ConstIterator[K, V] {
	return m.find(key).Const()
}

// Ref returns a pointer to the value of the key, inserting the zero value
// first if the key is absent. The insert may resize the map.
//
// The pointer stays usable while the key is in the map.
func (m *HashMap[K, V]) Ref(key K) *V {
	var zero V

	n, _ := m.insert(key, zero)

	return &n.value
}

// At returns the value of the key, or ErrOutOfRange if it's absent.
func (m *HashMap[K, V]) At(key K) (V, error) {
	n, ok := m.get(key)
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrOutOfRange, key)
	}

	return n.value, nil
}

func (m *HashMap[K, V]) Get(key K) (V, bool) {
	n, ok := m.get(key)
	if !ok {
		var zero V
		return zero, false
	}

	return n.value, true
}

func (m *HashMap[K, V]) Contains(key K) bool {
	_, ok := m.get(key)
	return ok
}

// Begin returns an iterator at the first entry, or End for an empty map.
func (m *HashMap[K, V]) Begin() Iterator[K, V] {
	return m.begin()
}

// End returns the iterator one past the last entry.
func (m *HashMap[K, V]) End() Iterator[K, V] {
	return m.end()
}

func (m *HashMap[K, V]) CBegin() ConstIterator[K, V] {
	return m.begin().Const()
}

func (m *HashMap[K, V]) CEnd() ConstIterator[K, V] {
	return m.end().Const()
}

// All yields every entry in iteration order.
// The map must not be modified while ranging over it.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.each(func(n *node[K, V]) bool {
			return yield(n.key, n.value)
		})
	}
}

func (m *HashMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.each(func(n *node[K, V]) bool {
			return yield(n.key)
		})
	}
}

func (m *HashMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.each(func(n *node[K, V]) bool {
			return yield(n.value)
		})
	}
}

// CopyFrom replaces the contents of m with a deep copy of src,
// including its hash function and resize policy.
func (m *HashMap[K, V]) CopyFrom(src *HashMap[K, V]) {
	m.copyFrom(&src.table)
}

// Clone returns a deep copy of m.
func (m *HashMap[K, V]) Clone() *HashMap[K, V] {
	var c HashMap[K, V]
	c.copyFrom(&m.table)

	return &c
}
