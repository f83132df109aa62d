package chainmap

// Position in a chain one past its last node. The end iterator of a table
// always points there in the last bucket.
const chainEnd = -1

// Iterator is a forward cursor over the entries of a HashMap.
//
// Entries are visited bucket by bucket in ascending order, and in insertion
// order inside a bucket. Empty buckets are skipped.
//
// An Iterator borrows the table it came from. It's invalidated by any
// resize, by Clear, and by an Erase of an entry in the bucket it points to.
// Using an invalidated iterator, or dereferencing the end iterator, is a
// programming error and is not checked.
type Iterator[K comparable, V any] struct {
	t      *table[K, V]
	bucket int
	pos    int
}

func (t *table[K, V]) begin() Iterator[K, V] {
	for b := range t.buckets {
		if len(t.buckets[b]) > 0 {
			return Iterator[K, V]{t: t, bucket: b}
		}
	}

	return t.end()
}

func (t *table[K, V]) end() Iterator[K, V] {
	return Iterator[K, V]{t: t, bucket: len(t.buckets) - 1, pos: chainEnd}
}

func (t *table[K, V]) find(key K) Iterator[K, V] {
	s, i := t.locate(key)
	if i < 0 {
		return t.end()
	}

	return Iterator[K, V]{t: t, bucket: s, pos: i}
}

// Equal reports whether both iterators point at the same position of the same table.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.t == other.t && it.bucket == other.bucket && it.pos == other.pos
}

// Advance moves to the next entry and returns the new position.
// Advancing the end iterator leaves it at the end.
func (it *Iterator[K, V]) Advance() Iterator[K, V] {
	if it.pos == chainEnd {
		return *it
	}

	buckets := it.t.buckets

	if it.pos+1 < len(buckets[it.bucket]) {
		it.pos++
		return *it
	}

	for b := it.bucket + 1; b < len(buckets); b++ {
		if len(buckets[b]) > 0 {
			it.bucket, it.pos = b, 0
			return *it
		}
	}

	it.bucket, it.pos = len(buckets)-1, chainEnd

	return *it
}

// PostAdvance moves to the next entry and returns the position it was at before.
func (it *Iterator[K, V]) PostAdvance() Iterator[K, V] {
	prev := *it
	it.Advance()

	return prev
}

func (it Iterator[K, V]) node() *node[K, V] {
	return it.t.buckets[it.bucket][it.pos]
}

func (it Iterator[K, V]) Key() K {
	return it.node().key
}

func (it Iterator[K, V]) Value() V {
	return it.node().value
}

// Entry returns a copy of the entry the iterator points at.
func (it Iterator[K, V]) Entry() Entry[K, V] {
	n := it.node()

	return Entry[K, V]{Key: n.key, Value: n.value}
}

// ValuePtr returns a pointer to the stored value. It may be written through
// for as long as the entry lives in the table.
func (it Iterator[K, V]) ValuePtr() *V {
	return &it.node().value
}

// SetValue replaces the stored value. The key is never changed.
func (it Iterator[K, V]) SetValue(v V) {
	it.node().value = v
}

// Const returns a read-only iterator at the same position.
func (it Iterator[K, V]) Const() ConstIterator[K, V] {
	return ConstIterator[K, V]{it: it}
}

// ConstIterator is an Iterator that gives no way to modify the table.
// It has the same traversal order and invalidation rules.
type ConstIterator[K comparable, V any] struct {
	it Iterator[K, V]
}

func (ci ConstIterator[K, V]) Equal(other ConstIterator[K, V]) bool {
	return ci.it.Equal(other.it)
}

func (ci *ConstIterator[K, V]) Advance() ConstIterator[K, V] {
	ci.it.Advance()

	return *ci
}

func (ci *ConstIterator[K, V]) PostAdvance() ConstIterator[K, V] {
	prev := *ci
	ci.it.Advance()

	return prev
}

func (ci ConstIterator[K, V]) Key() K {
	return ci.it.Key()
}

func (ci ConstIterator[K, V]) Value() V {
	return ci.it.Value()
}

func (ci ConstIterator[K, V]) Entry() Entry[K, V] {
	return ci.it.Entry()
}
