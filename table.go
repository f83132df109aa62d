package chainmap

import "fmt"

const (
	// Number of buckets every table starts with.
	initialCapacity = 128

	defaultShrinkAt   = 0.1
	defaultGrowAt     = 0.5
	defaultMultiplier = 8
)

// policy holds the load factor bounds and the capacity multiplier used to
// decide when and how to rebuild the bucket array.
type policy struct {
	shrinkAt   float64
	growAt     float64
	multiplier int
}

var defaultPolicy = policy{
	shrinkAt:   defaultShrinkAt,
	growAt:     defaultGrowAt,
	multiplier: defaultMultiplier,
}

// A rebuilt table sits at a load factor of exactly 1/multiplier. It must
// fall strictly between the bounds, otherwise every mutation resizes.
func (p policy) validate() error {
	if p.multiplier < 1 {
		return fmt.Errorf("capacity multiplier must be positive, got %d", p.multiplier)
	}

	if p.shrinkAt < 0 || p.growAt <= p.shrinkAt {
		return fmt.Errorf("invalid load factor bounds [%v, %v]", p.shrinkAt, p.growAt)
	}

	target := 1 / float64(p.multiplier)
	if target <= p.shrinkAt || target >= p.growAt {
		return fmt.Errorf(
			"load factor after resize %v is outside of (%v, %v)",
			target, p.shrinkAt, p.growAt,
		)
	}

	return nil
}

type table[K comparable, V any] struct {
	buckets []bucket[K, V]

	size    int
	resizes int

	policy   policy
	hashFunc HashFunc[K]
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// Override the load factor bounds. The table shrinks once the load factor
// drops below shrinkAt and grows once it exceeds growAt.
// Zero shrinkAt disables shrinking.
func WithLoadFactors[K comparable, V any](shrinkAt, growAt float64) Option[K, V] {
	return func(t *table[K, V]) {
		t.policy.shrinkAt = shrinkAt
		t.policy.growAt = growAt
	}
}

// Override how many buckets per live entry a resized table gets.
func WithCapacityMultiplier[K comparable, V any](m int) Option[K, V] {
	return func(t *table[K, V]) {
		t.policy.multiplier = m
	}
}

func (t *table[K, V]) init(opts ...Option[K, V]) {
	t.buckets = make([]bucket[K, V], initialCapacity)
	t.policy = defaultPolicy

	for _, opt := range opts {
		opt(t)
	}

	if err := t.policy.validate(); err != nil {
		panic("chainmap: " + err.Error())
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K]()
	}
}

// Returns the number of live entries.
func (t *table[K, V]) Len() int {
	return t.size
}

// Reports whether the table holds no entries.
func (t *table[K, V]) Empty() bool {
	return t.size == 0
}

// Returns the number of buckets.
func (t *table[K, V]) Capacity() int {
	return len(t.buckets)
}

func (t *table[K, V]) LoadFactor() float64 {
	return loadFactor(t.size, len(t.buckets))
}

// Returns the hash function the table places keys with.
func (t *table[K, V]) HashFunc() HashFunc[K] {
	return t.hashFunc
}

func (t *table[K, V]) slot(key K) int {
	return int(t.hashFunc(key) % uint64(len(t.buckets)))
}

// Returns the bucket index of the key and its position in the chain,
// or -1 as position when the key is absent.
func (t *table[K, V]) locate(key K) (int, int) {
	s := t.slot(key)

	return s, t.buckets[s].index(key)
}

func (t *table[K, V]) get(key K) (*node[K, V], bool) {
	s, i := t.locate(key)
	if i < 0 {
		return nil, false
	}

	return t.buckets[s][i], true
}

// Adds the entry unless the key is already present.
// Returns the node holding the key and whether it was added.
// Nodes survive resizes, so the returned one is valid even if insert rehashed.
func (t *table[K, V]) insert(key K, value V) (*node[K, V], bool) {
	s, i := t.locate(key)
	if i >= 0 {
		return t.buckets[s][i], false
	}

	n := &node[K, V]{key: key, value: value}
	t.buckets[s] = append(t.buckets[s], n)
	t.size++

	t.checkResize()

	return n, true
}

func (t *table[K, V]) erase(key K) bool {
	s, i := t.locate(key)
	if i < 0 {
		return false
	}

	t.buckets[s] = t.buckets[s].removeAt(i)
	t.size--

	t.checkResize()

	return true
}

// Clear removes every entry. The number of buckets stays the same.
func (t *table[K, V]) Clear() {
	clear(t.buckets)
	t.size = 0
}

func (t *table[K, V]) checkResize() {
	if needsResize(t.size, len(t.buckets), t.policy) {
		t.rehash()
	}
}

// Rehash rebuilds the bucket array with capacity derived from the current
// number of entries. It's a no-op for an empty table.
// Any iterator obtained before the call is invalid afterwards.
func (t *table[K, V]) Rehash() {
	if t.size == 0 {
		return
	}

	t.rehash()
}

func (t *table[K, V]) rehash() {
	// The new array is filled completely before it replaces the old one.
	// Entries are known to be unique, so no duplicate checks here.
	buckets := make([]bucket[K, V], nextCapacity(t.size, t.policy))
	capacity := uint64(len(buckets))

	for _, b := range t.buckets {
		for _, n := range b {
			s := t.hashFunc(n.key) % capacity
			buckets[s] = append(buckets[s], n)
		}
	}

	t.buckets = buckets
	t.resizes++
}

// Makes t a deep copy of src: buckets, entries, size, hash function and policy.
// Values are copied by assignment.
func (t *table[K, V]) copyFrom(src *table[K, V]) {
	if t == src {
		return
	}

	buckets := make([]bucket[K, V], len(src.buckets))
	for i, b := range src.buckets {
		if len(b) == 0 {
			continue
		}

		nb := make(bucket[K, V], len(b))
		for j, n := range b {
			c := *n
			nb[j] = &c
		}

		buckets[i] = nb
	}

	t.buckets = buckets
	t.size = src.size
	t.resizes = src.resizes
	t.policy = src.policy
	t.hashFunc = src.hashFunc
}

// Visits entries in iteration order until yield returns false.
func (t *table[K, V]) each(yield func(n *node[K, V]) bool) {
	for _, b := range t.buckets {
		for _, n := range b {
			if !yield(n) {
				return
			}
		}
	}
}
