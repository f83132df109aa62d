package chainmap

import "iter"

// HashSet is a set of keys, built on the same chained table as HashMap
// with no values stored. It resizes by the same rules.
type HashSet[K comparable] struct {
	table[K, struct{}]
}

func NewSet[K comparable](opts ...Option[K, struct{}]) *HashSet[K] {
	var s HashSet[K]
	s.init(opts...)

	return &s
}

// NewSetFromSlice returns a set holding every key of the slice once.
func NewSetFromSlice[K comparable](keys []K, opts ...Option[K, struct{}]) *HashSet[K] {
	s := NewSet(opts...)
	for _, k := range keys {
		s.Insert(k)
	}

	return s
}

// Puts a key in the set. Returns whether the key is new.
func (s *HashSet[K]) Insert(key K) bool {
	_, ok := s.insert(key, struct{}{})
	return ok
}

// Checks whether a key is in the set.
func (s *HashSet[K]) Has(key K) bool {
	_, ok := s.get(key)
	return ok
}

// Deletes a key from the set.
func (s *HashSet[K]) Erase(key K) bool {
	return s.erase(key)
}

// All yields every key in iteration order.
func (s *HashSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		s.each(func(n *node[K, struct{}]) bool {
			return yield(n.key)
		})
	}
}

func (s *HashSet[K]) Clone() *HashSet[K] {
	var c HashSet[K]
	c.copyFrom(&s.table)

	return &c
}
