package chainmap

// node is a stored entry. The key never changes after insertion.
type node[K comparable, V any] struct {
	key   K
	value V
}

// bucket is the chain of nodes whose keys land in the same slot.
// Nodes are kept in insertion order.
type bucket[K comparable, V any] []*node[K, V]

// index returns the position of key in the chain or -1.
func (b bucket[K, V]) index(key K) int {
	for i, n := range b {
		if n.key == key {
			return i
		}
	}

	return -1
}

// removeAt drops the node at position i keeping the order of the rest.
func (b bucket[K, V]) removeAt(i int) bucket[K, V] {
	copy(b[i:], b[i+1:])
	b[len(b)-1] = nil

	return b[:len(b)-1]
}
