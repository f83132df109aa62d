package chainmap

// Returns the number of entries per bucket.
func loadFactor(size, capacity int) float64 {
	if capacity == 0 {
		return 0
	}

	return float64(size) / float64(capacity)
}

// Reports whether the table must be rebuilt. An empty table never is.
func needsResize(size, capacity int, p policy) bool {
	if size == 0 {
		return false
	}

	c := float64(capacity)

	return float64(size) > c*p.growAt || float64(size) < c*p.shrinkAt
}

// Returns the capacity a rebuilt table gets. It depends on the live size only,
// so a shrink and a grow land on the same load factor of 1/multiplier.
func nextCapacity(size int, p policy) int {
	return max(size*p.multiplier, 1)
}
