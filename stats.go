package chainmap

type Stats struct {
	Size         int
	Capacity     int
	LoadFactor   float64
	EmptyBuckets int
	LongestChain int
	// Number of times the bucket array was rebuilt.
	Resizes int
}

// Stats walks the bucket array and reports its occupancy.
func (t *table[K, V]) Stats() Stats {
	s := Stats{
		Size:       t.size,
		Capacity:   len(t.buckets),
		LoadFactor: t.LoadFactor(),
		Resizes:    t.resizes,
	}

	for _, b := range t.buckets {
		if len(b) == 0 {
			s.EmptyBuckets++
		}

		s.LongestChain = max(s.LongestChain, len(b))
	}

	return s
}
