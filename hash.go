package chainmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// HashFunc maps a key to an unsigned integer. Equal keys must produce equal hashes.
type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc returns a maphash based hash function with a fresh random seed.
func MakeDefaultHashFunc[K comparable]() HashFunc[K] {
	return MakeSeededHashFunc[K](maphash.MakeSeed())
}

// MakeSeededHashFunc is MakeDefaultHashFunc with a caller provided seed.
// Two tables sharing a seed place equal keys into equal slots.
func MakeSeededHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// MakeStringHashFunc hashes string keys with xxhash. The result does not
// depend on a seed, so it's stable between processes.
func MakeStringHashFunc[K ~string]() HashFunc[K] {
	return func(k K) uint64 {
		return xxhash.Sum64String(string(k))
	}
}

// MakeIntegerHashFunc hashes integer keys with the splitmix64 finalizer.
// Consecutive integers end up spread over the whole uint64 range, which
// matters since slot selection is a plain modulo.
func MakeIntegerHashFunc[K constraints.Integer]() HashFunc[K] {
	return func(k K) uint64 {
		return mix64(uint64(k))
	}
}

func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
