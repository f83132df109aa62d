package chainmap

import (
	"strconv"
	"testing"
)

var benchSizes = []int{
	1 << 10,
	1 << 16,
}

func BenchmarkMapInsert(b *testing.B) {
	for _, size := range benchSizes {
		b.Run("variant=std/size="+strconv.Itoa(size), func(b *testing.B) {
			for b.Loop() {
				m := make(map[int]int)
				for i := range size {
					if _, ok := m[i]; !ok {
						m[i] = i
					}
				}
			}
		})

		b.Run("variant=chainmap/size="+strconv.Itoa(size), func(b *testing.B) {
			for b.Loop() {
				m := New[int, int]()
				for i := range size {
					m.Insert(i, i)
				}
			}
		})
	}
}

func BenchmarkMapGet_Hit(b *testing.B) {
	for _, size := range benchSizes {
		std := make(map[int]int, size)
		m := New(WithHashFunc[int, int](MakeIntegerHashFunc[int]()))

		for i := range size {
			std[i] = i
			m.Insert(i, i)
		}

		b.Run("variant=std/size="+strconv.Itoa(size), func(b *testing.B) {
			i := 0
			for b.Loop() {
				_ = std[i%size]
				i++
			}
		})

		b.Run("variant=chainmap/size="+strconv.Itoa(size), func(b *testing.B) {
			i := 0
			for b.Loop() {
				m.Get(i % size)
				i++
			}
		})
	}
}

func BenchmarkMapIterate(b *testing.B) {
	m := New[int, int]()
	for i := range 1 << 16 {
		m.Insert(i, i)
	}

	b.Run("variant=iterator", func(b *testing.B) {
		for b.Loop() {
			sum := 0
			for it := m.Begin(); !it.Equal(m.End()); it.Advance() {
				sum += it.Value()
			}

			_ = sum
		}
	})

	b.Run("variant=seq", func(b *testing.B) {
		for b.Loop() {
			sum := 0
			for _, v := range m.All() {
				sum += v
			}

			_ = sum
		}
	})
}
