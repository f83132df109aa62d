package chainmap

import (
	"fmt"
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// Runs random operation sequences against the builtin map and checks the
// invariants after every step.
func TestHashMap_Model(t *testing.T) {
	seeds := []uint64{1, 7, 42, 1337}

	for _, seed := range seeds {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			r := rand.New(rand.NewSource(seed))

			m := New[int, int]()
			model := make(map[int]int)

			for step := range 5000 {
				k := r.Intn(400)

				switch op := r.Intn(10); {
				case op < 5:
					_, exists := model[k]
					require.Equal(t, !exists, m.Insert(k, step))

					if !exists {
						model[k] = step
					}
				case op < 8:
					_, exists := model[k]
					require.Equal(t, exists, m.Erase(k))

					delete(model, k)
				case op < 9:
					*m.Ref(k) += 1
					model[k] += 1
				default:
					v, err := m.At(k)
					if want, ok := model[k]; ok {
						require.NoError(t, err)
						require.Equal(t, want, v)
					} else {
						require.ErrorIs(t, err, ErrOutOfRange)
					}
				}

				require.Equal(t, len(model), m.Len())
				require.Equal(t, m.Len(), chainTotal(&m.table))
			}

			keys := collectKeys(m)
			slices.Sort(keys)

			if diff := cmp.Diff(slices.Sorted(maps.Keys(model)), keys); diff != "" {
				t.Fatalf("key set mismatch (-want +got):\n%s", diff)
			}

			require.Equal(t, model, maps.Collect(m.All()))
		})
	}
}
