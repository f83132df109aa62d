package chainmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFactor(t *testing.T) {
	require.Zero(t, loadFactor(0, 0))
	require.Zero(t, loadFactor(0, 128))
	require.InDelta(t, 0.5, loadFactor(64, 128), 1e-9)
	require.InDelta(t, 2.0, loadFactor(16, 8), 1e-9)
}

func TestNeedsResize(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		capacity int
		want     bool
	}{
		{"empty", 0, 128, false},
		{"single entry below shrink bound", 1, 128, true},
		{"at shrink bound", 13, 128, false},
		{"inside bounds", 40, 128, false},
		{"at grow bound", 64, 128, false},
		{"above grow bound", 65, 128, true},
		{"fresh resize", 5, 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, needsResize(tt.size, tt.capacity, defaultPolicy))
		})
	}

	t.Run("shrinking disabled", func(t *testing.T) {
		p := policy{shrinkAt: 0, growAt: 0.5, multiplier: 8}

		require.False(t, needsResize(1, 1<<20, p))
	})
}

func TestNextCapacity(t *testing.T) {
	require.Equal(t, 8, nextCapacity(1, defaultPolicy))
	require.Equal(t, 520, nextCapacity(65, defaultPolicy))
	require.Equal(t, 1, nextCapacity(0, defaultPolicy))

	p := policy{shrinkAt: 0.1, growAt: 0.9, multiplier: 2}
	require.Equal(t, 10, nextCapacity(5, p))
}

func TestPolicy_validate(t *testing.T) {
	require.NoError(t, defaultPolicy.validate())
	require.NoError(t, policy{shrinkAt: 0, growAt: 1, multiplier: 2}.validate())

	require.Error(t, policy{shrinkAt: 0.1, growAt: 0.5, multiplier: 0}.validate())
	require.Error(t, policy{shrinkAt: 0.2, growAt: 0.2, multiplier: 8}.validate())
	require.Error(t, policy{shrinkAt: 0.1, growAt: 0.5, multiplier: 2}.validate())
}
