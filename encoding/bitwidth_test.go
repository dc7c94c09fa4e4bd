package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitLength(t *testing.T) {
	require.Equal(t, 1, BitLength(0))
	require.Equal(t, 1, BitLength(1))
	require.Equal(t, 2, BitLength(2))
	require.Equal(t, 2, BitLength(3))
	require.Equal(t, 11, BitLength(2046))
	require.Equal(t, 19, BitLength(400000))
	require.Equal(t, 32, BitLength(math.MaxUint32))
	require.Equal(t, 64, BitLength(math.MaxUint64))
}

func TestBitsNeeded(t *testing.T) {
	require.Equal(t, 0, BitsNeeded(nil))
	require.Equal(t, 1, BitsNeeded([]uint64{0, 0, 0}))
	require.Equal(t, 4, BitsNeeded([]uint64{1, 15, 3}))
	require.Equal(t, 5, BitsNeeded([]uint64{16, 0}))
}

func TestCeilLog2(t *testing.T) {
	tests := []struct {
		n        int
		expected int
	}{
		{0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4}, {1024, 10}, {1025, 11},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, CeilLog2(tt.n), "CeilLog2(%d)", tt.n)
	}
}
