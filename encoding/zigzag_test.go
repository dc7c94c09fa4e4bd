package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZigZagEncode_SpotValues(t *testing.T) {
	tests := []struct {
		value    int64
		expected uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{1023, 2046},
		{200000, 400000},
		{math.MaxInt64, math.MaxUint64 - 1},
		{math.MinInt64, math.MaxUint64},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, ZigZagEncode(tt.value), "encode(%d)", tt.value)
		require.Equal(t, tt.value, ZigZagDecode(tt.expected), "decode(%d)", tt.expected)
	}
}

func TestZigZag_RoundTrip(t *testing.T) {
	for v := int64(-5000); v <= 5000; v++ {
		require.Equal(t, v, ZigZagDecode(ZigZagEncode(v)))
	}

	for shift := 0; shift < 63; shift++ {
		v := int64(1) << shift
		require.Equal(t, v, ZigZagDecode(ZigZagEncode(v)))
		require.Equal(t, -v, ZigZagDecode(ZigZagEncode(-v)))
	}
}

func TestZigZag_Slices(t *testing.T) {
	values := []int64{0, -1, 1, -2, 2, -100, 100}
	encoded := ZigZagEncodeSlice(values)

	require.Equal(t, []uint64{0, 1, 2, 3, 4, 199, 200}, encoded)
	require.Equal(t, values, ZigZagDecodeSlice(encoded))

	require.Empty(t, ZigZagEncodeSlice(nil))
	require.Empty(t, ZigZagDecodeSlice(nil))
}
