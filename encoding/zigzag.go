package encoding

// ZigZagEncode maps a signed integer onto an unsigned one, interleaving
// positive and negative magnitudes: 0→0, -1→1, 1→2, -2→3, 2→4.
//
// The mapping is a bijection over the whole int64 range, MinInt64 maps to MaxUint64.
func ZigZagEncode(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63)) //nolint:gosec
}

// ZigZagDecode is the inverse of ZigZagEncode.
func ZigZagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1) //nolint:gosec
}

// ZigZagEncodeSlice zig-zag encodes every element of values into a new slice.
func ZigZagEncodeSlice(values []int64) []uint64 {
	encoded := make([]uint64, len(values))
	for i, v := range values {
		encoded[i] = ZigZagEncode(v)
	}

	return encoded
}

// ZigZagDecodeSlice decodes every element of encoded into a new slice.
func ZigZagDecodeSlice(encoded []uint64) []int64 {
	values := make([]int64, len(encoded))
	for i, u := range encoded {
		values[i] = ZigZagDecode(u)
	}

	return values
}
