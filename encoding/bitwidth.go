package encoding

import "math/bits"

// BitLength returns the number of bits needed to represent v.
//
// Zero still occupies a one-bit field, so BitLength(0) is 1.
func BitLength(v uint64) int {
	if v == 0 {
		return 1
	}

	return bits.Len64(v)
}

// BitsNeeded returns the field width needed by the largest element of values.
//
// Returns 0 for an empty slice; such input must never be packed.
func BitsNeeded(values []uint64) int {
	if len(values) == 0 {
		return 0
	}

	var maxVal uint64
	for _, v := range values {
		maxVal = max(maxVal, v)
	}

	return BitLength(maxVal)
}

// CeilLog2 returns the smallest k such that 1<<k >= n, and 0 when n <= 1.
func CeilLog2(n int) int {
	if n <= 1 {
		return 0
	}

	return bits.Len64(uint64(n - 1)) //nolint:gosec
}
