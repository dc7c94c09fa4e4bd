package pool

import "sync"

// uint64SlicePool holds scratch slices for encoded values, e.g. the sorted copy
// used by the percentile selection.
var uint64SlicePool = sync.Pool{
	New: func() any { return &[]uint64{} },
}

// GetUint64Slice retrieves and resizes a uint64 slice from the pool.
//
// The returned slice has length size; its contents are unspecified. The caller
// must call the returned cleanup function to hand the slice back.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []uint64: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	sorted, cleanup := pool.GetUint64Slice(len(encoded))
//	defer cleanup()
//	copy(sorted, encoded)
func GetUint64Slice(size int) ([]uint64, func()) {
	ptr, _ := uint64SlicePool.Get().(*[]uint64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { uint64SlicePool.Put(ptr) }
}
