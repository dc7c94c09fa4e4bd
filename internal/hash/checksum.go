package hash

import "github.com/cespare/xxhash/v2"

// Checksum32 folds the xxHash64 of data into 32 bits by keeping the low half.
//
// Used for the fixed-size checksum field of the block header.
func Checksum32(data []byte) uint32 {
	return uint32(xxhash.Sum64(data)) //nolint:gosec
}
