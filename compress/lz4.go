package compress

import (
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxRatio bounds the expansion of a raw LZ4 block: a match run of 255
// bytes costs at least one input byte.
const lz4MaxRatio = 255

// lz4CompressorPool pools lz4.Compressor instances for reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses block payloads in the raw LZ4 block format.
//
// The raw format does not record the uncompressed size; the block header
// does, and Decompress decodes straight into a buffer of that size.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using LZ4 compression.
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decodes a raw LZ4 block of exactly size bytes.
//
// A size that data could not expand to even at the maximum LZ4 ratio is
// rejected before the output buffer is allocated.
//
// Returns:
//   - []byte: Decompressed data (nil if input is empty)
//   - error: errs.ErrPayloadSize, or lz4.ErrInvalidSourceShortBuffer for a
//     malformed block
func (c LZ4Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		if size != 0 {
			return nil, sizeMismatch(0, size)
		}

		return nil, nil
	}

	if size == 0 {
		return nil, sizeMismatch(len(data), size)
	}
	if size/lz4MaxRatio > len(data) {
		return nil, sizeMismatch(len(data)*lz4MaxRatio, size)
	}

	dst := make([]byte, size)
	n, err := lz4.UncompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, sizeMismatch(n, size)
	}

	return dst, nil
}
