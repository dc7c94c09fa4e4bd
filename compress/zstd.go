package compress

import (
	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor provides Zstandard compression of block payloads.
//
// Zstd gives the best ratio of the bundled codecs and suits blocks that are
// written once and read rarely, e.g. archived or transmitted blocks.
//
// The default implementation is pure Go (klauspost/compress) with pooled
// encoders and decoders. Building with the "gozstd" tag and cgo enabled
// switches to the libzstd binding from valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// checkFrameSize compares the content size declared by the zstd frame header
// with the size the block header expects. Both encoders always declare it for
// non-empty input; a frame without one is decoded under the size cap alone.
func checkFrameSize(data []byte, size int) error {
	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return err
	}

	if h.HasFCS && h.FrameContentSize != uint64(size) { //nolint:gosec
		return sizeMismatch(int(min(h.FrameContentSize, uint64(maxInt))), size) //nolint:gosec
	}

	return nil
}

const maxInt = int(^uint(0) >> 1)
