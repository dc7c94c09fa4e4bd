//go:build gozstd && cgo

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress compresses the input data with libzstd at level 3.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decodes a zstd frame of exactly size bytes with libzstd.
func (c ZstdCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		if size != 0 {
			return nil, sizeMismatch(0, size)
		}

		return nil, nil
	}

	if err := checkFrameSize(data, size); err != nil {
		return nil, err
	}

	decompressed, err := gozstd.Decompress(make([]byte, 0, size), data)
	if err != nil {
		return nil, err
	}
	if len(decompressed) != size {
		return nil, sizeMismatch(len(decompressed), size)
	}

	return decompressed, nil
}
