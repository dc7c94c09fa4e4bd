package compress

import (
	"fmt"

	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/format"
)

// Compressor compresses the word payload of a serialized block.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The input is the complete payload of one block: its packed words in the
	// byte order chosen by the block header.
	//
	// Memory management:
	//   - Returned slice is owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Separate interfaces allow asymmetric implementations where compression and
// decompression have different resource requirements.
//
// Example:
//
//	decompressor := NewZstdCompressor()
//	payload, err := decompressor.Decompress(compressedPayload, header.PayloadSize())
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Thread Safety: all implementations in this package are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// size is the exact uncompressed length recorded in the block header. The
	// output buffer is allocated once at that size and decoding never writes
	// past it.
	//
	// Error conditions:
	//   - Returns errs.ErrPayloadSize if data does not decode to exactly size bytes
	//   - Returns error if input data is corrupted or invalid
	//   - Returns error if data was compressed with an incompatible algorithm
	Decompress(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: errs.ErrInvalidCompression for an unknown type
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
	}
}

func sizeMismatch(got, want int) error {
	return fmt.Errorf("%w: got %d bytes, expected %d", errs.ErrPayloadSize, got, want)
}
