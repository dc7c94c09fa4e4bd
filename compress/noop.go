package compress

// NoOpCompressor passes payloads through unchanged.
//
// It is the codec of uncompressed blocks, which keeps the payload words
// addressable in place.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is, without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is, without copying, once its length matches size.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c NoOpCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) != size {
		return nil, sizeMismatch(len(data), size)
	}

	return data, nil
}
