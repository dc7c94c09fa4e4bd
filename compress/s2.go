package compress

import "github.com/klauspost/compress/s2"

// S2Compressor compresses block payloads with the S2 extension of Snappy.
//
// Balanced choice between ratio and speed for blocks that are read often.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 compression.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block of exactly size bytes.
//
// The length prefix of the S2 block is compared with size before any output
// is allocated.
func (c S2Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		if size != 0 {
			return nil, sizeMismatch(0, size)
		}

		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, sizeMismatch(n, size)
	}

	return s2.Decode(make([]byte, size), data)
}
