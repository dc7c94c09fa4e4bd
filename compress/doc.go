// Package compress provides general-purpose codecs for the word payload of a
// serialized bitpack block.
//
// Bit packing already removes the unused high bits of every value; a second
// stage can still shrink payloads with repeated patterns (runs of equal values,
// periodic data). The codec is recorded in the block header, so a serialized
// block is self-describing.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload stored as-is; required for
//     zero-copy random access through block.View.
//   - Zstd (format.CompressionZstd): best ratio, pure Go klauspost/compress by
//     default, cgo valyala/gozstd with the "gozstd" build tag.
//   - S2 (format.CompressionS2): klauspost/compress S2, fast with a good ratio.
//   - LZ4 (format.CompressionLZ4): pierrec/lz4 block format, fastest decompression.
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(compressed)
//
// # Thread Safety
//
// All codecs are stateless values; pooled encoders and decoders are managed
// internally, so a codec may be shared across goroutines.
package compress
