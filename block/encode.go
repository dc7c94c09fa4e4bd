package block

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/arloliu/bitpack/compress"
	"github.com/arloliu/bitpack/encoding"
	"github.com/arloliu/bitpack/endian"
	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/format"
	"github.com/arloliu/bitpack/internal/hash"
	"github.com/arloliu/bitpack/internal/options"
	"github.com/arloliu/bitpack/internal/pool"
	"github.com/arloliu/bitpack/section"
)

// EncodeConfig holds the serialization settings of Encode.
type EncodeConfig struct {
	compression format.CompressionType
	bigEndian   bool
}

// EncodeOption represents a functional option for configuring serialization.
type EncodeOption = options.Option[*EncodeConfig]

// WithCompression compresses the word payload with the given codec.
//
// Compressed blocks can only be read back through Decode; View requires
// format.CompressionNone.
func WithCompression(compression format.CompressionType) EncodeOption {
	return options.New(func(c *EncodeConfig) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, compression)
		}
		c.compression = compression

		return nil
	})
}

// WithBigEndian stores header fields and payload words in big-endian order.
func WithBigEndian() EncodeOption {
	return options.NoError(func(c *EncodeConfig) {
		c.bigEndian = true
	})
}

// WithLittleEndian stores header fields and payload words in little-endian order.
// This is the default.
func WithLittleEndian() EncodeOption {
	return options.NoError(func(c *EncodeConfig) {
		c.bigEndian = false
	})
}

// MarshalBinary implements encoding.BinaryMarshaler with the default settings:
// little-endian and no payload compression.
func (b *Block) MarshalBinary() ([]byte, error) {
	return b.Encode()
}

// Encode serializes the block into a self-describing byte slice.
//
// The result is a 32-byte header followed by the word payload. The header
// carries the layout metadata and an xxHash64-based checksum of the
// uncompressed payload.
//
// Parameters:
//   - opts: WithCompression, WithBigEndian, WithLittleEndian
//
// Returns:
//   - []byte: The serialized block, owned by the caller
//   - error: errs.ErrInvalidCompression, errs.ErrBlockTooLarge, or codec errors
//
// Example:
//
//	data, err := b.Encode(block.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	restored, err := block.Decode(data)
func (b *Block) Encode(opts ...EncodeOption) ([]byte, error) {
	cfg := &EncodeConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if uint64(len(b.words)) > section.MaxSerializedSize || uint64(b.outlierCount) > section.MaxSerializedSize {
		return nil, fmt.Errorf("%w: %d words", errs.ErrBlockTooLarge, len(b.words))
	}

	header := section.NewBlockHeader(b.strategy)
	if cfg.bigEndian {
		header.Flag.WithBigEndian()
	}
	header.Flag.SetOverflowArea(b.hasOverflow)
	header.Flag.SetCompression(cfg.compression)

	header.Length = uint64(b.length)                      //nolint:gosec
	header.BitsPerValue = uint8(b.bitsPerValue)           //nolint:gosec
	header.MainBits = uint8(b.mainBits)                   //nolint:gosec
	header.OverflowIndexBits = uint8(b.overflowIndexBits) //nolint:gosec
	header.OutlierWords = uint8(b.outlierWords)           //nolint:gosec
	header.ValuesPerWord = uint32(b.valuesPerWord)        //nolint:gosec
	header.OutlierCount = uint32(b.outlierCount)          //nolint:gosec
	header.WordCount = uint32(len(b.words))               //nolint:gosec

	buf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(buf)

	engine := header.Flag.GetEndianEngine()
	buf.Grow(len(b.words) * section.WordSize)
	for _, w := range b.words {
		buf.B = engine.AppendUint32(buf.B, w)
	}
	header.Checksum = hash.Checksum32(buf.Bytes())

	codec, err := compress.CreateCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress block payload: %w", err)
	}

	data := make([]byte, 0, section.HeaderSize+len(payload))
	data = header.AppendTo(data)
	data = append(data, payload...)

	return data, nil
}

// Decode restores a block serialized by Encode.
//
// The header metadata is checked for consistency, the payload is decompressed
// and verified against the checksum, and the outlier index is rebuilt from
// the main-area flags.
//
// Returns:
//   - *Block: The restored block, independent of data
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidMagic,
//     errs.ErrInvalidHeaderFlags, errs.ErrCorruptedBlock or errs.ErrChecksumMismatch
func Decode(data []byte) (*Block, error) {
	header, err := section.ParseBlockHeader(data)
	if err != nil {
		return nil, err
	}

	l, err := layoutFromHeader(&header)
	if err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(header.Flag.CompressionType())
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(data[section.PayloadOffset:], header.PayloadSize())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCorruptedBlock, err)
	}

	if sum := hash.Checksum32(raw); sum != header.Checksum {
		return nil, fmt.Errorf("%w: got %#08x, header has %#08x", errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	b := &Block{layout: l}
	if header.WordCount > 0 {
		b.words = decodeWords(raw, header.Flag.GetEndianEngine())
	}

	if b.hasOverflow {
		if b.overflowIndex, err = rebuildOverflowIndex(&b.layout, wordSlice(b.words)); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func decodeWords(raw []byte, engine endian.EndianEngine) []uint32 {
	words := make([]uint32, len(raw)/section.WordSize)
	for i := range words {
		words[i] = engine.Uint32(raw[i*section.WordSize:])
	}

	return words
}

// rebuildOverflowIndex collects the outlier positions from the main-area flags.
// The encoder assigns slots in element order, so slot k must belong to the
// k-th flagged element.
func rebuildOverflowIndex[S wordSource](l *layout, src S) (*roaring.Bitmap, error) {
	index := roaring.New()
	valueBits := l.bitsPerValue - 1

	slot := 0
	for i := range l.length {
		v := src.field(l.fieldPos(i), l.bitsPerValue)
		if v>>valueBits == 0 {
			continue
		}

		if v&(uint64(1)<<valueBits-1) != uint64(slot) { //nolint:gosec
			return nil, fmt.Errorf("%w: element %d has outlier slot out of order", errs.ErrCorruptedBlock, i)
		}
		index.Add(uint32(i)) //nolint:gosec
		slot++
	}

	if slot != l.outlierCount {
		return nil, fmt.Errorf("%w: %d flagged elements, header has %d outliers",
			errs.ErrCorruptedBlock, slot, l.outlierCount)
	}

	return index, nil
}

// layoutFromHeader rebuilds the layout described by a parsed header and checks
// that every field agrees with what the strategy would have produced.
func layoutFromHeader(h *section.BlockHeader) (layout, error) {
	corrupted := func(msg string, args ...any) (layout, error) {
		return layout{}, fmt.Errorf("%w: "+msg, append([]any{errs.ErrCorruptedBlock}, args...)...)
	}

	wordCount := int(h.WordCount)
	if h.Length > uint64(wordCount)*encoding.WordBits || h.Length > math.MaxInt32*encoding.WordBits {
		return corrupted("%d elements cannot fit in %d words", h.Length, wordCount)
	}

	l := layout{
		strategy:          h.Flag.StrategyType(),
		length:            int(h.Length), //nolint:gosec
		bitsPerValue:      int(h.BitsPerValue),
		valuesPerWord:     int(h.ValuesPerWord),
		hasOverflow:       h.Flag.HasOverflowArea(),
		mainBits:          int(h.MainBits),
		overflowIndexBits: int(h.OverflowIndexBits),
		outlierCount:      int(h.OutlierCount),
		outlierWords:      int(h.OutlierWords),
	}

	if l.length == 0 {
		if wordCount != 0 || l.bitsPerValue != 0 || l.hasOverflow || l.outlierCount != 0 {
			return corrupted("empty block carries layout fields")
		}

		return l, nil
	}

	if l.bitsPerValue < 1 || l.bitsPerValue > section.MaxFieldWidth {
		return corrupted("bits per value %d", l.bitsPerValue)
	}

	switch {
	case l.strategy == format.StrategyNoOverflow && l.bitsPerValue <= encoding.WordBits:
		if l.valuesPerWord != encoding.WordBits/l.bitsPerValue {
			return corrupted("values per word %d for %d-bit values", l.valuesPerWord, l.bitsPerValue)
		}
		l.mainWords = (l.length + l.valuesPerWord - 1) / l.valuesPerWord
	case l.strategy == format.StrategyNoOverflow:
		if l.valuesPerWord != 1 {
			return corrupted("values per word %d for %d-bit values", l.valuesPerWord, l.bitsPerValue)
		}
		l.mainWords = encoding.WordsFor(l.length * l.bitsPerValue)
	case l.hasOverflow:
		if l.outlierCount < 1 || l.outlierCount > l.length ||
			l.outlierWords < 1 || l.outlierWords > section.MaxOutlierWords ||
			l.mainBits < 1 || l.mainBits > section.MaxFieldWidth {
			return corrupted("overflow area fields out of range")
		}
		if l.overflowIndexBits != max(encoding.CeilLog2(l.outlierCount), 1) ||
			l.bitsPerValue != 1+max(l.mainBits, l.overflowIndexBits) {
			return corrupted("overflow area widths do not match")
		}
		l.mainWords = encoding.WordsFor(l.length * l.bitsPerValue)
	default:
		if l.valuesPerWord != 0 {
			return corrupted("values per word set for %s", l.strategy)
		}
		l.mainWords = encoding.WordsFor(l.length * l.bitsPerValue)
	}

	if !l.hasOverflow && (l.mainBits != l.bitsPerValue || l.outlierCount != 0 || l.outlierWords != 0 || l.overflowIndexBits != 0) {
		return corrupted("unexpected overflow area fields for %s", l.strategy)
	}

	if l.wordCount() != wordCount {
		return corrupted("layout needs %d words, header has %d", l.wordCount(), wordCount)
	}

	return l, nil
}
