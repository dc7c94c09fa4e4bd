package block

import (
	"fmt"
	"iter"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/arloliu/bitpack/encoding"
	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/format"
)

// Block is an immutable compressed sequence: the packed word array plus the
// metadata needed to decode it.
//
// A Block is produced by Compress (or one of the strategy constructors) or by
// Decode, and never changes afterwards. All methods are safe for concurrent use.
type Block struct {
	layout

	words []uint32

	// overflowIndex holds the original positions of the outliers; the rank of a
	// position is its slot in the outlier area. Nil without an overflow area.
	overflowIndex *roaring.Bitmap
}

// Compress compresses values with the given strategy.
//
// Dispatch is static over the closed set of strategies. Options that do not
// apply to the selected strategy are validated and then ignored.
//
// Parameters:
//   - strategy: One of format.StrategyNoOverflow, StrategyOverflow, StrategyOverflowArea
//   - values: Input sequence, may be empty
//   - opts: Compression options (WithPercentileThreshold, WithLogger)
//
// Returns:
//   - *Block: The compressed block
//   - error: errs.ErrUnknownStrategy or errs.ErrInvalidPercentile
//
// Example:
//
//	b, err := block.Compress(format.StrategyOverflowArea, values,
//	    block.WithPercentileThreshold(0.9),
//	)
//	if err != nil {
//	    return err
//	}
//	v, err := b.Get(42)
func Compress(strategy format.StrategyType, values []int64, opts ...Option) (*Block, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	switch strategy {
	case format.StrategyNoOverflow:
		return CompressNoOverflow(values), nil
	case format.StrategyOverflow:
		return CompressOverflow(values), nil
	case format.StrategyOverflowArea:
		return compressOverflowArea(values, cfg), nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownStrategy, strategy)
	}
}

// Strategy returns the strategy that produced the block.
func (b *Block) Strategy() format.StrategyType {
	return b.strategy
}

// Len returns the number of elements in the block.
func (b *Block) Len() int {
	return b.length
}

// WordCount returns the number of packed words, i.e. the compressed length.
func (b *Block) WordCount() int {
	return len(b.words)
}

// Words returns a copy of the packed word array.
func (b *Block) Words() []uint32 {
	return slices.Clone(b.words)
}

// Get returns element i without decompressing the block.
//
// Cost is O(1) for every strategy: one field extraction, plus one outlier read
// when element i is an outlier.
//
// Returns:
//   - int64: The element
//   - error: errs.ErrIndexOutOfRange if i is outside [0, Len())
func (b *Block) Get(i int) (int64, error) {
	if i < 0 || i >= b.length {
		return 0, fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, i, b.length)
	}

	u, _ := encodedAt(&b.layout, wordSlice(b.words), i)

	return encoding.ZigZagDecode(u), nil
}

// Decompress returns all elements in order.
func (b *Block) Decompress() []int64 {
	values := make([]int64, b.length)
	for i := range values {
		u, _ := encodedAt(&b.layout, wordSlice(b.words), i)
		values[i] = encoding.ZigZagDecode(u)
	}

	return values
}

// DecompressWords decodes an externally held word array with this block's metadata.
//
// This mirrors the classic compress/decompress contract where the caller keeps
// the packed words and hands them back later. An empty word array decodes to an
// empty sequence.
//
// Returns:
//   - []int64: The decoded elements
//   - error: errs.ErrUninitialized if the word count does not match the metadata,
//     errs.ErrCorruptedBlock if an outlier reference is out of bounds
func (b *Block) DecompressWords(words []uint32) ([]int64, error) {
	if len(words) == 0 {
		return []int64{}, nil
	}

	if len(words) != b.wordCount() {
		return nil, fmt.Errorf("%w: got %d words, block metadata expects %d",
			errs.ErrUninitialized, len(words), b.wordCount())
	}

	values := make([]int64, b.length)
	for i := range values {
		u, ok := encodedAt(&b.layout, wordSlice(words), i)
		if !ok {
			return nil, fmt.Errorf("%w: element %d references a missing outlier", errs.ErrCorruptedBlock, i)
		}
		values[i] = encoding.ZigZagDecode(u)
	}

	return values, nil
}

// All returns an iterator over (index, element) pairs in order.
func (b *Block) All() iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		for i := range b.length {
			u, _ := encodedAt(&b.layout, wordSlice(b.words), i)
			if !yield(i, encoding.ZigZagDecode(u)) {
				return
			}
		}
	}
}

// Outliers returns an iterator over the original positions of the elements
// stored in the overflow area, in ascending order. It yields nothing when the
// block has no overflow area.
func (b *Block) Outliers() iter.Seq[int] {
	return func(yield func(int) bool) {
		if b.overflowIndex == nil {
			return
		}

		it := b.overflowIndex.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// OutlierSlot returns the overflow-area slot of element i.
//
// Returns:
//   - int: Slot inside the overflow area
//   - bool: false if element i is not an outlier
func (b *Block) OutlierSlot(i int) (int, bool) {
	if b.overflowIndex == nil || i < 0 || i >= b.length {
		return 0, false
	}

	pos := uint32(i) //nolint:gosec
	if !b.overflowIndex.Contains(pos) {
		return 0, false
	}

	return int(b.overflowIndex.Rank(pos)) - 1, true //nolint:gosec
}

// Info returns the metadata record of the block. It is a pure function of the
// block, so repeated calls return identical values.
func (b *Block) Info() Info {
	return newInfo(&b.layout, len(b.words))
}
