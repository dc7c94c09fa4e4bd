package block

import (
	"github.com/arloliu/bitpack/encoding"
	"github.com/arloliu/bitpack/format"
)

// CompressOverflow packs values back-to-back with no padding.
//
// Element i occupies bits [i*bits_per_value, (i+1)*bits_per_value) of the word
// array and may straddle two words. This gives the smallest output of the
// three strategies for a uniform width, and Get is still O(1).
//
// Parameters:
//   - values: Input sequence, may be empty
//
// Returns:
//   - *Block: The compressed block
func CompressOverflow(values []int64) *Block {
	b := &Block{layout: layout{strategy: format.StrategyOverflow, length: len(values)}}
	if len(values) == 0 {
		return b
	}

	encoded := encoding.ZigZagEncodeSlice(values)
	b.bitsPerValue = encoding.BitsNeeded(encoded)
	b.mainBits = b.bitsPerValue
	b.words = packSpanning(encoded, b.bitsPerValue)
	b.mainWords = len(b.words)

	return b
}

// packSpanning packs encoded values at a fixed width, allowing fields to span words.
func packSpanning(encoded []uint64, width int) []uint32 {
	words := make([]uint32, encoding.WordsFor(len(encoded)*width))
	for i, v := range encoded {
		encoding.PutField(words, i*width, width, v)
	}

	return words
}
