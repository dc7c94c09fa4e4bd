package block

import (
	"github.com/arloliu/bitpack/encoding"
	"github.com/arloliu/bitpack/format"
)

// CompressNoOverflow packs values so that no field ever crosses a word boundary.
//
// Each word holds values_per_word = 32 / bits_per_value fields side by side and
// leaves its top 32 - values_per_word*bits_per_value bits unused. Element i
// lives in word i / values_per_word, so Get is a single shift and mask.
//
// When a single value needs more than 32 bits, values_per_word collapses to 1
// and each slot is exactly bits_per_value bits wide, laid out back-to-back.
//
// Parameters:
//   - values: Input sequence, may be empty
//
// Returns:
//   - *Block: The compressed block
func CompressNoOverflow(values []int64) *Block {
	b := &Block{layout: layout{strategy: format.StrategyNoOverflow, length: len(values)}}
	if len(values) == 0 {
		return b
	}

	encoded := encoding.ZigZagEncodeSlice(values)
	bpv := encoding.BitsNeeded(encoded)
	b.bitsPerValue = bpv
	b.mainBits = bpv

	if bpv > encoding.WordBits {
		b.valuesPerWord = 1
		b.mainWords = encoding.WordsFor(len(encoded) * bpv)
		b.words = make([]uint32, b.mainWords)
		for i, v := range encoded {
			encoding.PutField(b.words, i*bpv, bpv, v)
		}

		return b
	}

	vpw := encoding.WordBits / bpv
	b.valuesPerWord = vpw
	b.mainWords = (len(encoded) + vpw - 1) / vpw
	b.words = make([]uint32, b.mainWords)
	for i, v := range encoded {
		b.words[i/vpw] |= uint32(v) << ((i % vpw) * bpv) //nolint:gosec
	}

	return b
}

// wastedBitsPerWord returns the unused bits at the top of every no-overflow word.
func (l *layout) wastedBitsPerWord() int {
	if l.strategy != format.StrategyNoOverflow || l.length == 0 || l.bitsPerValue > encoding.WordBits {
		return 0
	}

	return encoding.WordBits - l.valuesPerWord*l.bitsPerValue
}
