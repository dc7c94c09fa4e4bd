package block

import (
	"fmt"
	"strings"

	"github.com/arloliu/bitpack/encoding"
	"github.com/arloliu/bitpack/format"
)

// Info is the metadata record of a compressed block.
//
// The first group of fields is reported for every strategy. ValuesPerWord and
// WastedBitsPerWord are only set by the no-overflow strategy; the overflow-area
// fields are only set by the overflow-area strategy.
type Info struct {
	Strategy format.StrategyType

	OriginalLength   int     // number of elements
	CompressedLength int     // number of packed words
	BitsPerValue     int     // width of a main-area field
	CompressionRatio float64 // OriginalBits / CompressedBits, 0 for an empty block
	OriginalBits     int     // OriginalLength * 32
	CompressedBits   int     // CompressedLength * 32

	ValuesPerWord     int
	WastedBitsPerWord int

	HasOverflowArea   bool
	OverflowAreaSize  int // number of outliers
	MainBits          int
	OverflowIndexBits int
	OutlierWords      int // words per outlier
}

func newInfo(l *layout, wordCount int) Info {
	info := Info{
		Strategy:         l.strategy,
		OriginalLength:   l.length,
		CompressedLength: wordCount,
		BitsPerValue:     l.bitsPerValue,
		OriginalBits:     l.length * encoding.WordBits,
		CompressedBits:   wordCount * encoding.WordBits,
	}

	if info.CompressedBits > 0 {
		info.CompressionRatio = float64(info.OriginalBits) / float64(info.CompressedBits)
	}

	switch l.strategy { //nolint:exhaustive
	case format.StrategyNoOverflow:
		info.ValuesPerWord = l.valuesPerWord
		info.WastedBitsPerWord = l.wastedBitsPerWord()
	case format.StrategyOverflowArea:
		info.HasOverflowArea = l.hasOverflow
		info.OverflowAreaSize = l.outlierCount
		info.MainBits = l.mainBits
		info.OverflowIndexBits = l.overflowIndexBits
		info.OutlierWords = l.outlierWords
	}

	return info
}

// String renders the record as aligned "key: value" lines.
func (i Info) String() string {
	var sb strings.Builder

	line := func(key string, value any) {
		fmt.Fprintf(&sb, "%-22s %v\n", key+":", value)
	}

	line("strategy", i.Strategy)
	line("original_length", i.OriginalLength)
	line("compressed_length", i.CompressedLength)
	line("bits_per_value", i.BitsPerValue)
	line("compression_ratio", fmt.Sprintf("%.2fx", i.CompressionRatio))
	line("original_bits", i.OriginalBits)
	line("compressed_bits", i.CompressedBits)

	switch i.Strategy { //nolint:exhaustive
	case format.StrategyNoOverflow:
		line("values_per_word", i.ValuesPerWord)
		line("wasted_bits_per_word", i.WastedBitsPerWord)
	case format.StrategyOverflowArea:
		line("has_overflow_area", i.HasOverflowArea)
		line("overflow_area_size", i.OverflowAreaSize)
		line("main_bits", i.MainBits)
		line("overflow_index_bits", i.OverflowIndexBits)
		line("outlier_words", i.OutlierWords)
	}

	return sb.String()
}
