package block

import (
	"github.com/arloliu/bitpack/encoding"
	"github.com/arloliu/bitpack/format"
)

// layout is the metadata needed to locate any element inside a packed word array.
//
// It is shared by Block, which owns its words, and View, which reads them in
// place from serialized bytes.
type layout struct {
	strategy format.StrategyType
	length   int

	// bitsPerValue is the width of a main-area field; it includes the flag
	// bit when the overflow area is in use.
	bitsPerValue int

	// valuesPerWord is only set by the no-overflow strategy.
	valuesPerWord int

	hasOverflow       bool
	mainBits          int
	overflowIndexBits int
	outlierCount      int
	outlierWords      int

	mainWords int
}

// wordSource reads a field of up to 64 bits from a packed word array.
type wordSource interface {
	field(bitPos, width int) uint64
}

// wordSlice is the in-memory word source.
type wordSlice []uint32

func (w wordSlice) field(bitPos, width int) uint64 {
	return encoding.Field(w, bitPos, width)
}

func (l *layout) wordCount() int {
	return l.mainWords + l.outlierCount*l.outlierWords
}

// fieldPos returns the bit offset of the main-area field of element i.
func (l *layout) fieldPos(i int) int {
	if l.strategy == format.StrategyNoOverflow && l.bitsPerValue <= encoding.WordBits {
		return (i/l.valuesPerWord)*encoding.WordBits + (i%l.valuesPerWord)*l.bitsPerValue
	}

	return i * l.bitsPerValue
}

// outlierPos returns the bit offset of outlier slot.
func (l *layout) outlierPos(slot int) int {
	return (l.mainWords + slot*l.outlierWords) * encoding.WordBits
}

// encodedAt returns the zig-zag encoded value of element i.
//
// The caller guarantees 0 <= i < length. ok is false when the field points
// outside the outlier area, which only happens for corrupted input.
func encodedAt[S wordSource](l *layout, src S, i int) (uint64, bool) {
	v := src.field(l.fieldPos(i), l.bitsPerValue)
	if !l.hasOverflow {
		return v, true
	}

	valueBits := l.bitsPerValue - 1
	payload := v & (uint64(1)<<valueBits - 1)
	if v>>valueBits == 0 {
		return payload, true
	}

	if payload >= uint64(l.outlierCount) { //nolint:gosec
		return 0, false
	}

	return src.field(l.outlierPos(int(payload)), l.outlierWords*encoding.WordBits), true //nolint:gosec
}
