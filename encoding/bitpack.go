package encoding

// WordBits is the width of a packed word.
const WordBits = 32

// WordsFor returns the number of words needed to hold totalBits bits.
func WordsFor(totalBits int) int {
	return (totalBits + WordBits - 1) / WordBits
}

// lowMask returns a mask of the n low bits, n in [0, 64].
func lowMask(n int) uint64 {
	return uint64(1)<<n - 1
}

// PutField writes the low width bits of value at absolute bit offset bitPos.
//
// The field is ORed into place, so the destination bits must be zero. A field
// that does not fit in the remainder of its word continues at bit 0 of the next
// word; widths above WordBits may touch up to three words.
//
// Parameters:
//   - words: Destination word array, large enough to hold bitPos+width bits
//   - bitPos: Absolute bit offset of the field
//   - width: Field width in bits, 1 to 64
//   - value: Field value, bits above width are ignored
func PutField(words []uint32, bitPos, width int, value uint64) {
	value &= lowMask(width)

	idx := bitPos / WordBits
	offset := bitPos % WordBits

	// fast path: the field fits in the current word
	if WordBits-offset >= width {
		words[idx] |= uint32(value) << offset
		return
	}

	for width > 0 {
		n := min(WordBits-offset, width)
		words[idx] |= uint32(value&lowMask(n)) << offset
		value >>= n
		width -= n
		idx++
		offset = 0
	}
}

// Field reads a width-bit field at absolute bit offset bitPos, mirroring PutField.
//
// Parameters:
//   - words: Source word array
//   - bitPos: Absolute bit offset of the field
//   - width: Field width in bits, 1 to 64
//
// Returns:
//   - uint64: The field value
func Field(words []uint32, bitPos, width int) uint64 {
	idx := bitPos / WordBits
	offset := bitPos % WordBits

	if WordBits-offset >= width {
		return uint64(words[idx]>>offset) & lowMask(width)
	}

	var value uint64
	shift := 0
	for width > 0 {
		n := min(WordBits-offset, width)
		part := uint64(words[idx]>>offset) & lowMask(n)
		value |= part << shift
		shift += n
		width -= n
		idx++
		offset = 0
	}

	return value
}
