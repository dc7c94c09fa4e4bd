// Package encoding provides the bit-level primitives shared by every bitpack strategy.
//
// The package has three parts:
//
//   - Signed-value codec: zig-zag encoding maps int64 to uint64 so that small
//     magnitudes of either sign need few bits.
//   - Bit-width calculator: the minimum field width for a set of encoded values.
//   - Word packer: read and write an arbitrary-width field (1 to 64 bits) at an
//     arbitrary bit offset inside a []uint32, spilling into the following word(s)
//     when the field crosses a word boundary.
//
// # Bit Order
//
// Fields are laid out LSB-first: bit offset p lives in word p/32 at in-word bit
// p%32. When a field crosses a boundary, its low bits stay in the current word
// and its high bits continue from bit 0 of the next word.
//
// # Example
//
//	values := []int64{3, -1, 7, 0}
//	encoded := encoding.ZigZagEncodeSlice(values)  // [6 1 14 0]
//	width := encoding.BitsNeeded(encoded)            // 4
//
//	words := make([]uint32, encoding.WordsFor(len(encoded)*width))
//	for i, v := range encoded {
//	    encoding.PutField(words, i*width, width, v)
//	}
//
//	v := encoding.ZigZagDecode(encoding.Field(words, 2*width, width)) // 7
//
// # Thread Safety
//
// All functions are pure. PutField mutates only the slice it is given; callers
// sharing a word slice across goroutines must synchronize writes themselves.
package encoding
