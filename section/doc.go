// Package section defines the binary header of a serialized bitpack block.
//
// # Layout
//
// A serialized block is a fixed 32-byte header followed by the word payload:
//
//	offset  size  field
//	0       2     Options: bit 0 overflow area, bit 1 endianness, bits 4-15 magic 0xB17
//	2       1     Strategy (format.StrategyType)
//	3       1     Compression (format.CompressionType) of the payload
//	4       8     Length, number of elements
//	12      1     BitsPerValue
//	13      1     MainBits
//	14      1     OverflowIndexBits
//	15      1     OutlierWords
//	16      4     ValuesPerWord
//	20      4     OutlierCount
//	24      4     WordCount
//	28      4     Checksum, low 32 bits of xxHash64 of the uncompressed payload
//	32      ...   payload: WordCount uint32 words, optionally compressed
//
// The Options field is always little-endian; every other multi-byte field and
// the payload words use the byte order selected by the endianness bit.
package section
