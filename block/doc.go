// Package block implements the three bit-packing strategies and the immutable
// compressed Block they produce.
//
// Every element is zig-zag encoded first, so small magnitudes of either sign
// become small unsigned values, and then packed into an array of 32-bit words.
//
// # Strategies
//
//   - CompressNoOverflow: fields never cross a word boundary; each word holds
//     32 / bits_per_value fields and may waste its top bits.
//   - CompressOverflow: fields are packed back-to-back and may span two words;
//     the smallest output for a uniform width.
//   - CompressOverflowArea: values above a percentile threshold move to an
//     overflow area so the common case is packed at a narrow width. The layout
//     is only kept when it beats plain spanning packing.
//
// All strategies support O(1) Get.
//
// # Persistence
//
// Encode serializes a block into a 32-byte header (see package section)
// followed by the word payload, optionally compressed by a package compress
// codec. Decode restores an independent Block; NewView reads an uncompressed
// serialized block in place, which pairs well with memory-mapped files.
//
// # Thread Safety
//
// Block and View are immutable after construction and safe for concurrent use.
package block
