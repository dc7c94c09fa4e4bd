package section

const (
	// Bit masks of the Options field
	OverflowAreaMask = 0x0001 // Mask for overflow-area bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicBlockOpt identifies a serialized bitpack block (bits 4-15).
	MagicBlockOpt = 0xB170
)

// offsets and sizes in a serialized block
const (
	HeaderSize        = 32         // fixed header size in bytes
	PayloadOffset     = HeaderSize // byte offset where the word payload starts
	WordSize          = 4          // bytes per packed word
	MaxFieldWidth     = 64         // widest packed field in bits
	MaxOutlierWords   = 2          // words per outlier for 64-bit values
	MaxValuesPerWord  = 32         // 1-bit values in a 32-bit word
	MaxSerializedSize = 1<<32 - 1  // word count and outlier count are uint32
)
