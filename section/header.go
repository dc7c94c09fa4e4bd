package section

import (
	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/format"
)

// BlockHeader is the fixed-size header at the start of a serialized block.
//
// All multi-byte fields except Options use the byte order selected by the flag;
// Options is always little-endian so the order can be detected before anything
// else is read.
type BlockHeader struct {
	// Length is the number of elements in the block.
	Length uint64 // byte offset 4-11

	BitsPerValue      uint8 // byte offset 12
	MainBits          uint8 // byte offset 13
	OverflowIndexBits uint8 // byte offset 14
	OutlierWords      uint8 // byte offset 15

	// ValuesPerWord is only used by the no-overflow strategy.
	ValuesPerWord uint32 // byte offset 16-19
	// OutlierCount is the number of values stored in the overflow area.
	OutlierCount uint32 // byte offset 20-23
	// WordCount is the number of packed words, main and overflow area together.
	WordCount uint32 // byte offset 24-27
	// Checksum is the low half of the xxHash64 of the uncompressed payload bytes.
	Checksum uint32 // byte offset 28-31

	// Flag is a packed field for various flags and magic number.
	Flag BlockFlag // byte offset 0-3
}

// NewBlockHeader creates a header for a block produced by strategy.
func NewBlockHeader(strategy format.StrategyType) *BlockHeader {
	return &BlockHeader{
		Flag: NewBlockFlag(strategy),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 32 bytes, or flag validation errors
func (h *BlockHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Strategy = data[2]
	h.Flag.Compression = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()

	h.Length = engine.Uint64(data[4:12])
	h.BitsPerValue = data[12]
	h.MainBits = data[13]
	h.OverflowIndexBits = data[14]
	h.OutlierWords = data[15]
	h.ValuesPerWord = engine.Uint32(data[16:20])
	h.OutlierCount = engine.Uint32(data[20:24])
	h.WordCount = engine.Uint32(data[24:28])
	h.Checksum = engine.Uint32(data[28:32])

	return nil
}

// Bytes serializes the header into a new 32-byte slice.
func (h *BlockHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *BlockHeader) AppendTo(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.Strategy, h.Flag.Compression)
	dst = engine.AppendUint64(dst, h.Length)
	dst = append(dst, h.BitsPerValue, h.MainBits, h.OverflowIndexBits, h.OutlierWords)
	dst = engine.AppendUint32(dst, h.ValuesPerWord)
	dst = engine.AppendUint32(dst, h.OutlierCount)
	dst = engine.AppendUint32(dst, h.WordCount)
	dst = engine.AppendUint32(dst, h.Checksum)

	return dst
}

// PayloadSize returns the size in bytes of the uncompressed word payload.
func (h *BlockHeader) PayloadSize() int {
	return int(h.WordCount) * WordSize
}

// ParseBlockHeader parses a BlockHeader from the start of data.
//
// Parameters:
//   - data: Byte slice starting with a header (must be at least 32 bytes)
//
// Returns:
//   - BlockHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseBlockHeader(data []byte) (BlockHeader, error) {
	if len(data) < HeaderSize {
		return BlockHeader{}, errs.ErrInvalidHeaderSize
	}

	h := BlockHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return BlockHeader{}, err
	}

	return h, nil
}
