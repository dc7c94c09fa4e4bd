package section

import (
	"github.com/arloliu/bitpack/endian"
	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/format"
)

// BlockFlag is the packed flag section at the start of the block header.
type BlockFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is set when the block carries an overflow area.
	// Bit 1 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2-3 are reserved, must be 0.
	// Bit 4-15 are the magic number 0xB17.
	Options uint16

	// Strategy is the format.StrategyType that produced the block.
	Strategy uint8
	// Compression is the format.CompressionType applied to the word payload.
	Compression uint8
}

// NewBlockFlag creates a little-endian flag for strategy with an uncompressed payload.
func NewBlockFlag(strategy format.StrategyType) BlockFlag {
	flag := BlockFlag{
		Options:     MagicBlockOpt,
		Strategy:    uint8(strategy),
		Compression: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// HasOverflowArea returns whether the block carries an overflow area.
func (f BlockFlag) HasOverflowArea() bool {
	return (f.Options & OverflowAreaMask) != 0
}

// SetOverflowArea sets or clears the overflow-area bit.
func (f *BlockFlag) SetOverflowArea(enabled bool) {
	if enabled {
		f.Options |= OverflowAreaMask
	} else {
		f.Options &^= OverflowAreaMask
	}
}

// IsLittleEndian returns whether the payload is little-endian.
func (f BlockFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the payload is big-endian.
func (f BlockFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *BlockFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *BlockFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f BlockFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// StrategyType returns the strategy stored in the flag.
func (f BlockFlag) StrategyType() format.StrategyType {
	return format.StrategyType(f.Strategy)
}

// CompressionType returns the payload compression stored in the flag.
func (f BlockFlag) CompressionType() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// SetCompression sets the payload compression type.
func (f *BlockFlag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// Validate checks the magic number, reserved bits, strategy and compression.
func (f BlockFlag) Validate() error {
	if f.GetMagicNumber() != MagicBlockOpt {
		return errs.ErrInvalidMagic
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.StrategyType().IsValid() || !f.CompressionType().IsValid() {
		return errs.ErrInvalidHeaderFlags
	}

	// only the overflow-area strategy may carry an overflow area
	if f.HasOverflowArea() && f.StrategyType() != format.StrategyOverflowArea {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f BlockFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
