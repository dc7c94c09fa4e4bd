package section

import (
	"testing"

	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/format"
	"github.com/stretchr/testify/require"
)

func TestNewBlockHeader(t *testing.T) {
	header := NewBlockHeader(format.StrategyOverflow)

	require.NotNil(t, header)
	require.Equal(t, uint16(MagicBlockOpt), header.Flag.GetMagicNumber())
	require.True(t, header.Flag.IsLittleEndian())
	require.Equal(t, format.StrategyOverflow, header.Flag.StrategyType())
	require.Equal(t, format.CompressionNone, header.Flag.CompressionType())
	require.False(t, header.Flag.HasOverflowArea())
	require.NoError(t, header.Flag.Validate())
}

func sampleHeader() *BlockHeader {
	h := NewBlockHeader(format.StrategyOverflowArea)
	h.Flag.SetOverflowArea(true)
	h.Flag.SetCompression(format.CompressionZstd)
	h.Length = 100
	h.BitsPerValue = 3
	h.MainBits = 2
	h.OverflowIndexBits = 2
	h.OutlierWords = 1
	h.OutlierCount = 3
	h.WordCount = 13
	h.Checksum = 0xDEADBEEF

	return h
}

func TestBlockHeader_RoundTrip(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		original := sampleHeader()
		if bigEndian {
			original.Flag.WithBigEndian()
		}

		data := original.Bytes()
		require.Len(t, data, HeaderSize)

		parsed := &BlockHeader{}
		require.NoError(t, parsed.Parse(data))
		require.Equal(t, *original, *parsed)
		require.Equal(t, 13*WordSize, parsed.PayloadSize())
	}
}

func TestBlockHeader_Layout(t *testing.T) {
	data := sampleHeader().Bytes()

	// Options little-endian: magic 0xB170 | overflow area bit
	require.Equal(t, byte(0x71), data[0])
	require.Equal(t, byte(0xB1), data[1])
	require.Equal(t, byte(format.StrategyOverflowArea), data[2])
	require.Equal(t, byte(format.CompressionZstd), data[3])
	require.Equal(t, byte(100), data[4])
	require.Equal(t, []byte{3, 2, 2, 1}, data[12:16])
	require.Equal(t, []byte{13, 0, 0, 0}, data[24:28])
	require.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE}, data[28:32])
}

func TestBlockHeader_Parse_Errors(t *testing.T) {
	t.Run("invalid size", func(t *testing.T) {
		err := (&BlockHeader{}).Parse([]byte{1, 2, 3})
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

		_, err = ParseBlockHeader(make([]byte, HeaderSize-1))
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("invalid magic", func(t *testing.T) {
		data := sampleHeader().Bytes()
		data[1] = 0x00
		_, err := ParseBlockHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	})

	t.Run("reserved bits set", func(t *testing.T) {
		data := sampleHeader().Bytes()
		data[0] |= 0x04
		_, err := ParseBlockHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		data := sampleHeader().Bytes()
		data[2] = 0x7F
		_, err := ParseBlockHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("unknown compression", func(t *testing.T) {
		data := sampleHeader().Bytes()
		data[3] = 0x00
		_, err := ParseBlockHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("overflow area on a plain strategy", func(t *testing.T) {
		data := sampleHeader().Bytes()
		data[2] = byte(format.StrategyOverflow)
		_, err := ParseBlockHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})
}

func TestParseBlockHeader_IgnoresTrailingPayload(t *testing.T) {
	data := append(sampleHeader().Bytes(), 0x01, 0x02, 0x03, 0x04)

	h, err := ParseBlockHeader(data)
	require.NoError(t, err)
	require.Equal(t, uint64(100), h.Length)
}
