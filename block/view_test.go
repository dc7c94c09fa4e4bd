package block

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitpack/endian"
	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/format"
	"github.com/arloliu/bitpack/section"
)

func TestView_MatchesBlock(t *testing.T) {
	for name, values := range testInputs() {
		for strategy, b := range compressAll(t, values) {
			for _, bigEndian := range []bool{false, true} {
				opt := WithLittleEndian()
				if bigEndian {
					opt = WithBigEndian()
				}

				data, err := b.Encode(opt)
				require.NoError(t, err)

				t.Run(name+"/"+strategy.String(), func(t *testing.T) {
					v, err := NewView(data)
					require.NoError(t, err)
					require.NoError(t, v.Verify())

					require.Equal(t, b.Strategy(), v.Strategy())
					require.Equal(t, b.Len(), v.Len())
					require.Equal(t, b.Info(), v.Info())

					for i := range values {
						want, err := b.Get(i)
						require.NoError(t, err)

						got, err := v.Get(i)
						require.NoError(t, err)
						require.Equal(t, want, got)
					}

					decoded, err := v.Decompress()
					require.NoError(t, err)
					require.Equal(t, values, decoded)
				})
			}
		}
	}
}

func TestView_NativeFastPath(t *testing.T) {
	b := CompressOverflow(outlierSequence())

	le, err := b.Encode(WithLittleEndian())
	require.NoError(t, err)
	be, err := b.Encode(WithBigEndian())
	require.NoError(t, err)

	native, foreign := le, be
	if endian.IsNativeBigEndian() {
		native, foreign = be, le
	}

	v, err := NewView(native)
	require.NoError(t, err)
	require.NotNil(t, v.native)

	v, err = NewView(foreign)
	require.NoError(t, err)
	require.Nil(t, v.native)
}

func TestView_Misaligned(t *testing.T) {
	b, err := CompressOverflowArea(outlierSequence())
	require.NoError(t, err)

	data, err := b.Encode()
	require.NoError(t, err)

	shifted := make([]byte, len(data)+1)
	copy(shifted[1:], data)

	v, err := NewView(shifted[1:])
	require.NoError(t, err)
	require.Nil(t, v.native)

	decoded, err := v.Decompress()
	require.NoError(t, err)
	require.Equal(t, outlierSequence(), decoded)
}

func TestView_Empty(t *testing.T) {
	data, err := CompressNoOverflow(nil).Encode()
	require.NoError(t, err)
	require.Len(t, data, section.HeaderSize)

	v, err := NewView(data)
	require.NoError(t, err)
	require.Zero(t, v.Len())
	require.NoError(t, v.Verify())

	decoded, err := v.Decompress()
	require.NoError(t, err)
	require.Empty(t, decoded)

	_, err = v.Get(0)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

func TestView_Errors(t *testing.T) {
	b, err := CompressOverflowArea(outlierSequence())
	require.NoError(t, err)

	t.Run("compressed payload", func(t *testing.T) {
		data, err := b.Encode(WithCompression(format.CompressionS2))
		require.NoError(t, err)

		_, err = NewView(data)
		require.ErrorIs(t, err, errs.ErrCompressedPayload)
	})

	t.Run("short payload", func(t *testing.T) {
		data, err := b.Encode()
		require.NoError(t, err)

		_, err = NewView(data[:len(data)-1])
		require.ErrorIs(t, err, errs.ErrCorruptedBlock)
	})

	t.Run("index out of range", func(t *testing.T) {
		data, err := b.Encode()
		require.NoError(t, err)

		v, err := NewView(data)
		require.NoError(t, err)

		_, err = v.Get(-1)
		require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
		_, err = v.Get(100)
		require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		data, err := b.Encode()
		require.NoError(t, err)
		data[len(data)-1] ^= 0x80

		v, err := NewView(data)
		require.NoError(t, err)
		require.ErrorIs(t, v.Verify(), errs.ErrChecksumMismatch)
	})

	t.Run("outlier slot out of bounds", func(t *testing.T) {
		data, err := b.Encode()
		require.NoError(t, err)
		data = corruptOutlierSlot(slices.Clone(data))

		v, err := NewView(data)
		require.NoError(t, err)
		require.ErrorIs(t, v.Verify(), errs.ErrCorruptedBlock)

		_, err = v.Get(25)
		require.ErrorIs(t, err, errs.ErrCorruptedBlock)

		_, err = v.Decompress()
		require.ErrorIs(t, err, errs.ErrCorruptedBlock)

		// elements outside the overflow area are still readable
		got, err := v.Get(0)
		require.NoError(t, err)
		require.Equal(t, int64(1), got)
	})
}
