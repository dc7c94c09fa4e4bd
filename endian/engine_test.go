package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	var probe uint16 = 0x0102
	first := (*[2]byte)(unsafe.Pointer(&probe))[0]

	switch first {
	case 0x01:
		require.Equal(t, binary.BigEndian, CheckEndianness())
		require.True(t, IsNativeBigEndian())
	case 0x02:
		require.Equal(t, binary.LittleEndian, CheckEndianness())
		require.True(t, IsNativeLittleEndian())
	default:
		require.Failf(t, "unexpected byte value", "got: %v", first)
	}

	require.NotEqual(t, IsNativeLittleEndian(), IsNativeBigEndian())
}

func TestCompareNativeEndian(t *testing.T) {
	little := GetLittleEndianEngine()
	big := GetBigEndianEngine()

	require.NotEqual(t, CompareNativeEndian(little), CompareNativeEndian(big))
	require.Equal(t, IsNativeLittleEndian(), CompareNativeEndian(little))
}

func TestEngine_WordRoundTrip(t *testing.T) {
	words := []uint32{0, 1, 0xDEADBEEF, 0xFFFFFFFF}

	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		var buf []byte
		for _, w := range words {
			buf = engine.AppendUint32(buf, w)
		}
		require.Len(t, buf, len(words)*4)

		for i, w := range words {
			require.Equal(t, w, engine.Uint32(buf[i*4:]))
		}
	}

	le := GetLittleEndianEngine().AppendUint32(nil, 0x01020304)
	be := GetBigEndianEngine().AppendUint32(nil, 0x01020304)
	require.Equal(t, []byte{4, 3, 2, 1}, le)
	require.Equal(t, []byte{1, 2, 3, 4}, be)
}
