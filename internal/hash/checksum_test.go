package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum32(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64 // full xxHash64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"long", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, uint32(tt.sum), Checksum32([]byte(tt.data)))
		})
	}
}

func TestChecksum_DetectsBitFlip(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	sum := Checksum32(data)

	data[3] ^= 0x10
	require.NotEqual(t, sum, Checksum32(data))
}
