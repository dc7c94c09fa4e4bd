package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	require.Equal(t, 0, len(bb.B))
	require.Equal(t, 1024, cap(bb.B))
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(BlockBufferDefaultSize)

	bb.B = append(bb.B, "hello"...)
	bb.B = append(bb.B, " world"...)
	require.Equal(t, []byte("hello world"), bb.Bytes())

	capBefore := cap(bb.B)
	bb.Reset()
	require.Equal(t, 0, len(bb.B))
	require.Equal(t, capBefore, cap(bb.B), "reset keeps capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity is a no-op", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		require.Equal(t, 64, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.B = append(bb.B, "12345678"...)
		bb.Grow(1)
		require.GreaterOrEqual(t, cap(bb.B), 8+BlockBufferDefaultSize)
		require.Equal(t, []byte("12345678"), bb.Bytes(), "grow preserves data")
	})

	t.Run("large request grows to fit", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.Grow(BlockBufferDefaultSize * 3)
		require.GreaterOrEqual(t, cap(bb.B), BlockBufferDefaultSize*3)
	})
}

func TestByteBufferPool_GetPut(t *testing.T) {
	bb := GetBlockBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, len(bb.B))

	bb.B = append(bb.B, "payload"...)
	PutBlockBuffer(bb)

	bb2 := GetBlockBuffer()
	require.Equal(t, 0, len(bb2.B), "pooled buffers are reset")
	PutBlockBuffer(bb2)

	PutBlockBuffer(nil)
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	large := NewByteBuffer(128)
	p.Put(large)

	got := p.Get()
	require.NotSame(t, large, got, "oversized buffers are discarded")
	require.Equal(t, 16, cap(got.B))
}

func TestByteBufferPool_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				bb := GetBlockBuffer()
				bb.B = append(bb.B, 'x')
				PutBlockBuffer(bb)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkPool_GetWritePut(b *testing.B) {
	data := make([]byte, 4096)
	b.ReportAllocs()
	for b.Loop() {
		bb := GetBlockBuffer()
		bb.Grow(len(data))
		bb.B = append(bb.B, data...)
		PutBlockBuffer(bb)
	}
}
