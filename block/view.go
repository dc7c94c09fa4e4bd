package block

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/bitpack/encoding"
	"github.com/arloliu/bitpack/endian"
	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/format"
	"github.com/arloliu/bitpack/internal/hash"
	"github.com/arloliu/bitpack/section"
)

// View gives random access to a serialized block without copying its payload.
//
// It is meant for blocks held in memory the caller does not want to duplicate,
// typically a memory-mapped file. The payload must be uncompressed. The View
// references data, so data must stay valid and unmodified while the View is in
// use.
//
// NewView only checks the header; call Verify to check the payload checksum,
// which reads the whole payload.
type View struct {
	layout

	payload  []byte
	checksum uint32

	// native is set when the payload byte order matches the host and the
	// payload is 4-byte aligned, so words are read in place.
	native wordSlice
	bytes  byteWords
}

// NewView parses the header of a serialized block and returns a View over it.
//
// Returns:
//   - *View: The view, referencing data
//   - error: header errors as for Decode, errs.ErrCompressedPayload if the
//     payload is compressed, errs.ErrCorruptedBlock on a short payload
func NewView(data []byte) (*View, error) {
	header, err := section.ParseBlockHeader(data)
	if err != nil {
		return nil, err
	}

	if c := header.Flag.CompressionType(); c != format.CompressionNone {
		return nil, fmt.Errorf("%w: payload uses %s", errs.ErrCompressedPayload, c)
	}

	l, err := layoutFromHeader(&header)
	if err != nil {
		return nil, err
	}

	payload := data[section.PayloadOffset:]
	if len(payload) != header.PayloadSize() {
		return nil, fmt.Errorf("%w: payload is %d bytes, header expects %d",
			errs.ErrCorruptedBlock, len(payload), header.PayloadSize())
	}

	engine := header.Flag.GetEndianEngine()
	v := &View{
		layout:   l,
		payload:  payload,
		checksum: header.Checksum,
		bytes:    byteWords{data: payload, engine: engine},
	}

	if len(payload) > 0 && endian.CompareNativeEndian(engine) && uintptr(unsafe.Pointer(&payload[0]))%section.WordSize == 0 {
		v.native = unsafe.Slice((*uint32)(unsafe.Pointer(&payload[0])), len(payload)/section.WordSize)
	}

	return v, nil
}

// Verify checks the payload against the header checksum and, for blocks with
// an overflow area, that the outlier references are consistent.
//
// Returns:
//   - error: errs.ErrChecksumMismatch or errs.ErrCorruptedBlock
func (v *View) Verify() error {
	if sum := hash.Checksum32(v.payload); sum != v.checksum {
		return fmt.Errorf("%w: got %#08x, header has %#08x", errs.ErrChecksumMismatch, sum, v.checksum)
	}

	if !v.hasOverflow {
		return nil
	}

	var err error
	if v.native != nil {
		_, err = rebuildOverflowIndex(&v.layout, v.native)
	} else {
		_, err = rebuildOverflowIndex(&v.layout, v.bytes)
	}

	return err
}

// Strategy returns the strategy that produced the block.
func (v *View) Strategy() format.StrategyType {
	return v.strategy
}

// Len returns the number of elements in the block.
func (v *View) Len() int {
	return v.length
}

// Get returns element i, reading only the words that hold it.
//
// Returns:
//   - int64: The element
//   - error: errs.ErrIndexOutOfRange if i is outside [0, Len()),
//     errs.ErrCorruptedBlock if the element references a missing outlier
func (v *View) Get(i int) (int64, error) {
	if i < 0 || i >= v.length {
		return 0, fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, i, v.length)
	}

	u, ok := v.encodedAt(i)
	if !ok {
		return 0, fmt.Errorf("%w: element %d references a missing outlier", errs.ErrCorruptedBlock, i)
	}

	return encoding.ZigZagDecode(u), nil
}

// Decompress returns all elements in order.
func (v *View) Decompress() ([]int64, error) {
	values := make([]int64, v.length)
	for i := range values {
		u, ok := v.encodedAt(i)
		if !ok {
			return nil, fmt.Errorf("%w: element %d references a missing outlier", errs.ErrCorruptedBlock, i)
		}
		values[i] = encoding.ZigZagDecode(u)
	}

	return values, nil
}

// Info returns the metadata record of the block.
func (v *View) Info() Info {
	return newInfo(&v.layout, v.wordCount())
}

func (v *View) encodedAt(i int) (uint64, bool) {
	if v.native != nil {
		return encodedAt(&v.layout, v.native, i)
	}

	return encodedAt(&v.layout, v.bytes, i)
}

// byteWords reads packed words straight from serialized bytes in any byte order.
type byteWords struct {
	data   []byte
	engine endian.EndianEngine
}

func (b byteWords) word(idx int) uint64 {
	return uint64(b.engine.Uint32(b.data[idx*section.WordSize:]))
}

func (b byteWords) field(bitPos, width int) uint64 {
	idx := bitPos / encoding.WordBits
	offset := bitPos % encoding.WordBits

	var value uint64
	shift := 0
	for width > 0 {
		n := min(encoding.WordBits-offset, width)
		part := (b.word(idx) >> offset) & (uint64(1)<<n - 1)
		value |= part << shift
		shift += n
		width -= n
		idx++
		offset = 0
	}

	return value
}
