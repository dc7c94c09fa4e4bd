// Package errs defines the sentinel errors shared by all bitpack packages.
//
// Every error returned by the library either is one of these values or wraps
// one of them, so callers can classify failures with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

// API misuse errors.
var (
	// ErrUninitialized is returned when Get, Decompress or Describe is called on a
	// compressor that holds no compressed block, or when the supplied words do not
	// match the metadata of the held block.
	ErrUninitialized = errors.New("bitpack: no compressed block available, compress first")

	// ErrIndexOutOfRange is returned by Get for an index outside [0, length).
	ErrIndexOutOfRange = errors.New("bitpack: index out of range")
)

// Configuration errors. All of them wrap ErrUnknownConfiguration.
var (
	ErrUnknownConfiguration = errors.New("bitpack: unknown configuration")

	ErrUnknownStrategy    = fmt.Errorf("%w: unknown strategy", ErrUnknownConfiguration)
	ErrInvalidPercentile  = fmt.Errorf("%w: percentile threshold must be in (0, 1]", ErrUnknownConfiguration)
	ErrInvalidCompression = fmt.Errorf("%w: invalid payload compression", ErrUnknownConfiguration)
)

// Serialization errors.
var (
	ErrInvalidHeaderSize  = errors.New("bitpack: invalid header size")
	ErrInvalidMagic       = errors.New("bitpack: invalid magic number")
	ErrInvalidHeaderFlags = errors.New("bitpack: invalid header flags")
	ErrChecksumMismatch   = errors.New("bitpack: payload checksum mismatch")
	ErrCorruptedBlock     = errors.New("bitpack: corrupted block")
	ErrCompressedPayload  = errors.New("bitpack: payload is compressed, decode the block instead")
	ErrBlockTooLarge      = errors.New("bitpack: block exceeds serializable size")
	ErrPayloadSize        = errors.New("bitpack: decompressed payload size mismatch")
)
