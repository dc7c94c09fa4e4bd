// Package bitpack compresses sequences of signed integers by bit packing.
//
// Every value is zig-zag encoded and stored with the smallest field width that
// fits the largest one, in an array of 32-bit words. Three layouts are
// available:
//
//   - no_overflow: no field crosses a word boundary, the simplest random access
//   - with_overflow: fields span word boundaries, the densest uniform layout
//   - overflow_area: outliers move to a side area so the bulk packs narrower
//
// All of them keep O(1) random access to any element.
//
// # Basic Usage
//
//	import "github.com/arloliu/bitpack"
//
//	c, _ := bitpack.New("overflow_area")
//	words, _ := c.Compress([]int64{1, 1, 100000, 1, 1})
//
//	v, _ := c.Get(2)            // 100000, read in place
//	values, _ := c.Decompress(words)
//	info, _ := c.Describe()
//	fmt.Println(info.CompressionRatio)
//
// # Package Structure
//
// Compressor is a thin stateful wrapper that remembers the most recent
// compressed block. The block package exposes that block as an immutable
// value, plus serialization (block.Block.Encode, block.Decode) and zero-copy
// access to serialized blocks (block.NewView). Use it directly for concurrent
// readers or when blocks are stored.
package bitpack

import (
	"github.com/arloliu/bitpack/block"
	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/format"
)

// Compressor compresses sequences with a fixed strategy and keeps the block
// produced by the most recent Compress call.
//
// Get, Decompress and Describe operate on that block. A Compressor is not
// safe for concurrent use when Compress may run; share the *block.Block
// returned by Block instead.
type Compressor struct {
	strategy format.StrategyType
	opts     []block.Option
	blk      *block.Block
}

// New creates a Compressor for the named strategy.
//
// Names are matched case-insensitively: with_overflow (alias overflow),
// no_overflow (alias without_overflow) and overflow_area (alias
// with_overflow_area).
//
// Parameters:
//   - name: Strategy name
//   - opts: Compression options such as block.WithPercentileThreshold
//
// Returns:
//   - *Compressor: The compressor, holding no block yet
//   - error: errs.ErrUnknownStrategy or errs.ErrInvalidPercentile, both
//     wrapping errs.ErrUnknownConfiguration
//
// Example:
//
//	c, err := bitpack.New("overflow_area", block.WithPercentileThreshold(0.9))
//	if err != nil {
//	    return err
//	}
func New(name string, opts ...block.Option) (*Compressor, error) {
	strategy, err := format.ParseStrategy(name)
	if err != nil {
		return nil, err
	}

	return NewCompressor(strategy, opts...)
}

// NewCompressor creates a Compressor for strategy. Options are validated here,
// so later Compress calls cannot fail on configuration.
func NewCompressor(strategy format.StrategyType, opts ...block.Option) (*Compressor, error) {
	if !strategy.IsValid() {
		return nil, errs.ErrUnknownStrategy
	}

	if _, err := block.NewConfig(opts...); err != nil {
		return nil, err
	}

	return &Compressor{strategy: strategy, opts: opts}, nil
}

// Strategy returns the strategy of the compressor.
func (c *Compressor) Strategy() format.StrategyType {
	return c.strategy
}

// Compress packs values and returns the packed words.
//
// The new block replaces the previously held one. Empty input yields an empty
// word array.
func (c *Compressor) Compress(values []int64) ([]uint32, error) {
	blk, err := block.Compress(c.strategy, values, c.opts...)
	if err != nil {
		return nil, err
	}
	c.blk = blk

	return blk.Words(), nil
}

// Decompress decodes words produced by the most recent Compress call.
//
// Returns:
//   - []int64: The original sequence, empty for empty words
//   - error: errs.ErrUninitialized if nothing was compressed yet or words do
//     not match the held block
func (c *Compressor) Decompress(words []uint32) ([]int64, error) {
	if len(words) == 0 {
		return []int64{}, nil
	}

	if c.blk == nil {
		return nil, errs.ErrUninitialized
	}

	return c.blk.DecompressWords(words)
}

// Get returns element i of the held block without decompressing it.
//
// Returns:
//   - int64: The element
//   - error: errs.ErrUninitialized before the first Compress,
//     errs.ErrIndexOutOfRange for i outside [0, n)
func (c *Compressor) Get(i int) (int64, error) {
	if c.blk == nil {
		return 0, errs.ErrUninitialized
	}

	return c.blk.Get(i)
}

// Describe returns the metadata record of the held block.
func (c *Compressor) Describe() (block.Info, error) {
	if c.blk == nil {
		return block.Info{}, errs.ErrUninitialized
	}

	return c.blk.Info(), nil
}

// Block returns the held block, or nil before the first Compress.
func (c *Compressor) Block() *block.Block {
	return c.blk
}

// AvailableStrategies returns every accepted strategy name, aliases included.
func AvailableStrategies() []string {
	return format.StrategyNames()
}

// DescribeStrategy returns a one-line description of the named strategy.
func DescribeStrategy(name string) string {
	strategy, err := format.ParseStrategy(name)
	if err != nil {
		return "unknown strategy: " + name
	}

	return strategy.Description()
}
