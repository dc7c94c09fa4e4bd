package block

import (
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/arloliu/bitpack/encoding"
	"github.com/arloliu/bitpack/format"
	"github.com/arloliu/bitpack/internal/pool"
)

// overflowPlan is the outcome of the overflow-area selection heuristic.
type overflowPlan struct {
	threshold    uint64
	mainBits     int
	allBits      int
	outlierWords int
	outliers     *roaring.Bitmap
	costWithout  int
	costWith     int
	useOverflow  bool
}

// CompressOverflowArea packs the bulk of values at a narrow width and moves
// statistical outliers into a side area appended after the main area.
//
// Every main-area field is one flag bit followed by value_bits bits. A clear
// flag means the bits hold the encoded value itself; a set flag means they hold
// the position of the value inside the outlier area. The layout is only used
// when it is strictly smaller than plain spanning packing; otherwise the block
// falls back to the same layout as CompressOverflow.
//
// Parameters:
//   - values: Input sequence, may be empty
//   - opts: WithPercentileThreshold, WithLogger
//
// Returns:
//   - *Block: The compressed block
//   - error: errs.ErrInvalidPercentile for an out-of-range threshold
func CompressOverflowArea(values []int64, opts ...Option) (*Block, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return compressOverflowArea(values, cfg), nil
}

func compressOverflowArea(values []int64, cfg *Config) *Block {
	b := &Block{layout: layout{strategy: format.StrategyOverflowArea, length: len(values)}}
	if len(values) == 0 {
		return b
	}

	encoded := encoding.ZigZagEncodeSlice(values)
	plan := planOverflowArea(encoded, cfg.threshold)

	cfg.logger.Debug("overflow area selection",
		"length", len(encoded),
		"percentile", cfg.threshold,
		"threshold", plan.threshold,
		"main_bits", plan.mainBits,
		"all_bits", plan.allBits,
		"outliers", plan.outliers.GetCardinality(),
		"cost_without", plan.costWithout,
		"cost_with", plan.costWith,
		"use_overflow_area", plan.useOverflow,
	)

	if !plan.useOverflow {
		b.bitsPerValue = plan.allBits
		b.mainBits = plan.allBits
		b.words = packSpanning(encoded, plan.allBits)
		b.mainWords = len(b.words)

		return b
	}

	count := int(plan.outliers.GetCardinality()) //nolint:gosec
	b.hasOverflow = true
	b.mainBits = plan.mainBits
	// narrower than the ceil(log2(count+1)) the cost estimate in planOverflowArea assumes
	b.overflowIndexBits = max(encoding.CeilLog2(count), 1)
	b.outlierCount = count
	b.outlierWords = plan.outlierWords

	valueBits := max(b.mainBits, b.overflowIndexBits)
	bpv := 1 + valueBits
	b.bitsPerValue = bpv
	b.mainWords = encoding.WordsFor(len(encoded) * bpv)
	b.words = make([]uint32, b.wordCount())

	flag := uint64(1) << valueBits
	outlierWidth := b.outlierWords * encoding.WordBits
	slot := 0
	for i, v := range encoded {
		if v <= plan.threshold {
			encoding.PutField(b.words, i*bpv, bpv, v)
			continue
		}

		encoding.PutField(b.words, i*bpv, bpv, flag|uint64(slot)) //nolint:gosec
		encoding.PutField(b.words, b.outlierPos(slot), outlierWidth, v)
		slot++
	}
	b.overflowIndex = plan.outliers

	return b
}

// planOverflowArea runs the selection heuristic on zig-zag encoded values.
//
// The threshold is the value at index min(floor(n*percentile), n-1) of the
// sorted input; only values strictly greater than it are outliers. When the
// percentile lands inside a run of equal outliers no outlier is flagged and the
// plan falls back to plain packing.
func planOverflowArea(encoded []uint64, percentile float64) overflowPlan {
	n := len(encoded)

	sorted, cleanup := pool.GetUint64Slice(n)
	defer cleanup()
	copy(sorted, encoded)
	slices.Sort(sorted)

	k := min(int(float64(n)*percentile), n-1)
	plan := overflowPlan{
		threshold: sorted[k],
		mainBits:  encoding.BitLength(sorted[k]),
		allBits:   encoding.BitLength(sorted[n-1]),
		outliers:  roaring.New(),
	}
	plan.outlierWords = encoding.WordsFor(plan.allBits)
	plan.costWithout = n * plan.allBits
	plan.costWith = plan.costWithout

	// roaring positions are 32-bit; longer inputs keep the plain layout
	if uint64(n) > math.MaxUint32 {
		return plan
	}

	for i, v := range encoded {
		if v > plan.threshold {
			plan.outliers.Add(uint32(i)) //nolint:gosec
		}
	}

	count := int(plan.outliers.GetCardinality()) //nolint:gosec
	if count == 0 {
		return plan
	}

	// upper bound on the stored index width set in compressOverflowArea
	valueBits := max(plan.mainBits, encoding.CeilLog2(count+1))
	plan.costWith = n*(1+valueBits) + count*plan.outlierWords*encoding.WordBits
	plan.useOverflow = plan.costWith < plan.costWithout

	return plan
}
