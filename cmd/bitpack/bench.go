package main

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/arloliu/bitpack/block"
	"github.com/arloliu/bitpack/format"
)

const (
	minLatency = time.Nanosecond
	maxLatency = 10 * time.Second
)

var benchConfig struct {
	size         int
	distribution string
	iterations   int
	seed         uint64
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "benchmark every strategy on generated data",
	Long: `Generates data from the chosen distribution and measures compress,
decompress and random-access latency of every strategy.

The transmission threshold is the link latency above which compressing pays
off: (compress + decompress) / (1 - 1/ratio), infinite when ratio <= 1.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if benchConfig.size < 1 || benchConfig.iterations < 1 {
			return errors.New("size and iterations must be positive")
		}

		rng := rand.New(rand.NewPCG(benchConfig.seed, benchConfig.seed^0x9e3779b97f4a7c15)) //nolint:gosec
		values, err := generateValues(rng, benchConfig.size, benchConfig.distribution)
		if err != nil {
			return err
		}

		results := make([]benchResult, 0, len(format.Strategies()))
		for _, strategy := range format.Strategies() {
			res, err := benchStrategy(rng, strategy, values, benchConfig.iterations)
			if err != nil {
				return err
			}
			logger.Debug("benchmarked", "strategy", strategy, "words", res.info.CompressedLength)
			results = append(results, res)
		}

		printBenchResults(cmd.OutOrStdout(), benchConfig.distribution, len(values), results)

		return nil
	},
}

type benchResult struct {
	strategy   format.StrategyType
	info       block.Info
	compress   *hdrhistogram.Histogram
	decompress *hdrhistogram.Histogram
	get        *hdrhistogram.Histogram
}

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 2)
}

func record(h *hdrhistogram.Histogram, elapsed time.Duration) {
	// values outside the trackable range are clamped rather than dropped
	_ = h.RecordValue(min(max(elapsed.Nanoseconds(), minLatency.Nanoseconds()), maxLatency.Nanoseconds()))
}

func benchStrategy(rng *rand.Rand, strategy format.StrategyType, values []int64, iterations int) (benchResult, error) {
	res := benchResult{
		strategy:   strategy,
		compress:   newHistogram(),
		decompress: newHistogram(),
		get:        newHistogram(),
	}

	var b *block.Block
	for range iterations {
		start := time.Now()
		blk, err := block.Compress(strategy, values)
		record(res.compress, time.Since(start))
		if err != nil {
			return res, err
		}
		b = blk
	}
	res.info = b.Info()

	words := b.Words()
	for range iterations {
		start := time.Now()
		decoded, err := b.DecompressWords(words)
		record(res.decompress, time.Since(start))
		if err != nil {
			return res, err
		}
		if len(decoded) != len(values) {
			return res, errors.AssertionFailedf("decoded %d values, want %d", len(decoded), len(values))
		}
	}

	for range iterations {
		i := rng.IntN(len(values))
		start := time.Now()
		v, err := b.Get(i)
		record(res.get, time.Since(start))
		if err != nil {
			return res, err
		}
		if v != values[i] {
			return res, errors.AssertionFailedf("element %d: got %d, want %d", i, v, values[i])
		}
	}

	return res, nil
}

// transmissionThreshold returns the latency above which sending compressed
// data is faster than sending it raw, given the time spent compressing and
// decompressing.
func transmissionThreshold(compress, decompress time.Duration, ratio float64) time.Duration {
	if ratio <= 1 {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(float64(compress+decompress) / (1 - 1/ratio))
}

func formatThreshold(d time.Duration) string {
	if d == time.Duration(math.MaxInt64) {
		return "∞"
	}

	return d.String()
}

func quantile(h *hdrhistogram.Histogram, q float64) time.Duration {
	return time.Duration(h.ValueAtQuantile(q))
}

func mean(h *hdrhistogram.Histogram) time.Duration {
	return time.Duration(h.Mean())
}

func printBenchResults(w io.Writer, distribution string, size int, results []benchResult) {
	fmt.Fprintf(w, "distribution: %s, elements: %d\n\n", distribution, size)

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{
		"Strategy", "Words", "Ratio", "Compress p50", "Compress p99",
		"Decompress p50", "Decompress p99", "Get p50", "Get p99", "Threshold",
	})

	for _, res := range results {
		threshold := transmissionThreshold(mean(res.compress), mean(res.decompress), res.info.CompressionRatio)
		tbl.Append([]string{
			res.strategy.String(),
			fmt.Sprintf("%d", res.info.CompressedLength),
			fmt.Sprintf("%.2fx", res.info.CompressionRatio),
			quantile(res.compress, 50).String(),
			quantile(res.compress, 99).String(),
			quantile(res.decompress, 50).String(),
			quantile(res.decompress, 99).String(),
			quantile(res.get, 50).String(),
			quantile(res.get, 99).String(),
			formatThreshold(threshold),
		})
	}
	tbl.Render()
}
