package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/arloliu/bitpack/block"
)

var sweepConfig struct {
	steps  int
	height int
}

var sweepCmd = &cobra.Command{
	Use:   "sweep [input]",
	Short: "plot the overflow_area size across percentile thresholds",
	Long: `Compresses the input with the overflow_area strategy at evenly spaced
percentile thresholds in (0.5, 1] and plots the resulting word count.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var input string
		if len(args) > 0 {
			input = args[0]
		}

		values, err := readValues(input, cmd.InOrStdin())
		if err != nil {
			return err
		}

		return sweepPercentiles(cmd.OutOrStdout(), values, sweepConfig.steps, sweepConfig.height)
	},
}

type sweepPoint struct {
	percentile float64
	words      int
	outliers   int
}

// percentileSweep compresses values at steps thresholds spaced evenly over (0.5, 1].
func percentileSweep(values []int64, steps int) ([]sweepPoint, error) {
	if steps < 1 {
		return nil, errors.Newf("steps must be positive, got %d", steps)
	}

	points := make([]sweepPoint, 0, steps)
	for i := 1; i <= steps; i++ {
		p := 0.5 + 0.5*float64(i)/float64(steps)
		b, err := block.CompressOverflowArea(values, block.WithPercentileThreshold(p))
		if err != nil {
			return nil, err
		}

		info := b.Info()
		points = append(points, sweepPoint{percentile: p, words: info.CompressedLength, outliers: info.OverflowAreaSize})
	}

	return points, nil
}

func sweepPercentiles(w io.Writer, values []int64, steps, height int) error {
	if len(values) == 0 {
		return errors.New("sweep needs at least one value")
	}

	points, err := percentileSweep(values, steps)
	if err != nil {
		return err
	}

	series := make([]float64, len(points))
	best := points[0]
	for i, pt := range points {
		series[i] = float64(pt.words)
		if pt.words < best.words {
			best = pt
		}
	}

	fmt.Fprintln(w, asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Caption("words by percentile threshold (0.5 -> 1.0)"),
	))
	fmt.Fprintf(w, "\nsmallest: %d words at percentile %.3f (%d outliers)\n", best.words, best.percentile, best.outliers)

	return nil
}
