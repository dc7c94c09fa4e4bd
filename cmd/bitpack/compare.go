package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/arloliu/bitpack/block"
	"github.com/arloliu/bitpack/format"
)

var compareConfig struct {
	percentile float64
}

var compareCmd = &cobra.Command{
	Use:   "compare [input]",
	Short: "compress the input with every strategy and compare sizes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var input string
		if len(args) > 0 {
			input = args[0]
		}

		values, err := readValues(input, cmd.InOrStdin())
		if err != nil {
			return err
		}

		return compareStrategies(cmd.OutOrStdout(), values, compareConfig.percentile)
	},
}

func compareStrategies(w io.Writer, values []int64, percentile float64) error {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Strategy", "Words", "Bits/Value", "Ratio", "Outliers", "Wasted Bits/Word"})

	for _, strategy := range format.Strategies() {
		b, err := block.Compress(strategy, values,
			block.WithPercentileThreshold(percentile),
			block.WithLogger(logger),
		)
		if err != nil {
			return err
		}

		info := b.Info()
		tbl.Append([]string{
			strategy.String(),
			fmt.Sprintf("%d", info.CompressedLength),
			fmt.Sprintf("%d", info.BitsPerValue),
			fmt.Sprintf("%.2fx", info.CompressionRatio),
			fmt.Sprintf("%d", info.OverflowAreaSize),
			fmt.Sprintf("%d", info.WastedBitsPerWord),
		})
	}
	tbl.Render()

	return nil
}
