// Command bitpack compresses integer sequences into bit-packed block files and
// inspects them.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "bitpack [command] (flags)",
	Short: "bit-packing integer compressor",
	Long: `bitpack packs signed integers into 32-bit words using one of three
strategies (no_overflow, with_overflow, overflow_area) and stores the result
as a self-describing block file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	},
}

func main() {
	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		compressCmd,
		decompressCmd,
		getCmd,
		describeCmd,
		compareCmd,
		sweepCmd,
		benchCmd,
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging of layout decisions")

	compressCmd.Flags().StringVarP(
		&compressConfig.strategy, "strategy", "s", "overflow_area", "packing strategy")
	compressCmd.Flags().Float64VarP(
		&compressConfig.percentile, "percentile", "p", 0.95,
		"outlier percentile threshold of the overflow_area strategy, in (0, 1]")
	compressCmd.Flags().StringVarP(
		&compressConfig.compression, "compression", "c", "none",
		"payload compression: none, zstd, s2 or lz4")
	compressCmd.Flags().BoolVar(
		&compressConfig.bigEndian, "big-endian", false, "store the block in big-endian byte order")
	compressCmd.Flags().StringVarP(
		&compressConfig.output, "output", "o", "", "output file (default stdout)")

	compareCmd.Flags().Float64VarP(
		&compareConfig.percentile, "percentile", "p", 0.95,
		"outlier percentile threshold of the overflow_area strategy")

	sweepCmd.Flags().IntVarP(
		&sweepConfig.steps, "steps", "n", 50, "number of percentile thresholds between 0.5 and 1")
	sweepCmd.Flags().IntVar(
		&sweepConfig.height, "height", 12, "plot height in rows")

	benchCmd.Flags().IntVarP(
		&benchConfig.size, "size", "n", 10000, "number of generated elements")
	benchCmd.Flags().StringVarP(
		&benchConfig.distribution, "distribution", "d", "uniform",
		"data distribution: uniform, small, mixed, outliers or negative")
	benchCmd.Flags().IntVarP(
		&benchConfig.iterations, "iterations", "i", 100, "iterations per measurement")
	benchCmd.Flags().Uint64Var(
		&benchConfig.seed, "seed", 42, "random seed of the data generator")

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
