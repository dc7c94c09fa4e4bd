package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/arloliu/bitpack/block"
	"github.com/arloliu/bitpack/format"
)

var compressConfig struct {
	strategy    string
	percentile  float64
	compression string
	bigEndian   bool
	output      string
}

var compressCmd = &cobra.Command{
	Use:   "compress [input]",
	Short: "compress integers into a block file",
	Long: `Reads integers separated by whitespace or commas from input (default
stdin) and writes the serialized block.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompress,
}

func runCompress(cmd *cobra.Command, args []string) error {
	var input string
	if len(args) > 0 {
		input = args[0]
	}

	values, err := readValues(input, cmd.InOrStdin())
	if err != nil {
		return err
	}

	data, b, err := compressValues(values, compressConfig.strategy, compressConfig.percentile,
		compressConfig.compression, compressConfig.bigEndian)
	if err != nil {
		return err
	}

	info := b.Info()
	logger.Info("compressed",
		"strategy", info.Strategy,
		"elements", info.OriginalLength,
		"words", info.CompressedLength,
		"bits_per_value", info.BitsPerValue,
		"ratio", info.CompressionRatio,
		"bytes", len(data),
	)

	if compressConfig.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return errors.Wrap(err, "writing block")
	}

	return errors.Wrapf(os.WriteFile(compressConfig.output, data, 0o644), "writing block %q", compressConfig.output)
}

// compressValues packs values and serializes the resulting block.
func compressValues(values []int64, strategyName string, percentile float64,
	compressionName string, bigEndian bool,
) ([]byte, *block.Block, error) {
	strategy, err := format.ParseStrategy(strategyName)
	if err != nil {
		return nil, nil, err
	}

	compression, err := format.ParseCompression(compressionName)
	if err != nil {
		return nil, nil, err
	}

	b, err := block.Compress(strategy, values,
		block.WithPercentileThreshold(percentile),
		block.WithLogger(logger),
	)
	if err != nil {
		return nil, nil, err
	}

	opts := []block.EncodeOption{block.WithCompression(compression)}
	if bigEndian {
		opts = append(opts, block.WithBigEndian())
	}

	data, err := b.Encode(opts...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encoding block")
	}

	return data, b, nil
}
