package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/arloliu/bitpack/block"
	"github.com/arloliu/bitpack/section"
)

var describeCmd = &cobra.Command{
	Use:   "describe <file>",
	Short: "print the metadata record of a block file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "reading block %q", args[0])
		}

		header, err := section.ParseBlockHeader(data)
		if err != nil {
			return errors.Wrapf(err, "parsing header of %q", args[0])
		}

		b, err := block.Decode(data)
		if err != nil {
			return errors.Wrapf(err, "decoding block %q", args[0])
		}

		byteOrder := "little-endian"
		if header.Flag.IsBigEndian() {
			byteOrder = "big-endian"
		}

		w := cmd.OutOrStdout()
		fmt.Fprint(w, b.Info())
		fmt.Fprintf(w, "%-22s %s\n", "payload_compression:", header.Flag.CompressionType())
		fmt.Fprintf(w, "%-22s %s\n", "byte_order:", byteOrder)
		fmt.Fprintf(w, "%-22s %d\n", "serialized_bytes:", len(data))
		fmt.Fprintf(w, "%-22s %#08x\n", "checksum:", header.Checksum)

		return nil
	},
}
