package main

import (
	"bufio"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var decompressCmd = &cobra.Command{
	Use:   "decompress <file>",
	Short: "print the integers stored in a block file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := readBlock(args[0])
		if err != nil {
			return err
		}

		w := bufio.NewWriter(cmd.OutOrStdout())
		var buf []byte
		for _, v := range b.All() {
			buf = strconv.AppendInt(buf[:0], v, 10)
			buf = append(buf, '\n')
			if _, err := w.Write(buf); err != nil {
				return errors.Wrap(err, "writing values")
			}
		}

		return errors.Wrap(w.Flush(), "writing values")
	},
}
