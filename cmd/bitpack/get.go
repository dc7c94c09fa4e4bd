package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/edsrzf/mmap-go"
	"github.com/spf13/cobra"

	"github.com/arloliu/bitpack/block"
	"github.com/arloliu/bitpack/section"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <index>...",
	Short: "read single elements of an uncompressed block file in place",
	Long: `Memory-maps the block file and reads the requested elements without
decoding the rest of the block. The block must have been written with
--compression none.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		indexes := make([]int, 0, len(args)-1)
		for _, arg := range args[1:] {
			i, err := strconv.Atoi(arg)
			if err != nil {
				return errors.Wrapf(err, "parsing index %q", arg)
			}
			indexes = append(indexes, i)
		}

		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrapf(err, "opening block %q", args[0])
		}
		defer f.Close()

		stat, err := f.Stat()
		if err != nil {
			return errors.Wrapf(err, "stat block %q", args[0])
		}
		if stat.Size() < section.HeaderSize {
			return errors.Newf("block %q is %d bytes, shorter than its header", args[0], stat.Size())
		}

		mm, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			return errors.Wrapf(err, "mmap block %q", args[0])
		}
		defer mm.Unmap() //nolint:errcheck

		view, err := block.NewView(mm)
		if err != nil {
			return errors.Wrapf(err, "opening view of %q", args[0])
		}

		for _, i := range indexes {
			v, err := view.Get(i)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %d\n", i, v)
		}

		return nil
	},
}
