package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/bitpack/block"
)

// readValues reads integers separated by whitespace or commas from path, or
// from stdin when path is empty or "-".
func readValues(path string, stdin io.Reader) ([]int64, error) {
	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "opening input %q", path)
		}
		defer f.Close()
		r = f
	}

	return parseValues(r)
}

func parseValues(r io.Reader) ([]int64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var values []int64
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.FieldsFunc(scanner.Text(), func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})

		for _, field := range fields {
			v, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			values = append(values, v)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}

	return values, nil
}

// readBlock loads and decodes a serialized block file.
func readBlock(path string) (*block.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading block %q", path)
	}

	b, err := block.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding block %q", path)
	}

	return b, nil
}
