package main

import (
	"bytes"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitpack/block"
	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/format"
)

func TestParseValues(t *testing.T) {
	values, err := parseValues(strings.NewReader("1, 2,3\n -4\t5\n\n,,6"))
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3, -4, 5, 6}, values)

	values, err = parseValues(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, values)

	_, err = parseValues(strings.NewReader("1 2\n3 x"))
	require.ErrorContains(t, err, "line 2")
}

func TestReadValues_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	require.NoError(t, os.WriteFile(path, []byte("9223372036854775807 -9223372036854775808"), 0o600))

	values, err := readValues(path, nil)
	require.NoError(t, err)
	require.Equal(t, []int64{math.MaxInt64, math.MinInt64}, values)

	values, err = readValues("-", strings.NewReader("7"))
	require.NoError(t, err)
	require.Equal(t, []int64{7}, values)

	_, err = readValues(filepath.Join(t.TempDir(), "missing"), nil)
	require.Error(t, err)
}

func TestCompressValues(t *testing.T) {
	values := []int64{1023, 0, 0, 0, 0}

	for _, compression := range []string{"none", "zstd", "s2", "lz4"} {
		data, b, err := compressValues(values, "no_overflow", 0.95, compression, true)
		require.NoError(t, err)
		require.Equal(t, 3, b.WordCount())

		restored, err := block.Decode(data)
		require.NoError(t, err)
		require.Equal(t, values, restored.Decompress())
	}

	_, _, err := compressValues(values, "delta", 0.95, "none", false)
	require.ErrorIs(t, err, errs.ErrUnknownStrategy)

	_, _, err = compressValues(values, "overflow_area", 0, "none", false)
	require.ErrorIs(t, err, errs.ErrInvalidPercentile)

	_, _, err = compressValues(values, "overflow_area", 0.5, "brotli", false)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func writeBlockFile(t *testing.T, values []int64, compression string) string {
	t.Helper()

	data, _, err := compressValues(values, "overflow_area", 0.95, compression, false)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "values.bp")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func TestGetCommand(t *testing.T) {
	values := make([]int64, 100)
	for i := range values {
		values[i] = 1
	}
	values[50] = 200000
	path := writeBlockFile(t, values, "none")

	var out bytes.Buffer
	getCmd.SetOut(&out)
	require.NoError(t, getCmd.RunE(getCmd, []string{path, "50", "0"}))
	require.Equal(t, "50: 200000\n0: 1\n", out.String())

	err := getCmd.RunE(getCmd, []string{path, "100"})
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	compressed := writeBlockFile(t, values, "zstd")
	err = getCmd.RunE(getCmd, []string{compressed, "0"})
	require.ErrorIs(t, err, errs.ErrCompressedPayload)
}

func TestDecompressAndDescribeCommands(t *testing.T) {
	path := writeBlockFile(t, []int64{-3, 14, 159, -26}, "s2")

	var out bytes.Buffer
	decompressCmd.SetOut(&out)
	require.NoError(t, decompressCmd.RunE(decompressCmd, []string{path}))
	require.Equal(t, "-3\n14\n159\n-26\n", out.String())

	out.Reset()
	describeCmd.SetOut(&out)
	require.NoError(t, describeCmd.RunE(describeCmd, []string{path}))
	require.Contains(t, out.String(), "overflow_area")
	require.Regexp(t, `payload_compression:\s+S2\n`, out.String())
	require.Regexp(t, `byte_order:\s+little-endian\n`, out.String())
}

func TestCompareStrategies(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, compareStrategies(&out, []int64{1023, 0, 0, 0, 0}, 0.95))

	for _, s := range format.Strategies() {
		require.Contains(t, out.String(), s.String())
	}
}

func TestPercentileSweep(t *testing.T) {
	values := make([]int64, 100)
	for i := range values {
		values[i] = 1
	}
	values[25], values[50], values[75] = 100000, 200000, 150000

	points, err := percentileSweep(values, 10)
	require.NoError(t, err)
	require.Len(t, points, 10)
	require.InDelta(t, 1.0, points[9].percentile, 1e-9)

	// at 0.95 the three outliers move to the overflow area; at 1.0 nothing does
	require.Equal(t, 13, points[8].words)
	require.Equal(t, 3, points[8].outliers)
	require.Equal(t, 60, points[9].words)

	_, err = percentileSweep(values, 0)
	require.Error(t, err)

	var out bytes.Buffer
	require.NoError(t, sweepPercentiles(&out, values, 10, 5))
	require.Contains(t, out.String(), "smallest: 13 words")
}

func TestGenerateValues(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1)) //nolint:gosec

	bounds := map[string][2]int64{
		"uniform":  {0, 1000},
		"small":    {0, 100},
		"mixed":    {0, 10000},
		"outliers": {0, 100000},
		"negative": {-1000, 1000},
	}

	for _, d := range distributions {
		values, err := generateValues(rng, 1000, d)
		require.NoError(t, err)
		require.Len(t, values, 1000)

		for _, v := range values {
			require.GreaterOrEqual(t, v, bounds[d][0], d)
			require.LessOrEqual(t, v, bounds[d][1], d)
		}
	}

	_, err := generateValues(rng, 10, "gaussian")
	require.Error(t, err)
}

func TestBenchStrategy(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7)) //nolint:gosec
	values, err := generateValues(rng, 500, "outliers")
	require.NoError(t, err)

	res, err := benchStrategy(rng, format.StrategyOverflowArea, values, 3)
	require.NoError(t, err)
	require.Equal(t, int64(3), res.compress.TotalCount())
	require.Equal(t, int64(3), res.get.TotalCount())
	require.Equal(t, len(values), res.info.OriginalLength)

	var out bytes.Buffer
	printBenchResults(&out, "outliers", len(values), []benchResult{res})
	require.Contains(t, out.String(), "overflow_area")
}

func TestTransmissionThreshold(t *testing.T) {
	require.Equal(t, "∞", formatThreshold(transmissionThreshold(time.Millisecond, time.Millisecond, 1)))
	require.Equal(t, "∞", formatThreshold(transmissionThreshold(time.Millisecond, time.Millisecond, 0.5)))

	// ratio 2 halves the payload, so the overhead must be recovered twice
	require.Equal(t, 6*time.Millisecond, transmissionThreshold(time.Millisecond, 2*time.Millisecond, 2))
}
