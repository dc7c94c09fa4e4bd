package main

import (
	"math/rand/v2"

	"github.com/cockroachdb/errors"
)

// distributions lists the benchmark data generators.
var distributions = []string{"uniform", "small", "mixed", "outliers", "negative"}

// generateValues returns size values drawn from the named distribution.
//
//   - uniform: [0, 1000]
//   - small: [0, 100]
//   - mixed: half [0, 100], half [1000, 10000]
//   - outliers: [0, 100] with size/20 (at least one) values in [10000, 100000]
//   - negative: [-1000, 1000]
func generateValues(rng *rand.Rand, size int, distribution string) ([]int64, error) {
	between := func(lo, hi int64) int64 {
		return lo + rng.Int64N(hi-lo+1)
	}

	values := make([]int64, size)
	switch distribution {
	case "uniform":
		for i := range values {
			values[i] = between(0, 1000)
		}
	case "small":
		for i := range values {
			values[i] = between(0, 100)
		}
	case "mixed":
		for i := range values {
			if rng.Float64() < 0.5 {
				values[i] = between(0, 100)
			} else {
				values[i] = between(1000, 10000)
			}
		}
	case "outliers":
		for i := range values {
			values[i] = between(0, 100)
		}
		if size > 0 {
			for range max(1, size/20) {
				values[rng.IntN(size)] = between(10000, 100000)
			}
		}
	case "negative":
		for i := range values {
			values[i] = between(-1000, 1000)
		}
	default:
		return nil, errors.Newf("unknown distribution %q (available: %v)", distribution, distributions)
	}

	return values, nil
}
