package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type packConfig struct {
	threshold float64
	verbose   bool
	calls     []string
}

var errThreshold = errors.New("threshold must be in (0, 1]")

func withThreshold(t float64) Option[*packConfig] {
	return New(func(c *packConfig) error {
		if t <= 0 || t > 1 {
			return errThreshold
		}
		c.threshold = t
		c.calls = append(c.calls, "threshold")

		return nil
	})
}

func withVerbose(v bool) Option[*packConfig] {
	return NoError(func(c *packConfig) {
		c.verbose = v
		c.calls = append(c.calls, "verbose")
	})
}

func TestApply_InOrder(t *testing.T) {
	cfg := &packConfig{}

	err := Apply(cfg, withThreshold(0.5), withVerbose(true), withThreshold(0.9))
	require.NoError(t, err)
	require.InDelta(t, 0.9, cfg.threshold, 1e-9, "later options win")
	require.True(t, cfg.verbose)
	require.Equal(t, []string{"threshold", "verbose", "threshold"}, cfg.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &packConfig{}

	err := Apply(cfg, withThreshold(0.5), withThreshold(1.5), withVerbose(true))
	require.ErrorIs(t, err, errThreshold)
	require.InDelta(t, 0.5, cfg.threshold, 1e-9)
	require.False(t, cfg.verbose, "options after the failing one are not applied")
}

func TestApply_EmptyAndNil(t *testing.T) {
	cfg := &packConfig{}

	require.NoError(t, Apply(cfg))
	require.NoError(t, Apply[*packConfig](cfg, nil, withVerbose(true)))
	require.True(t, cfg.verbose)
}

func TestOption_PrimitiveTarget(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 42 })

	require.NoError(t, opt.apply(&n))
	require.Equal(t, 42, n)
}
