package block

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/internal/options"
)

// DefaultPercentileThreshold is the default outlier percentile of the overflow-area strategy.
const DefaultPercentileThreshold = 0.95

// Config holds the compression settings shared by all strategies.
type Config struct {
	threshold float64
	logger    *slog.Logger
}

// Option represents a functional option for configuring compression.
type Option = options.Option[*Config]

// NewConfig returns a Config with default settings and opts applied.
//
// Returns:
//   - *Config: The resulting configuration
//   - error: errs.ErrInvalidPercentile if a threshold option is out of range
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		threshold: DefaultPercentileThreshold,
		logger:    slog.New(slog.DiscardHandler),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// PercentileThreshold returns the configured overflow-area percentile threshold.
func (c *Config) PercentileThreshold() float64 {
	return c.threshold
}

// WithPercentileThreshold sets the overflow-area percentile threshold.
//
// Values at or below the threshold-th percentile of the zig-zag encoded input
// stay in the main area, larger ones become outliers. The threshold must be
// in (0, 1]. Other strategies ignore it.
func WithPercentileThreshold(t float64) Option {
	return options.New(func(c *Config) error {
		if !(t > 0 && t <= 1) {
			return fmt.Errorf("%w: got %v", errs.ErrInvalidPercentile, t)
		}
		c.threshold = t

		return nil
	})
}

// WithLogger attaches a structured logger that receives debug records about
// layout decisions. A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		c.logger = logger
	})
}
