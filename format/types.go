package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arloliu/bitpack/errs"
)

type (
	StrategyType    uint8
	CompressionType uint8
)

const (
	StrategyNoOverflow   StrategyType = 0x1 // StrategyNoOverflow keeps every value inside a single word.
	StrategyOverflow     StrategyType = 0x2 // StrategyOverflow packs values back-to-back across word boundaries.
	StrategyOverflowArea StrategyType = 0x3 // StrategyOverflowArea moves outliers to a side area.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// strategyNames maps every accepted strategy name, aliases included, to its type.
var strategyNames = map[string]StrategyType{
	"with_overflow":      StrategyOverflow,
	"overflow":           StrategyOverflow,
	"no_overflow":        StrategyNoOverflow,
	"without_overflow":   StrategyNoOverflow,
	"overflow_area":      StrategyOverflowArea,
	"with_overflow_area": StrategyOverflowArea,
}

var compressionNames = map[string]CompressionType{
	"none": CompressionNone,
	"zstd": CompressionZstd,
	"s2":   CompressionS2,
	"lz4":  CompressionLZ4,
}

// String returns the canonical strategy name.
func (s StrategyType) String() string {
	switch s {
	case StrategyNoOverflow:
		return "no_overflow"
	case StrategyOverflow:
		return "with_overflow"
	case StrategyOverflowArea:
		return "overflow_area"
	default:
		return "unknown"
	}
}

// IsValid reports whether s is one of the defined strategies.
func (s StrategyType) IsValid() bool {
	switch s {
	case StrategyNoOverflow, StrategyOverflow, StrategyOverflowArea:
		return true
	default:
		return false
	}
}

// Description returns a one-line, human readable description of the strategy.
func (s StrategyType) Description() string {
	switch s {
	case StrategyNoOverflow:
		return "keeps every packed value inside a single word for fast random access"
	case StrategyOverflow:
		return "lets packed values span consecutive words for maximum density"
	case StrategyOverflowArea:
		return "stores outliers in a separate area to shrink the common-case width"
	default:
		return "no description available"
	}
}

// ParseStrategy resolves a strategy name to its StrategyType.
//
// Matching is case-insensitive and ignores surrounding whitespace. The accepted
// names are with_overflow (alias overflow), no_overflow (alias without_overflow)
// and overflow_area (alias with_overflow_area).
//
// Returns:
//   - StrategyType: The resolved strategy
//   - error: errs.ErrUnknownStrategy if the name is not recognized
func ParseStrategy(name string) (StrategyType, error) {
	s, ok := strategyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q (available: %s)", errs.ErrUnknownStrategy, name, strings.Join(StrategyNames(), ", "))
	}

	return s, nil
}

// StrategyNames returns every accepted strategy name, aliases included, sorted.
func StrategyNames() []string {
	names := make([]string, 0, len(strategyNames))
	for name := range strategyNames {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Strategies returns the defined strategies in declaration order.
func Strategies() []StrategyType {
	return []StrategyType{StrategyNoOverflow, StrategyOverflow, StrategyOverflowArea}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the defined compression types.
func (c CompressionType) IsValid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}

// ParseCompression resolves a case-insensitive compression name (none, zstd, s2, lz4).
func ParseCompression(name string) (CompressionType, error) {
	c, ok := compressionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
	}

	return c, nil
}
