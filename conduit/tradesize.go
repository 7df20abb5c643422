// SPDX-License-Identifier: MIT

package conduit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/estkit/mixednum"
)

// designators pairs inch trade sizes with metric designators, ascending.
var designators = []struct {
	trade      float64
	designator int
}{
	{0.375, 12}, {0.5, 16}, {0.75, 21}, {1, 27}, {1.25, 35}, {1.5, 41},
	{2, 53}, {2.5, 63}, {3, 78}, {3.5, 91}, {4, 103}, {5, 129}, {6, 155},
}

// tradeTolerance absorbs decimal inputs such as 0.375000001.
const tradeTolerance = 1e-9

// MetricDesignator returns the metric designator for an inch trade size.
func MetricDesignator(tradeSize float64) (int, error) {
	for _, d := range designators {
		if math.Abs(d.trade-tradeSize) <= tradeTolerance {
			return d.designator, nil
		}
	}

	return 0, fmt.Errorf("MetricDesignator(%v): %w", tradeSize, ErrUnknownTradeSize)
}

// ParseTradeSize parses a trade size written as a mixed number and returns
// its metric designator.
//
// Example:
//
//	ParseTradeSize("3/4")     // 21
//	ParseTradeSize("1-1/4")   // 35
func ParseTradeSize(s string) (int, error) {
	v, err := mixednum.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("ParseTradeSize: %w", err)
	}

	return MetricDesignator(v)
}

// TradeSize returns the inch trade size for a designator, as a mixed number.
func TradeSize(designator int) (string, error) {
	for _, d := range designators {
		if d.designator == designator {
			return mixednum.Format(d.trade), nil
		}
	}

	return "", fmt.Errorf("TradeSize(%d): %w", designator, ErrUnknownTradeSize)
}

// Designators returns every metric designator in ascending order.
func Designators() []int {
	out := make([]int, len(designators))
	for i, d := range designators {
		out[i] = d.designator
	}

	return out
}
