// SPDX-License-Identifier: MIT

package rebar

import (
	"fmt"
	"math"
	"strings"
)

// PoundsPerFootPerSquareInch converts bar area to weight per foot.
const PoundsPerFootPerSquareInch = 3.40223

var bars = []struct {
	size     string
	diameter float64
}{
	{"#2", 0.250}, {"#3", 0.375}, {"#4", 0.500}, {"#5", 0.625}, {"#6", 0.750},
	{"#7", 0.875}, {"#8", 1.000}, {"#9", 1.128}, {"#10", 1.270}, {"#11", 1.410},
	{"#14", 1.693}, {"#14J", 1.880}, {"#18", 2.257}, {"#18J", 2.340},
}

// Bar is one imperial rebar size.
type Bar struct {
	size     string
	diameter float64
}

// FromBarSize looks up a bar by size. The leading "#" is optional and the
// "J" suffix is case-insensitive: "#5", "5", "#14j".
func FromBarSize(s string) (Bar, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	if key == "" {
		return Bar{}, fmt.Errorf("FromBarSize: %w", ErrEmpty)
	}
	if !strings.HasPrefix(key, "#") {
		key = "#" + key
	}
	for _, b := range bars {
		if b.size == key {
			return Bar{size: b.size, diameter: b.diameter}, nil
		}
	}

	return Bar{}, fmt.Errorf("FromBarSize(%q): %w", s, ErrUnknownSize)
}

// Size returns the canonical size label, e.g. "#14J".
func (b Bar) Size() string { return b.size }

// NominalDiameter returns the diameter in inches.
func (b Bar) NominalDiameter() float64 { return b.diameter }

// Area returns the nominal cross-section in square inches.
func (b Bar) Area() float64 {
	r := b.diameter / 2

	return math.Pi * r * r
}

// LinearMassDensity returns the weight in pounds per foot.
func (b Bar) LinearMassDensity() float64 { return b.Area() * PoundsPerFootPerSquareInch }

// Weight returns the weight in pounds of lengthFt feet of bar.
func (b Bar) Weight(lengthFt float64) (float64, error) {
	if lengthFt < 0 || math.IsNaN(lengthFt) {
		return 0, fmt.Errorf("Bar.Weight(%v): %w", lengthFt, ErrNegativeLength)
	}

	return b.LinearMassDensity() * lengthFt, nil
}

// Sizes returns every bar size in ascending diameter.
func Sizes() []string {
	out := make([]string, len(bars))
	for i, b := range bars {
		out[i] = b.size
	}

	return out
}
