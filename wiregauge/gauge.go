// SPDX-License-Identifier: MIT

package wiregauge

import (
	"cmp"
	"fmt"
	"math"
)

// Gauge is a conductor size held as its bare diameter in inches.
// The zero value is invalid; construct with NewGauge, Parse or FromLookup.
type Gauge struct {
	diameter float64
}

// NewGauge wraps a diameter in inches.
func NewGauge(d float64) (Gauge, error) {
	if err := checkDiameter(d); err != nil {
		return Gauge{}, fmt.Errorf("NewGauge(%v): %w", d, err)
	}

	return Gauge{diameter: d}, nil
}

// Parse builds a Gauge from any accepted AWG or kcmil notation.
func Parse(s string) (Gauge, error) {
	d, err := ParseDiameter(s)
	if err != nil {
		return Gauge{}, err
	}

	return Gauge{diameter: d}, nil
}

// FromLookup builds a Gauge from the standard table by canonical label.
func FromLookup(label string) (Gauge, error) {
	d, err := Lookup(label)
	if err != nil {
		return Gauge{}, err
	}

	return Gauge{diameter: d}, nil
}

// Diameter returns the bare conductor diameter in inches.
func (g Gauge) Diameter() float64 { return g.diameter }

// Area returns the cross-sectional area in square inches.
func (g Gauge) Area() float64 {
	r := g.diameter / 2
	return math.Pi * r * r
}

// String renders the canonical label, or "invalid" for the zero Gauge.
func (g Gauge) String() string {
	s, err := FormatDiameter(g.diameter)
	if err != nil {
		return "invalid"
	}

	return s
}

// Compare orders gauges by diameter: -1, 0 or +1.
func (g Gauge) Compare(other Gauge) int {
	return cmp.Compare(g.diameter, other.diameter)
}

// Equal reports whether both gauges have exactly the same diameter.
func (g Gauge) Equal(other Gauge) bool {
	return g.diameter == other.diameter
}
