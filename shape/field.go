// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"math"
)

// field is one builder quantity together with the setter that produced it.
// A second setter on the same field marks it overconstrained.
type field struct {
	value    float64
	source   string
	conflict string
}

// set records v from setter src; a later different setter is a conflict,
// the same setter simply overrides.
func (f *field) set(v float64, src string) {
	if f.source != "" && f.source != src && f.conflict == "" {
		f.conflict = f.source + " and " + src
	}
	f.value, f.source = v, src
}

func (f *field) isSet() bool { return f.source != "" }

// check validates a required field named name.
func (f *field) check(name string) error {
	if !f.isSet() {
		return fmt.Errorf("%s: %w", name, ErrMissingDimension)
	}

	return f.checkOptional(name)
}

// checkOptional validates a field only if it was set.
func (f *field) checkOptional(name string) error {
	if f.conflict != "" {
		return fmt.Errorf("%s via %s: %w", name, f.conflict, ErrOverconstrained)
	}
	if f.isSet() && !positive(f.value) {
		return fmt.Errorf("%s=%v (%s): %w", name, f.value, f.source, ErrNonPositive)
	}

	return nil
}

// positive reports whether v is a positive finite number.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// radiusFromCircumference and radiusFromArea invert the circle formulas.
func radiusFromCircumference(c float64) float64 { return c / (2 * math.Pi) }

func radiusFromArea(a float64) float64 {
	if a <= 0 {
		return a
	}
	return math.Sqrt(a / math.Pi)
}
