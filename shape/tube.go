// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"math"
)

// Tube is a hollow circular section with an optional material density.
type Tube struct {
	outer, inner float64 // radii
	density      float64 // mass per unit volume; 0 = unknown
}

// TubeBuilder accumulates tube dimensions; Build validates them together.
// Each radius may be given once, through any of its setters.
type TubeBuilder struct {
	outer, inner field
	mass         field // density or linear density, whichever was given
	linear       bool  // mass holds linear density (mass per length)
}

// NewTubeBuilder returns an empty builder.
func NewTubeBuilder() *TubeBuilder { return &TubeBuilder{} }

// OuterRadius sets the outer radius.
func (b *TubeBuilder) OuterRadius(r float64) *TubeBuilder {
	b.outer.set(r, "OuterRadius")
	return b
}

// OuterDiameter sets the outer radius from a diameter.
func (b *TubeBuilder) OuterDiameter(d float64) *TubeBuilder {
	b.outer.set(d/2, "OuterDiameter")
	return b
}

// OuterCircumference sets the outer radius from a circumference.
func (b *TubeBuilder) OuterCircumference(c float64) *TubeBuilder {
	b.outer.set(radiusFromCircumference(c), "OuterCircumference")
	return b
}

// OverallArea sets the outer radius from the area enclosed by the outer wall.
func (b *TubeBuilder) OverallArea(a float64) *TubeBuilder {
	b.outer.set(radiusFromArea(a), "OverallArea")
	return b
}

// InnerRadius sets the inner radius.
func (b *TubeBuilder) InnerRadius(r float64) *TubeBuilder {
	b.inner.set(r, "InnerRadius")
	return b
}

// InnerDiameter sets the inner radius from a diameter.
func (b *TubeBuilder) InnerDiameter(d float64) *TubeBuilder {
	b.inner.set(d/2, "InnerDiameter")
	return b
}

// InnerCircumference sets the inner radius from a circumference.
func (b *TubeBuilder) InnerCircumference(c float64) *TubeBuilder {
	b.inner.set(radiusFromCircumference(c), "InnerCircumference")
	return b
}

// InnerArea sets the inner radius from the bore area.
func (b *TubeBuilder) InnerArea(a float64) *TubeBuilder {
	b.inner.set(radiusFromArea(a), "InnerArea")
	return b
}

// MaterialDensity sets the wall material's mass per unit volume.
func (b *TubeBuilder) MaterialDensity(rho float64) *TubeBuilder {
	b.mass.set(rho, "MaterialDensity")
	b.linear = false
	return b
}

// LinearMassDensity sets the tube's mass per unit length.
func (b *TubeBuilder) LinearMassDensity(w float64) *TubeBuilder {
	b.mass.set(w, "LinearMassDensity")
	b.linear = true
	return b
}

// HundredWeight sets the mass per 100 units of length, the way pipe and
// conduit weights are published (lb per 100 ft).
func (b *TubeBuilder) HundredWeight(cwt float64) *TubeBuilder {
	b.mass.set(cwt/100, "HundredWeight")
	b.linear = true
	return b
}

// Build validates the accumulated dimensions and returns the Tube.
//
// Stage 1 (Validate): both radii set once, positive and finite.
// Stage 2 (Validate): inner < outer.
// Stage 3 (Resolve):  convert linear density to material density.
func (b *TubeBuilder) Build() (Tube, error) {
	// Stage 1
	if err := b.outer.check("outer radius"); err != nil {
		return Tube{}, fmt.Errorf("TubeBuilder.Build: %w", err)
	}
	if err := b.inner.check("inner radius"); err != nil {
		return Tube{}, fmt.Errorf("TubeBuilder.Build: %w", err)
	}
	if err := b.mass.checkOptional("density"); err != nil {
		return Tube{}, fmt.Errorf("TubeBuilder.Build: %w", err)
	}

	// Stage 2
	if b.inner.value >= b.outer.value {
		return Tube{}, fmt.Errorf("TubeBuilder.Build: inner %v, outer %v: %w",
			b.inner.value, b.outer.value, ErrInvertedRadii)
	}

	t := Tube{outer: b.outer.value, inner: b.inner.value}

	// Stage 3
	if b.mass.isSet() {
		if b.linear {
			t.density = b.mass.value / t.WallArea()
		} else {
			t.density = b.mass.value
		}
	}

	return t, nil
}

// OuterRadius returns the outer radius.
func (t Tube) OuterRadius() float64 { return t.outer }

// InnerRadius returns the inner radius.
func (t Tube) InnerRadius() float64 { return t.inner }

// OuterDiameter returns twice the outer radius.
func (t Tube) OuterDiameter() float64 { return 2 * t.outer }

// InnerDiameter returns twice the inner radius.
func (t Tube) InnerDiameter() float64 { return 2 * t.inner }

// WallThickness is the radial thickness of the wall, (OD − ID) / 2.
func (t Tube) WallThickness() float64 { return t.outer - t.inner }

// OuterCircumference returns π·OD.
func (t Tube) OuterCircumference() float64 { return 2 * math.Pi * t.outer }

// InnerCircumference returns π·ID.
func (t Tube) InnerCircumference() float64 { return 2 * math.Pi * t.inner }

// OverallArea is the area enclosed by the outer wall, πR².
func (t Tube) OverallArea() float64 { return math.Pi * t.outer * t.outer }

// InnerArea is the bore area, πr².
func (t Tube) InnerArea() float64 { return math.Pi * t.inner * t.inner }

// WallArea is the cross-section of material, π(R² − r²).
func (t Tube) WallArea() float64 { return t.OverallArea() - t.InnerArea() }

// HasMass reports whether a density was supplied.
func (t Tube) HasMass() bool { return t.density > 0 }

// MaterialDensity returns mass per unit volume, or 0 if unknown.
func (t Tube) MaterialDensity() float64 { return t.density }

// LinearMassDensity returns mass per unit length, or 0 if unknown.
func (t Tube) LinearMassDensity() float64 { return t.density * t.WallArea() }

// Weight returns the mass of a run of the given length.
func (t Tube) Weight(length float64) (float64, error) {
	if !t.HasMass() {
		return 0, fmt.Errorf("Tube.Weight: %w", ErrNoMass)
	}
	if length < 0 || math.IsNaN(length) {
		return 0, fmt.Errorf("Tube.Weight(%v): %w", length, ErrNegativeLength)
	}

	return t.LinearMassDensity() * length, nil
}
