// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"math"
)

// Cylinder is a solid right circular cylinder.
type Cylinder struct {
	radius, height float64
}

// CylinderBuilder accumulates a radius (through any one setter) and a height.
type CylinderBuilder struct {
	radius, height field
}

// NewCylinderBuilder returns an empty builder.
func NewCylinderBuilder() *CylinderBuilder { return &CylinderBuilder{} }

// Radius sets the radius.
func (b *CylinderBuilder) Radius(r float64) *CylinderBuilder {
	b.radius.set(r, "Radius")
	return b
}

// Diameter sets the radius from a diameter.
func (b *CylinderBuilder) Diameter(d float64) *CylinderBuilder {
	b.radius.set(d/2, "Diameter")
	return b
}

// Circumference sets the radius from a circumference.
func (b *CylinderBuilder) Circumference(c float64) *CylinderBuilder {
	b.radius.set(radiusFromCircumference(c), "Circumference")
	return b
}

// BaseArea sets the radius from the area of one end.
func (b *CylinderBuilder) BaseArea(a float64) *CylinderBuilder {
	b.radius.set(radiusFromArea(a), "BaseArea")
	return b
}

// Height sets the height.
func (b *CylinderBuilder) Height(h float64) *CylinderBuilder {
	b.height.set(h, "Height")
	return b
}

// Build validates radius and height and returns the Cylinder.
func (b *CylinderBuilder) Build() (Cylinder, error) {
	if err := b.radius.check("radius"); err != nil {
		return Cylinder{}, fmt.Errorf("CylinderBuilder.Build: %w", err)
	}
	if err := b.height.check("height"); err != nil {
		return Cylinder{}, fmt.Errorf("CylinderBuilder.Build: %w", err)
	}

	return Cylinder{radius: b.radius.value, height: b.height.value}, nil
}

func (c Cylinder) Radius() float64        { return c.radius }
func (c Cylinder) Height() float64        { return c.height }
func (c Cylinder) Diameter() float64      { return 2 * c.radius }
func (c Cylinder) Circumference() float64 { return 2 * math.Pi * c.radius }
func (c Cylinder) BaseArea() float64      { return math.Pi * c.radius * c.radius }
func (c Cylinder) Volume() float64        { return c.BaseArea() * c.height }

// SurfaceArea includes both ends: 2πr(r + h).
func (c Cylinder) SurfaceArea() float64 {
	return 2 * math.Pi * c.radius * (c.radius + c.height)
}
