// SPDX-License-Identifier: MIT

package shape

import "fmt"

// Box is a rectangular prism.
type Box struct {
	width, height, depth float64
}

// BoxBuilder accumulates the three edges of a Box.
type BoxBuilder struct {
	width, height, depth field
}

// NewBoxBuilder returns an empty builder.
func NewBoxBuilder() *BoxBuilder { return &BoxBuilder{} }

func (b *BoxBuilder) Width(w float64) *BoxBuilder {
	b.width.set(w, "Width")
	return b
}

func (b *BoxBuilder) Height(h float64) *BoxBuilder {
	b.height.set(h, "Height")
	return b
}

func (b *BoxBuilder) Depth(d float64) *BoxBuilder {
	b.depth.set(d, "Depth")
	return b
}

// Build checks that all three edges are set and positive.
func (b *BoxBuilder) Build() (Box, error) {
	for _, f := range []struct {
		name string
		f    *field
	}{{"width", &b.width}, {"height", &b.height}, {"depth", &b.depth}} {
		if err := f.f.check(f.name); err != nil {
			return Box{}, fmt.Errorf("BoxBuilder.Build: %w", err)
		}
	}

	return Box{width: b.width.value, height: b.height.value, depth: b.depth.value}, nil
}

func (x Box) Width() float64  { return x.width }
func (x Box) Height() float64 { return x.height }
func (x Box) Depth() float64  { return x.depth }
func (x Box) Volume() float64 { return x.width * x.height * x.depth }

// SurfaceArea is the area of all six faces.
func (x Box) SurfaceArea() float64 {
	return 2 * (x.width*x.height + x.width*x.depth + x.height*x.depth)
}
