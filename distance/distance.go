// SPDX-License-Identifier: MIT

package distance

import "math"

// Offset is the separation of two points along each axis.
type Offset struct {
	DX, DY float64
}

// NewOffset returns the offset with absolute components.
func NewOffset(dx, dy float64) Offset {
	return Offset{DX: math.Abs(dx), DY: math.Abs(dy)}
}

// Between returns the offset from (x1, y1) to (x2, y2).
func Between(x1, y1, x2, y2 float64) Offset {
	return NewOffset(x2-x1, y2-y1)
}

func (o Offset) Euclidean() float64 { return math.Hypot(o.DX, o.DY) }

func (o Offset) Manhattan() float64 { return math.Abs(o.DX) + math.Abs(o.DY) }

// Octilinear is the length of the shortest path using horizontal, vertical
// and 45° segments.
func (o Offset) Octilinear() float64 {
	hi, lo := o.bounds()

	return hi + (math.Sqrt2-1)*lo
}

func (o Offset) Chebyshev() float64 {
	hi, _ := o.bounds()

	return hi
}

func (o Offset) bounds() (hi, lo float64) {
	x, y := math.Abs(o.DX), math.Abs(o.DY)

	return math.Max(x, y), math.Min(x, y)
}
