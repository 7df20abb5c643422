// SPDX-License-Identifier: MIT

package interval

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
)

// Interval is the closed set {x : Min ≤ x ≤ Max}.
type Interval struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// New returns the interval spanning a and b in either order.
func New(a, b float64) Interval {
	return Interval{Min: math.Min(a, b), Max: math.Max(a, b)}
}

// Point returns the degenerate interval [x, x].
func Point(x float64) Interval { return Interval{Min: x, Max: x} }

// AtMost returns [−∞, x].
func AtMost(x float64) Interval { return Interval{Min: math.Inf(-1), Max: x} }

// AtLeast returns [x, +∞].
func AtLeast(x float64) Interval { return Interval{Min: x, Max: math.Inf(1)} }

// Unbounded returns [−∞, +∞].
func Unbounded() Interval { return Interval{Min: math.Inf(-1), Max: math.Inf(1)} }

// Mean returns the midpoint; it is infinite or NaN for unbounded intervals.
func (i Interval) Mean() float64 { return (i.Min + i.Max) / 2 }

// Width returns Max − Min.
func (i Interval) Width() float64 { return i.Max - i.Min }

// Contains reports whether x lies in the interval.
func (i Interval) Contains(x float64) bool { return x >= i.Min && x <= i.Max }

// ContainsInterval reports whether o lies entirely inside i.
func (i Interval) ContainsInterval(o Interval) bool { return o.Min >= i.Min && o.Max <= i.Max }

// Overlaps reports whether i and o share at least one point.
func (i Interval) Overlaps(o Interval) bool { return o.Min <= i.Max && o.Max >= i.Min }

// Intersect returns the common part of i and o; ok is false when they are
// disjoint.
func (i Interval) Intersect(o Interval) (Interval, bool) {
	if !i.Overlaps(o) {
		return Interval{}, false
	}

	return Interval{Min: math.Max(i.Min, o.Min), Max: math.Min(i.Max, o.Max)}, true
}

// Hull returns the smallest interval containing both i and o.
func (i Interval) Hull(o Interval) Interval {
	return Interval{Min: math.Min(i.Min, o.Min), Max: math.Max(i.Max, o.Max)}
}

// Add returns i + o.
func (i Interval) Add(o Interval) Interval {
	return Interval{Min: i.Min + o.Min, Max: i.Max + o.Max}
}

// Sub returns i − o.
func (i Interval) Sub(o Interval) Interval {
	return Interval{Min: i.Min - o.Max, Max: i.Max - o.Min}
}

// Mul returns i · o.
func (i Interval) Mul(o Interval) Interval {
	p := [4]float64{
		mul(i.Min, o.Min), mul(i.Min, o.Max),
		mul(i.Max, o.Min), mul(i.Max, o.Max),
	}
	lo, hi := p[0], p[0]
	for _, v := range p[1:] {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}

	return Interval{Min: lo, Max: hi}
}

// Div returns i / o, or ErrDivideByZero when o contains zero.
func (i Interval) Div(o Interval) (Interval, error) {
	if o.Contains(0) {
		return Interval{}, fmt.Errorf("Div(%v, %v): %w", i, o, ErrDivideByZero)
	}

	return i.Mul(Interval{Min: 1 / o.Max, Max: 1 / o.Min}), nil
}

// Shift returns i + x.
func (i Interval) Shift(x float64) Interval {
	return Interval{Min: i.Min + x, Max: i.Max + x}
}

// Scale returns i · k; a negative k flips the ends.
func (i Interval) Scale(k float64) Interval {
	return New(mul(i.Min, k), mul(i.Max, k))
}

// Compare orders intervals by Min, then by Max.
func (i Interval) Compare(o Interval) int {
	if c := cmp.Compare(i.Min, o.Min); c != 0 {
		return c
	}

	return cmp.Compare(i.Max, o.Max)
}

// Position locates x relative to i: -1 when i lies entirely below x,
// +1 when entirely above, 0 when x is inside.
func (i Interval) Position(x float64) int {
	switch {
	case i.Max < x:
		return -1
	case i.Min > x:
		return 1
	default:
		return 0
	}
}

// String renders "[min <= x <= max]" with "-∞"/"∞" for unbounded ends.
func (i Interval) String() string {
	return "[" + end(i.Min) + " <= x <= " + end(i.Max) + "]"
}

func end(v float64) string {
	switch {
	case math.IsInf(v, -1):
		return "-∞"
	case math.IsInf(v, 1):
		return "∞"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// mul is a·b with 0·∞ = 0.
func mul(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}

	return a * b
}
