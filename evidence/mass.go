// SPDX-License-Identifier: MIT

package evidence

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

const (
	// SumTolerance is how far the masses may sum from 1.
	SumTolerance = 1e-8

	conflictTolerance = 1e-12
)

// Focal is a focal set and the mass committed to exactly that set.
type Focal[T cmp.Ordered] struct {
	Set  []T
	Mass float64
}

// Mass is a basic mass assignment. The zero value has no focal sets and is
// not a valid assignment; build one with New.
type Mass[T cmp.Ordered] struct {
	focals []Focal[T] // sorted by compareSets, sets normalized, masses > 0
}

// New validates focals and returns the assignment. Sets are de-duplicated
// and sorted; focals naming the same set are merged; zero masses are
// dropped.
func New[T cmp.Ordered](focals ...Focal[T]) (Mass[T], error) {
	var (
		out []Focal[T]
		sum float64
	)
	for _, f := range focals {
		if math.IsNaN(f.Mass) || f.Mass < 0 || f.Mass > 1 {
			return Mass[T]{}, fmt.Errorf("New: mass %v for %v: %w", f.Mass, f.Set, ErrInvalidMass)
		}
		if len(f.Set) == 0 {
			return Mass[T]{}, fmt.Errorf("New: %w", ErrEmptyFocal)
		}
		sum += f.Mass
		if f.Mass == 0 {
			continue
		}
		out = add(out, normalize(f.Set), f.Mass)
	}
	if math.Abs(sum-1) > SumTolerance {
		return Mass[T]{}, fmt.Errorf("New: sum %v: %w", sum, ErrMassSum)
	}

	return Mass[T]{focals: sorted(out)}, nil
}

// Vacuous returns total ignorance over frame: all mass on the whole frame.
func Vacuous[T cmp.Ordered](frame ...T) (Mass[T], error) {
	return New(Focal[T]{Set: frame, Mass: 1})
}

// Focals returns the focal sets with positive mass, ordered by set size
// and then lexicographically.
func (m Mass[T]) Focals() []Focal[T] {
	out := make([]Focal[T], len(m.focals))
	for i, f := range m.focals {
		out[i] = Focal[T]{Set: slices.Clone(f.Set), Mass: f.Mass}
	}

	return out
}

// Frame returns the union of all focal sets, sorted.
func (m Mass[T]) Frame() []T {
	var all []T
	for _, f := range m.focals {
		all = append(all, f.Set...)
	}

	return normalize(all)
}

// Belief returns the mass that necessarily supports s.
func (m Mass[T]) Belief(s ...T) float64 {
	s = normalize(s)
	var b float64
	for _, f := range m.focals {
		if subset(f.Set, s) {
			b += f.Mass
		}
	}

	return b
}

// Plausibility returns the mass that does not contradict s.
func (m Mass[T]) Plausibility(s ...T) float64 {
	s = normalize(s)
	var p float64
	for _, f := range m.focals {
		if len(intersect(f.Set, s)) > 0 {
			p += f.Mass
		}
	}

	return p
}

// Pignistic spreads each focal mass evenly over its members and returns
// the share that lands on x.
func (m Mass[T]) Pignistic(x T) float64 {
	var p float64
	for _, f := range m.focals {
		if _, ok := slices.BinarySearch(f.Set, x); ok {
			p += f.Mass / float64(len(f.Set))
		}
	}

	return p
}

// Conflict returns K, the mass the two assignments put on disjoint sets.
func (m Mass[T]) Conflict(o Mass[T]) float64 {
	var k float64
	for _, a := range m.focals {
		for _, b := range o.focals {
			if len(intersect(a.Set, b.Set)) == 0 {
				k += a.Mass * b.Mass
			}
		}
	}

	return k
}

// Combine fuses two independent assignments with Dempster's rule.
func (m Mass[T]) Combine(o Mass[T]) (Mass[T], error) {
	var (
		out []Focal[T]
		k   float64
	)
	for _, a := range m.focals {
		for _, b := range o.focals {
			c := intersect(a.Set, b.Set)
			if len(c) == 0 {
				k += a.Mass * b.Mass
				continue
			}
			out = add(out, c, a.Mass*b.Mass)
		}
	}

	norm := 1 - k
	if norm < conflictTolerance {
		return Mass[T]{}, fmt.Errorf("Combine: K=%v: %w", k, ErrTotalConflict)
	}
	for i := range out {
		out[i].Mass /= norm
	}

	return Mass[T]{focals: sorted(out)}, nil
}

// add accumulates mass onto set s, merging with an existing focal.
func add[T cmp.Ordered](fs []Focal[T], s []T, mass float64) []Focal[T] {
	for i := range fs {
		if slices.Equal(fs[i].Set, s) {
			fs[i].Mass += mass
			return fs
		}
	}

	return append(fs, Focal[T]{Set: s, Mass: mass})
}

func sorted[T cmp.Ordered](fs []Focal[T]) []Focal[T] {
	slices.SortFunc(fs, func(a, b Focal[T]) int { return compareSets(a.Set, b.Set) })

	return fs
}
