// SPDX-License-Identifier: MIT

package evidence

import (
	"cmp"
	"slices"
)

// normalize returns a sorted copy of s without duplicates.
func normalize[T cmp.Ordered](s []T) []T {
	out := slices.Clone(s)
	slices.Sort(out)

	return slices.Compact(out)
}

// intersect returns a ∩ b for sorted, de-duplicated inputs.
func intersect[T cmp.Ordered](a, b []T) []T {
	var out []T
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch c := cmp.Compare(a[i], b[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// subset reports a ⊆ b for sorted, de-duplicated inputs.
func subset[T cmp.Ordered](a, b []T) bool {
	return len(intersect(a, b)) == len(a)
}

// compareSets orders by size, then lexicographically.
func compareSets[T cmp.Ordered](a, b []T) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}

	return slices.Compare(a, b)
}
