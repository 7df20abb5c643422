// SPDX-License-Identifier: MIT

// Package distance estimates run lengths between two points from their
// horizontal and vertical offsets.
//
//	Euclidean   sqrt(dx² + dy²)          straight line
//	Manhattan   dx + dy                  runs along building lines
//	Octilinear  max + (√2 − 1)·min       axes plus 45° diagonals, e.g. trenching
//	Chebyshev   max(dx, dy)              chess-king moves; a lower bound
//
// Offsets are stored as absolute values, so the order of the points does
// not matter. For any offset:
//
//	Chebyshev ≤ Euclidean ≤ Octilinear ≤ Manhattan
package distance
