// SPDX-License-Identifier: MIT

// Package interval implements closed-interval arithmetic for carrying
// estimate ranges ("between 40 and 55 hours") through calculations.
//
// An Interval [Min, Max] always has Min ≤ Max; New orders its arguments.
// Either end may be infinite, so AtMost(x) and AtLeast(x) express one-sided
// bounds and Unbounded() is the whole line.
//
// Arithmetic returns the tightest interval containing every result of the
// operation applied to members of the operands:
//
//	[a,b] + [c,d] = [a+c, b+d]
//	[a,b] − [c,d] = [a−d, b−c]
//	[a,b] · [c,d] = [min(ac,ad,bc,bd), max(ac,ad,bc,bd)]
//	[a,b] / [c,d] = [a,b] · [1/d, 1/c]       (0 ∉ [c,d])
//
// 0 · ∞ is taken as 0 so that products with unbounded intervals stay defined.
// Division by an interval containing zero returns ErrDivideByZero.
package interval
