// SPDX-License-Identifier: MIT

// Package mixednum parses the mixed numbers written on drawings and takeoff
// sheets ("2-3/4", "1 1/2", "3/8", "0.75") and formats float64 values back
// into dyadic mixed numbers.
//
// What:
//
//   - Parse accepts a bare decimal, a bare fraction "N/D", or a mixed form
//     "W-N/D" / "W N/D", with an optional leading "-".
//   - Format renders any float64 as "W-N/D" with a power-of-two denominator
//     no larger than Denominator (1/32).
//   - GCD is the iterative Euclidean algorithm used to reduce fractions.
//
// Grammar (after trimming surrounding whitespace):
//
//	number    = ["-"] magnitude
//	magnitude = decimal | fraction | whole sep fraction
//	decimal   = digits ["." [digits]] | "." digits
//	fraction  = digits "/" digits
//	sep       = "-" | " "
//
// Sign:
//
//	A leading "-" negates the whole magnitude: "-2-3/4" is -2.75, not -1.25.
//
// Precision:
//
//	Format rounds the fractional part to the nearest 1/Denominator, so
//	|Parse(Format(x)) - x| ≤ MaxFormatError (1/64) for every finite x.
//	Integers round-trip exactly.
//
// Errors:
//
//   - ErrEmpty:           empty input (FormatError).
//   - ErrSyntax:          input outside the grammar (FormatError).
//   - ErrZeroDenominator: "N/0" (DomainError).
//   - ErrOutOfRange:      digits too large for float64 (DomainError).
package mixednum
