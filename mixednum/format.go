// SPDX-License-Identifier: MIT

package mixednum

import (
	"math"
	"strconv"
)

const (
	// Denominator is the finest fraction Format emits: 2^5 = 32nds.
	Denominator = 32

	// MaxFormatError bounds |Parse(Format(x)) - x| for finite x.
	MaxFormatError = 1.0 / (2 * Denominator)
)

// Format renders v as a dyadic mixed number.
//
// Rules:
//   - Integers, NaN and ±Inf are returned in plain decimal form ("3", "NaN", "+Inf").
//   - |v| < 1 renders as "N/D", |v| ≥ 1 as "W-N/D".
//   - The fraction is rounded to the nearest 1/Denominator and reduced;
//     a fraction that rounds to 0 is dropped, one that rounds to 1 carries.
//   - Negative values are prefixed with "-" (never "-0").
//
// Example:
//
//	Format(2.75)  // "2-3/4"
//	Format(0.75)  // "3/4"
//	Format(-0.5)  // "-1/2"
//	Format(0.1)   // "3/32"
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || v == math.Trunc(v) {
		return plain(v)
	}

	a := math.Abs(v)
	whole := math.Trunc(a)
	num := int64(math.Round((a - whole) * Denominator))
	if num == Denominator {
		whole++
		num = 0
	}

	var out string
	switch {
	case num == 0:
		out = plain(whole)
	case whole == 0:
		out = fractionString(num, Denominator)
	default:
		out = plain(whole) + "-" + fractionString(num, Denominator)
	}

	if v < 0 && out != "0" {
		return "-" + out
	}

	return out
}

// fractionString reduces num/den by their GCD and renders "n/d".
func fractionString(num, den int64) string {
	g := GCD(num, den)

	return strconv.FormatInt(num/g, 10) + "/" + strconv.FormatInt(den/g, 10)
}

// plain renders v without exponent and without trailing zeros.
// Negative zero prints as "0".
func plain(v float64) string {
	if v == 0 {
		return "0"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// GCD returns the greatest common divisor of |a| and |b| by the iterative
// Euclidean algorithm. GCD(0, b) == |b|; GCD(0, 0) == 0.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
