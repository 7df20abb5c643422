// SPDX-License-Identifier: MIT

// Package wiregauge converts conductor size notation ("12 AWG", "#2/0",
// "250 kcmil", "#500") to bare-conductor diameters in inches and back.
//
// What:
//
//	Two disjoint regimes split at RegimeThreshold (0.46 in, the 4/0 AWG
//	diameter):
//	  • d ≤ 0.46 in — American Wire Gauge, a geometric series anchored at
//	    #36 = 0.005 in and #0000 = 0.46 in:
//	        d(step) = 0.005 · 92^((36 − step) / 39)
//	    step 1 = "1 AWG", step 0 = "1/0", step −1 = "2/0", … step 1−k = "k/0".
//	  • d > 0.46 in — circular mils, d = sqrt(kcmil / 1000).
//
// Grammar:
//
//	awg   = "#" gauge | gauge " AWG"        gauge = 1..99 | k "/0" (k = 1..9)
//	kcmil = "#" NNN  | NNN (" kcmil" | " MCM")   NNN = 100..9999
//
//	ParseDiameter tries awg first, then kcmil; the grammars are disjoint.
//
// Precision:
//
//   - AWG steps round-trip exactly: AWGStep(AWGDiameter(s)) == s.
//   - kcmil is rounded to the nearest whole kcmil, so only diameters that
//     came from whole kcmil values round-trip.
//   - The standard table (Lookup) stores precomputed diameters so callers
//     that only need named sizes never see rounding drift.
//
// Errors:
//
//   - ErrEmpty, ErrSyntax:        input outside both grammars (FormatError).
//   - ErrNonPositiveDiameter:     diameter ≤ 0, NaN or ±Inf (DomainError).
//   - ErrOutOfRange:              finer than 99 AWG or above 9999 kcmil (DomainError).
//   - ErrUnknownSize:             label missing from the standard table (LookupError).
package wiregauge
