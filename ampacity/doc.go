// SPDX-License-Identifier: MIT

// Package ampacity looks up the allowable current of insulated building
// conductors (not more than three current-carrying conductors in a raceway,
// 30 °C ambient) and corrects it for other ambient temperatures.
//
// The table is keyed by a composite (Material, insulation rating °C,
// canonical size label). Sizes are accepted in any spelling wiregauge
// understands ("#12", "4/0 AWG", "250 MCM") and canonicalized before lookup.
//
// Ambient correction:
//
//	I' = I · sqrt((Tc − Ta') / (Tc − 30))
//
// where Tc is the insulation rating and Ta' the actual ambient temperature.
//
// Errors:
//
//   - ErrUnknownMaterial, ErrUnknownRating, ErrNotRated, ErrNoSize: LookupError.
//   - ErrAmbientTooHigh, ErrNonPositiveLoad: DomainError.
//   - Malformed sizes surface wiregauge's FormatError unchanged.
package ampacity
