// SPDX-License-Identifier: MIT

// Package conduit resolves electrical raceway names and trade sizes to
// physical dimensions.
//
// What:
//
//   - CanonicalType folds trade aliases to one type name
//     ("GRC" → "RMC", "PVC" → "PVC-40", "LFNC" → "LFNC-A").
//   - MetricDesignator and ParseTradeSize map an inch trade size
//     ("3/4", "1-1/4", 2.5) to its metric designator (21, 35, 63).
//   - Lookup returns inner/outer diameter and weight per foot for the types
//     the table carries (EMT, IMC, RMC, RMC-PVC, PVC-40, PVC-80).
//   - Tube turns a Lookup into a shape.Tube for area and weight math.
//
// Some types (ENT, FMC, LFMC, HDPE, …) are valid names without dimension
// data; Lookup reports ErrUnknownSize for them rather than guessing.
//
// Errors:
//
//   - ErrUnknownType, ErrUnknownTradeSize, ErrUnknownSize,
//     ErrIncompleteData: all LookupError.
//   - Parse failures of the trade size surface mixednum's FormatError.
package conduit
