// SPDX-License-Identifier: MIT

// Package shape models the solids an estimator weighs and measures: tubes
// (conduit, pipe), cylinders (tanks, piers) and boxes (pads, enclosures).
//
// Every shape is built through a builder that accepts whichever dimension the
// caller has on hand (a radius, a diameter, a circumference, an area) and
// validates all cross-field constraints once, in Build:
//
//	tube, err := shape.NewTubeBuilder().
//		OuterDiameter(0.706).
//		InnerDiameter(0.622).
//		LinearMassDensity(0.30).
//		Build()
//
// Built values are immutable. Units are the caller's, but must be
// consistent (inches with lb/in³, feet with lb/ft³, …).
//
// Errors (all DomainError):
//
//   - ErrMissingDimension: a required dimension was never set.
//   - ErrNonPositive:      a dimension or density ≤ 0, NaN or ±Inf.
//   - ErrInvertedRadii:    tube inner radius ≥ outer radius.
//   - ErrOverconstrained:  one quantity set through two different setters.
//   - ErrNoMass:           weight requested from a shape built without density.
//   - ErrNegativeLength:   negative length passed to Weight.
package shape
