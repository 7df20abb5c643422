// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"

	"github.com/katalvlaran/estkit"
)

var (
	// ErrMissingDimension indicates Build was called before a required dimension was set.
	ErrMissingDimension = fmt.Errorf("shape: missing dimension: %w", estkit.ErrDomain)

	// ErrNonPositive indicates a dimension or density that is not positive and finite.
	ErrNonPositive = fmt.Errorf("shape: value must be positive and finite: %w", estkit.ErrDomain)

	// ErrInvertedRadii indicates a tube whose inner radius is not smaller than its outer radius.
	ErrInvertedRadii = fmt.Errorf("shape: inner radius must be less than outer radius: %w", estkit.ErrDomain)

	// ErrOverconstrained indicates one quantity was set through two different setters.
	ErrOverconstrained = fmt.Errorf("shape: quantity set more than once: %w", estkit.ErrDomain)

	// ErrNoMass indicates a weight was requested from a shape with no density.
	ErrNoMass = fmt.Errorf("shape: no density set: %w", estkit.ErrDomain)

	// ErrNegativeLength indicates a negative length.
	ErrNegativeLength = fmt.Errorf("shape: length must not be negative: %w", estkit.ErrDomain)
)
