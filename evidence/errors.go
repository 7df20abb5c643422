// SPDX-License-Identifier: MIT

package evidence

import (
	"fmt"

	"github.com/katalvlaran/estkit"
)

var (
	// ErrEmptyFocal indicates a focal set with no elements.
	ErrEmptyFocal = fmt.Errorf("evidence: empty focal set: %w", estkit.ErrDomain)

	// ErrInvalidMass indicates a mass outside [0, 1] or not finite.
	ErrInvalidMass = fmt.Errorf("evidence: mass must be in [0, 1]: %w", estkit.ErrDomain)

	// ErrMassSum indicates masses that do not sum to 1.
	ErrMassSum = fmt.Errorf("evidence: masses must sum to 1: %w", estkit.ErrDomain)

	// ErrTotalConflict indicates two bodies of evidence that contradict completely.
	ErrTotalConflict = fmt.Errorf("evidence: total conflict: %w", estkit.ErrDomain)
)
