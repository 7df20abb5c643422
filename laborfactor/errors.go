// SPDX-License-Identifier: MIT

package laborfactor

import (
	"fmt"

	"github.com/katalvlaran/estkit"
)

var (
	// ErrNegativeHeight indicates a mounting height below zero.
	ErrNegativeHeight = fmt.Errorf("laborfactor: mounting height must not be negative: %w", estkit.ErrDomain)

	// ErrTooFewRuns indicates fewer than one parallel run.
	ErrTooFewRuns = fmt.Errorf("laborfactor: parallel runs must be at least 1: %w", estkit.ErrDomain)

	// ErrNotFinite indicates a NaN or infinite input.
	ErrNotFinite = fmt.Errorf("laborfactor: value must be finite: %w", estkit.ErrDomain)
)
