// SPDX-License-Identifier: MIT

package starter

import (
	"fmt"

	"github.com/katalvlaran/estkit"
)

var (
	// ErrUnknownSize indicates a NEMA size that does not exist.
	ErrUnknownSize = fmt.Errorf("starter: unknown NEMA size: %w", estkit.ErrLookup)

	// ErrNoSize indicates a load larger than the largest NEMA size carries.
	ErrNoSize = fmt.Errorf("starter: no NEMA size carries the load: %w", estkit.ErrLookup)

	// ErrNonPositiveVoltage indicates a voltage ≤ 0 or not finite.
	ErrNonPositiveVoltage = fmt.Errorf("starter: voltage must be positive: %w", estkit.ErrDomain)

	// ErrNegativeLoad indicates a negative or NaN load.
	ErrNegativeLoad = fmt.Errorf("starter: load must not be negative: %w", estkit.ErrDomain)
)
