// SPDX-License-Identifier: MIT

package ampacity

import (
	"fmt"

	"github.com/katalvlaran/estkit"
)

var (
	// ErrUnknownMaterial indicates a conductor material name that is not recognized.
	ErrUnknownMaterial = fmt.Errorf("ampacity: unknown material: %w", estkit.ErrLookup)

	// ErrUnknownRating indicates an insulation rating other than 60, 75 or 90 °C.
	ErrUnknownRating = fmt.Errorf("ampacity: unknown temperature rating: %w", estkit.ErrLookup)

	// ErrNotRated indicates a size with no ampacity for the material and rating.
	ErrNotRated = fmt.Errorf("ampacity: size not rated: %w", estkit.ErrLookup)

	// ErrNoSize indicates a load larger than the largest tabulated conductor carries.
	ErrNoSize = fmt.Errorf("ampacity: no size carries the load: %w", estkit.ErrLookup)

	// ErrAmbientTooHigh indicates an ambient temperature at or above the insulation rating.
	ErrAmbientTooHigh = fmt.Errorf("ampacity: ambient temperature at or above rating: %w", estkit.ErrDomain)

	// ErrNonPositiveLoad indicates a load current ≤ 0 or not finite.
	ErrNonPositiveLoad = fmt.Errorf("ampacity: load must be positive: %w", estkit.ErrDomain)
)
