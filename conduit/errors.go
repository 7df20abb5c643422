// SPDX-License-Identifier: MIT

package conduit

import (
	"fmt"

	"github.com/katalvlaran/estkit"
)

var (
	// ErrUnknownType indicates a conduit type alias that is not recognized.
	ErrUnknownType = fmt.Errorf("conduit: unknown conduit type: %w", estkit.ErrLookup)

	// ErrUnknownTradeSize indicates a trade size with no metric designator.
	ErrUnknownTradeSize = fmt.Errorf("conduit: unknown trade size: %w", estkit.ErrLookup)

	// ErrUnknownSize indicates the type is known but has no row for the size.
	ErrUnknownSize = fmt.Errorf("conduit: size not listed for type: %w", estkit.ErrLookup)

	// ErrIncompleteData indicates a table row lacking a dimension needed for the request.
	ErrIncompleteData = fmt.Errorf("conduit: incomplete dimension data: %w", estkit.ErrLookup)
)
