// SPDX-License-Identifier: MIT

package rebar

import (
	"fmt"

	"github.com/katalvlaran/estkit"
)

var (
	// ErrEmpty indicates an empty bar size.
	ErrEmpty = fmt.Errorf("rebar: empty bar size: %w", estkit.ErrFormat)

	// ErrUnknownSize indicates a bar size missing from the table.
	ErrUnknownSize = fmt.Errorf("rebar: unknown bar size: %w", estkit.ErrLookup)

	// ErrNegativeLength indicates a negative or NaN length.
	ErrNegativeLength = fmt.Errorf("rebar: length must not be negative: %w", estkit.ErrDomain)
)
