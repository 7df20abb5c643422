// SPDX-License-Identifier: MIT

package wiregauge

import (
	"fmt"

	"github.com/katalvlaran/estkit"
)

var (
	// ErrEmpty indicates an empty size string.
	ErrEmpty = fmt.Errorf("wiregauge: empty size: %w", estkit.ErrFormat)

	// ErrSyntax indicates a string matching neither the AWG nor the kcmil grammar.
	ErrSyntax = fmt.Errorf("wiregauge: invalid wire size: %w", estkit.ErrFormat)

	// ErrNonPositiveDiameter indicates a diameter that is not a positive finite number.
	ErrNonPositiveDiameter = fmt.Errorf("wiregauge: diameter must be positive and finite: %w", estkit.ErrDomain)

	// ErrOutOfRange indicates a diameter outside what AWG or kcmil labels can express.
	ErrOutOfRange = fmt.Errorf("wiregauge: diameter outside the notation range: %w", estkit.ErrDomain)

	// ErrUnknownSize indicates a label with no entry in the standard size table.
	ErrUnknownSize = fmt.Errorf("wiregauge: size not in standard table: %w", estkit.ErrLookup)
)
