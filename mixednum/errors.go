// SPDX-License-Identifier: MIT

package mixednum

import (
	"fmt"

	"github.com/katalvlaran/estkit"
)

var (
	// ErrEmpty indicates the input held nothing but whitespace.
	ErrEmpty = fmt.Errorf("mixednum: empty input: %w", estkit.ErrFormat)

	// ErrSyntax indicates the input does not match the mixed-number grammar.
	ErrSyntax = fmt.Errorf("mixednum: invalid mixed number: %w", estkit.ErrFormat)

	// ErrOutOfRange indicates a well-formed number too large for float64.
	ErrOutOfRange = fmt.Errorf("mixednum: value out of range: %w", estkit.ErrDomain)

	// ErrZeroDenominator indicates a fraction with a zero denominator.
	ErrZeroDenominator = fmt.Errorf("mixednum: zero denominator: %w", estkit.ErrDomain)
)
