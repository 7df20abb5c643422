// SPDX-License-Identifier: MIT

package base26

import (
	"fmt"

	"github.com/katalvlaran/estkit"
)

var (
	// ErrEmpty indicates an empty label.
	ErrEmpty = fmt.Errorf("base26: empty label: %w", estkit.ErrFormat)

	// ErrInvalidLetter indicates a character outside A–Z / a–z.
	ErrInvalidLetter = fmt.Errorf("base26: label may contain only letters A-Z: %w", estkit.ErrFormat)

	// ErrNonPositive indicates an integer below 1, which has no label.
	ErrNonPositive = fmt.Errorf("base26: value must be greater than zero: %w", estkit.ErrDomain)

	// ErrOverflow indicates a label whose value does not fit in an int.
	ErrOverflow = fmt.Errorf("base26: label value overflows int: %w", estkit.ErrDomain)
)
