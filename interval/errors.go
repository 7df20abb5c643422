// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"

	"github.com/katalvlaran/estkit"
)

// ErrDivideByZero indicates a divisor interval that contains zero.
var ErrDivideByZero = fmt.Errorf("interval: divisor contains zero: %w", estkit.ErrDomain)
