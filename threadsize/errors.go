// SPDX-License-Identifier: MIT

package threadsize

import (
	"fmt"

	"github.com/katalvlaran/estkit"
)

var (
	// ErrSyntax indicates a designation that is not "size-tpi".
	ErrSyntax = fmt.Errorf("threadsize: invalid thread designation: %w", estkit.ErrFormat)

	// ErrUnknownSize indicates a numbered size outside #0–#12.
	ErrUnknownSize = fmt.Errorf("threadsize: unknown numbered size: %w", estkit.ErrLookup)

	// ErrNonPositive indicates a major diameter or thread density ≤ 0.
	ErrNonPositive = fmt.Errorf("threadsize: value must be positive: %w", estkit.ErrDomain)
)
