// SPDX-License-Identifier: MIT

package hierarchy

import (
	"fmt"

	"github.com/katalvlaran/estkit"
)

var (
	// ErrEmptyPath indicates a path with no labels.
	ErrEmptyPath = fmt.Errorf("hierarchy: empty path: %w", estkit.ErrDomain)

	// ErrNotFinite indicates a NaN or infinite quantity.
	ErrNotFinite = fmt.Errorf("hierarchy: quantity must be finite: %w", estkit.ErrDomain)

	// ErrPathNotFound indicates a path that has no node in the tree.
	ErrPathNotFound = fmt.Errorf("hierarchy: path not found: %w", estkit.ErrLookup)
)
