// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/estkit"
)

// Process exit codes, one per error class.
const (
	exitOK     = 0
	exitOther  = 1
	exitFormat = 2
	exitDomain = 3
	exitLookup = 4
)

// errNotNumber classifies a numeric argument that does not parse.
var errNotNumber = fmt.Errorf("estkit: not a number: %w", estkit.ErrFormat)

// errNegative classifies a quantity argument below zero.
var errNegative = fmt.Errorf("estkit: quantity must not be negative: %w", estkit.ErrDomain)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, estkit.ErrFormat):
		return exitFormat
	case errors.Is(err, estkit.ErrDomain):
		return exitDomain
	case errors.Is(err, estkit.ErrLookup):
		return exitLookup
	default:
		return exitOther
	}
}
