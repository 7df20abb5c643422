// SPDX-License-Identifier: MIT
// Package: estkit
//
// errors.go — the error taxonomy shared by every estkit package.
//
// Error policy:
//   • Every package sentinel wraps exactly one of the three classes below.
//   • Callers branch with errors.Is on either the class or the sentinel.
//   • No package panics on user input.

package estkit

import "errors"

var (
	// ErrFormat classifies input that does not match a codec's grammar:
	// a malformed fraction, an invalid AWG/kcmil notation, a non-letter in a
	// base-26 label.
	ErrFormat = errors.New("estkit: format error")

	// ErrDomain classifies syntactically valid input that is out of range:
	// a zero denominator, a non-positive base-26 value, a negative length.
	ErrDomain = errors.New("estkit: domain error")

	// ErrLookup classifies a well-formed key that a static reference table
	// has no entry for.
	ErrLookup = errors.New("estkit: lookup error")
)
