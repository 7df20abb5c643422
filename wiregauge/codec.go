// SPDX-License-Identifier: MIT

package wiregauge

import (
	"fmt"
	"math"
)

const (
	// RegimeThreshold is the largest diameter (inches) formatted as AWG.
	// It equals the 4/0 AWG diameter; anything larger is formatted in kcmil.
	RegimeThreshold = 0.46

	// thresholdTolerance absorbs float noise in AWGDiameter(-3) ≈ 0.46.
	thresholdTolerance = 1e-9

	// MaxAWGStep and MaxKcmil are the largest values the notations can
	// write: two gauge digits and four kcmil digits.
	MaxAWGStep = 99
	MaxKcmil   = 9999
)

// ParseDiameter parses any accepted AWG or kcmil notation into a diameter in
// inches. AWG is tried first; the first grammar that matches wins.
//
// Example:
//
//	d, _ := ParseDiameter("#12")       // 0.0808
//	d, _ = ParseDiameter("4/0 AWG")    // 0.46
//	d, _ = ParseDiameter("250 MCM")    // 0.5
func ParseDiameter(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("ParseDiameter: %w", ErrEmpty)
	}
	if step, err := ParseAWG(s); err == nil {
		return AWGDiameter(step), nil
	}
	if area, err := ParseKcmil(s); err == nil {
		return KcmilDiameter(area), nil
	}

	return 0, fmt.Errorf("ParseDiameter(%q): %w", s, ErrSyntax)
}

// FormatDiameter renders a diameter (inches) in the notation of its regime:
// "N AWG"/"k/0 AWG" up to RegimeThreshold inclusive, "N kcmil" above it.
// Diameters whose label would not parse back (finer than 99 AWG or larger
// than 9999 kcmil) are rejected with ErrOutOfRange.
func FormatDiameter(d float64) (string, error) {
	if err := checkDiameter(d); err != nil {
		return "", fmt.Errorf("FormatDiameter(%v): %w", d, err)
	}
	if IsAWG(d) {
		step := AWGStep(d)
		if step > MaxAWGStep {
			return "", fmt.Errorf("FormatDiameter(%v): finer than %d AWG: %w", d, MaxAWGStep, ErrOutOfRange)
		}
		return FormatAWG(step), nil
	}
	if math.Round(d*d*KcmilPerSquareInch) > MaxKcmil {
		return "", fmt.Errorf("FormatDiameter(%v): larger than %d kcmil: %w", d, MaxKcmil, ErrOutOfRange)
	}

	return FormatKcmil(KcmilArea(d)), nil
}

// IsAWG reports whether d (inches) falls in the AWG regime.
func IsAWG(d float64) bool {
	return d <= RegimeThreshold+thresholdTolerance
}

// Canonical normalizes any accepted spelling to the label the reference
// tables are keyed by: "#12" → "12 AWG", "#2/0" → "2/0 AWG", "250 MCM" → "250 kcmil".
// The label is derived from the notation itself, not from a diameter, so
// no rounding is involved.
func Canonical(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("Canonical: %w", ErrEmpty)
	}
	if step, err := ParseAWG(s); err == nil {
		return FormatAWG(step), nil
	}
	area, err := ParseKcmil(s)
	if err != nil {
		return "", fmt.Errorf("Canonical(%q): %w", s, ErrSyntax)
	}

	return FormatKcmil(area), nil
}

// checkDiameter rejects zero, negative and non-finite diameters.
func checkDiameter(d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return ErrNonPositiveDiameter
	}

	return nil
}
