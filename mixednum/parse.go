// SPDX-License-Identifier: MIT

package mixednum

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// decimalPattern matches a bare unsigned decimal: "3", "2.75", "2.", ".5".
	decimalPattern = regexp.MustCompile(`^(?:\d+(?:\.\d*)?|\.\d+)$`)

	// fractionPattern matches "N/D" with an optional "W-" or "W " whole part.
	fractionPattern = regexp.MustCompile(`^(?:(\d+)[ -])?(\d+)/(\d+)$`)

	// bareFraction matches exactly "N/D".
	bareFraction = regexp.MustCompile(`^(\d+)/(\d+)$`)
)

// Parse converts a mixed-number string into its float64 value.
//
// Accepted forms: "2.75", "3/4", "2-3/4", "2 3/4", each optionally prefixed
// by "-" which negates the whole value. Surrounding whitespace is ignored.
//
// Example:
//
//	v, err := Parse("2-3/4") // 2.75, nil
//	v, err = Parse("-1 1/2") // -1.5, nil
//	_, err = Parse("1/0")    // ErrZeroDenominator
func Parse(s string) (float64, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return 0, fmt.Errorf("Parse(%q): %w", s, ErrEmpty)
	}

	neg := false
	body := in
	if strings.HasPrefix(body, "-") {
		neg = true
		body = body[1:]
	}

	v, err := parseMagnitude(body)
	if err != nil {
		return 0, fmt.Errorf("Parse(%q): %w", s, err)
	}
	if neg {
		return -v, nil
	}

	return v, nil
}

// parseMagnitude handles an unsigned body: decimal first, then (mixed) fraction.
func parseMagnitude(body string) (float64, error) {
	if decimalPattern.MatchString(body) {
		return parseNumber(body)
	}

	m := fractionPattern.FindStringSubmatch(body)
	if m == nil {
		return 0, ErrSyntax
	}

	frac, err := fraction(m[2], m[3])
	if err != nil {
		return 0, err
	}
	if m[1] == "" {
		return frac, nil
	}

	whole, err := parseNumber(m[1])
	if err != nil {
		return 0, err
	}
	if v := whole + frac; !math.IsInf(v, 0) {
		return v, nil
	}

	return 0, ErrOutOfRange
}

// ParseFraction converts a bare "N/D" string (no sign, no whole part).
func ParseFraction(s string) (float64, error) {
	m := bareFraction.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("ParseFraction(%q): %w", s, ErrSyntax)
	}
	v, err := fraction(m[1], m[2])
	if err != nil {
		return 0, fmt.Errorf("ParseFraction(%q): %w", s, err)
	}

	return v, nil
}

// fraction divides two digit strings already validated by a pattern.
func fraction(num, den string) (float64, error) {
	n, err := parseNumber(num)
	if err != nil {
		return 0, err
	}
	d, err := parseNumber(den)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, ErrZeroDenominator
	}

	return n / d, nil
}

// parseNumber parses a pattern-validated digit string. A value too large
// for float64 is well-formed but out of range.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, ErrOutOfRange
	case err != nil:
		return 0, ErrSyntax
	}

	return v, nil
}
