// SPDX-License-Identifier: MIT

package wiregauge

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// KcmilPerSquareInch converts a squared diameter in inches to kcmil:
// one circular mil is a 0.001 in circle, so 1 in² (diameter squared) = 1000 kcmil.
const KcmilPerSquareInch = 1000.0

// kcmilPattern captures the area from "#500", "500 kcmil" or "500 MCM".
var kcmilPattern = regexp.MustCompile(`^(?:#(\d{3,4})|(\d{3,4}) (?:kcmil|MCM))$`)

// KcmilDiameter returns the diameter in inches of a conductor of the given area.
func KcmilDiameter(areaKcmil int) float64 {
	return math.Sqrt(float64(areaKcmil) / KcmilPerSquareInch)
}

// KcmilArea returns the area in whole kcmil of diameter d (inches), rounded
// to the nearest kcmil. KcmilArea(KcmilDiameter(a)) == a for whole a.
func KcmilArea(d float64) int {
	return int(math.Round(d * d * KcmilPerSquareInch))
}

// ParseKcmil parses "#250", "250 kcmil" or "250 MCM" into an area in kcmil.
func ParseKcmil(s string) (int, error) {
	m := kcmilPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("ParseKcmil(%q): %w", s, ErrSyntax)
	}
	area, _ := strconv.Atoi(m[1] + m[2])
	if area < 100 {
		return 0, fmt.Errorf("ParseKcmil(%q): area below 100 kcmil: %w", s, ErrSyntax)
	}

	return area, nil
}

// FormatKcmil renders an area as its canonical label: "250 kcmil".
func FormatKcmil(areaKcmil int) string {
	return strconv.Itoa(areaKcmil) + " kcmil"
}
