// SPDX-License-Identifier: MIT

package ampacity

import (
	"fmt"
	"strings"
)

// Material is a conductor material column of the table.
type Material int

const (
	// Copper conductors.
	Copper Material = iota + 1
	// Aluminum covers aluminum and copper-clad aluminum, which share a column.
	Aluminum
)

// String returns the column name.
func (m Material) String() string {
	switch m {
	case Copper:
		return "copper"
	case Aluminum:
		return "aluminum"
	default:
		return fmt.Sprintf("Material(%d)", int(m))
	}
}

// ParseMaterial accepts "copper"/"cu" and "aluminum"/"aluminium"/"al"/
// "copper-clad aluminum"/"cca", ignoring case.
func ParseMaterial(s string) (Material, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "copper", "cu":
		return Copper, nil
	case "aluminum", "aluminium", "al", "copper-clad aluminum", "cca":
		return Aluminum, nil
	}

	return 0, fmt.Errorf("ParseMaterial(%q): %w", s, ErrUnknownMaterial)
}

// Ratings lists the insulation temperature ratings (°C) the table carries.
var Ratings = []int{60, 75, 90}

func checkRating(ratingC int) error {
	for _, r := range Ratings {
		if r == ratingC {
			return nil
		}
	}

	return ErrUnknownRating
}
