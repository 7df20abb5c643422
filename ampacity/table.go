// SPDX-License-Identifier: MIT

package ampacity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/estkit/wiregauge"
)

// sizes is the row order of columns; it matches wiregauge.StandardSizes.
var sizes = []string{
	"18 AWG", "16 AWG", "14 AWG", "12 AWG", "10 AWG", "8 AWG", "6 AWG",
	"4 AWG", "3 AWG", "2 AWG", "1 AWG", "1/0 AWG", "2/0 AWG", "3/0 AWG", "4/0 AWG",
	"250 kcmil", "300 kcmil", "350 kcmil", "400 kcmil", "500 kcmil", "600 kcmil",
	"700 kcmil", "750 kcmil", "800 kcmil", "900 kcmil", "1000 kcmil", "1250 kcmil",
	"1500 kcmil", "1750 kcmil", "2000 kcmil",
}

type column struct {
	material Material
	ratingC  int
}

// columns hold amperes per row of sizes; 0 means not rated.
var columns = map[column][]float64{
	{Copper, 60}: {
		0, 0, 15, 20, 30, 40, 55, 70, 85, 95, 110, 125, 145, 165, 195,
		215, 240, 260, 280, 320, 350, 385, 400, 410, 435, 455, 495, 525, 545, 555,
	},
	{Copper, 75}: {
		0, 0, 20, 25, 35, 50, 65, 85, 100, 115, 130, 150, 175, 200, 230,
		255, 285, 310, 335, 380, 420, 460, 475, 490, 520, 545, 590, 625, 650, 665,
	},
	{Copper, 90}: {
		14, 18, 25, 30, 40, 55, 75, 95, 115, 130, 145, 170, 195, 225, 260,
		290, 320, 350, 380, 430, 475, 520, 535, 555, 585, 615, 665, 705, 735, 750,
	},
	{Aluminum, 60}: {
		0, 0, 0, 15, 25, 35, 40, 55, 65, 75, 85, 100, 115, 130, 150,
		170, 195, 210, 225, 260, 285, 315, 320, 330, 355, 375, 405, 435, 455, 470,
	},
	{Aluminum, 75}: {
		0, 0, 0, 20, 30, 40, 50, 65, 75, 90, 100, 120, 135, 155, 180,
		205, 230, 250, 270, 310, 340, 375, 385, 395, 425, 445, 485, 520, 545, 560,
	},
	{Aluminum, 90}: {
		0, 0, 0, 25, 35, 45, 55, 75, 85, 100, 115, 135, 150, 175, 205,
		230, 260, 280, 305, 350, 385, 425, 435, 445, 480, 500, 545, 585, 615, 630,
	},
}

// rowBySize indexes sizes.
var rowBySize = func() map[string]int {
	m := make(map[string]int, len(sizes))
	for i, s := range sizes {
		m[s] = i
	}
	return m
}()

// TableAmbientC is the ambient temperature the table values assume.
const TableAmbientC = 30.0

// Entry is one rated cell of the table.
type Entry struct {
	Material Material `json:"material" msgpack:"material"`
	RatingC  int      `json:"rating_c" msgpack:"rating_c"`
	Size     string   `json:"size" msgpack:"size"`
	Amperes  float64  `json:"amperes" msgpack:"amperes"`
}

// Lookup returns the tabulated ampacity of a conductor.
//
// Example:
//
//	Lookup(Copper, 75, "#12")       // 25
//	Lookup(Aluminum, 90, "250 MCM") // 230
func Lookup(m Material, ratingC int, size string) (float64, error) {
	col, err := columnFor(m, ratingC)
	if err != nil {
		return 0, fmt.Errorf("Lookup: %w", err)
	}
	label, err := wiregauge.Canonical(size)
	if err != nil {
		return 0, fmt.Errorf("Lookup: %w", err)
	}
	i, ok := rowBySize[label]
	if !ok || col[i] == 0 {
		return 0, fmt.Errorf("Lookup(%s, %d°C, %s): %w", m, ratingC, label, ErrNotRated)
	}

	return col[i], nil
}

// MinimumSize returns the smallest tabulated size whose ampacity is at
// least amperes.
func MinimumSize(m Material, ratingC int, amperes float64) (string, error) {
	if !(amperes > 0) || math.IsInf(amperes, 1) {
		return "", fmt.Errorf("MinimumSize(%v): %w", amperes, ErrNonPositiveLoad)
	}
	col, err := columnFor(m, ratingC)
	if err != nil {
		return "", fmt.Errorf("MinimumSize: %w", err)
	}
	for i, a := range col {
		if a >= amperes {
			return sizes[i], nil
		}
	}

	return "", fmt.Errorf("MinimumSize(%s, %d°C, %v A): %w", m, ratingC, amperes, ErrNoSize)
}

// CorrectForAmbient scales a 30 °C table ampacity to another ambient
// temperature. Ambients below 30 °C raise the ampacity.
func CorrectForAmbient(amperes float64, ratingC int, ambientC float64) (float64, error) {
	if err := checkRating(ratingC); err != nil {
		return 0, fmt.Errorf("CorrectForAmbient(%d): %w", ratingC, err)
	}
	tc := float64(ratingC)
	if math.IsNaN(ambientC) || ambientC >= tc {
		return 0, fmt.Errorf("CorrectForAmbient(%v°C, rating %d°C): %w", ambientC, ratingC, ErrAmbientTooHigh)
	}

	return amperes * math.Sqrt((tc-ambientC)/(tc-TableAmbientC)), nil
}

// Entries returns every rated cell, grouped by material and rating and in
// ascending size within each group.
func Entries() []Entry {
	var out []Entry
	for _, m := range []Material{Copper, Aluminum} {
		for _, r := range Ratings {
			for i, a := range columns[column{m, r}] {
				if a > 0 {
					out = append(out, Entry{Material: m, RatingC: r, Size: sizes[i], Amperes: a})
				}
			}
		}
	}

	return out
}

func columnFor(m Material, ratingC int) ([]float64, error) {
	if m != Copper && m != Aluminum {
		return nil, fmt.Errorf("%s: %w", m, ErrUnknownMaterial)
	}
	if err := checkRating(ratingC); err != nil {
		return nil, fmt.Errorf("%d°C: %w", ratingC, err)
	}

	return columns[column{m, ratingC}], nil
}
