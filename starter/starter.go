// SPDX-License-Identifier: MIT

package starter

import (
	"fmt"
	"math"
	"strings"
)

// WattsPerHorsepower is the electrical horsepower.
const WattsPerHorsepower = 746.0

// Rating is one NEMA size and its maximum continuous current.
type Rating struct {
	Size    string  `json:"size" msgpack:"size"`
	Amperes float64 `json:"amperes" msgpack:"amperes"`
}

// ratings is ordered by ascending current.
var ratings = []Rating{
	{"00", 9}, {"0", 18}, {"1", 27}, {"2", 45}, {"3", 90}, {"4", 135},
	{"5", 270}, {"6", 540}, {"7", 810}, {"8", 1215}, {"9", 2250},
}

// Ratings returns the NEMA size table in ascending order.
func Ratings() []Rating {
	out := make([]Rating, len(ratings))
	copy(out, ratings)

	return out
}

// CanonicalSize returns the table spelling of a NEMA size. A "NEMA" or
// "size" prefix is ignored: "NEMA 2", "size 00", "2".
func CanonicalSize(size string) (string, error) {
	r, ok := find(size)
	if !ok {
		return "", fmt.Errorf("CanonicalSize(%q): %w", size, ErrUnknownSize)
	}

	return r.Size, nil
}

// MaxContinuousAmperes returns the continuous current rating of a size.
func MaxContinuousAmperes(size string) (float64, error) {
	r, ok := find(size)
	if !ok {
		return 0, fmt.Errorf("MaxContinuousAmperes(%q): %w", size, ErrUnknownSize)
	}

	return r.Amperes, nil
}

// MaxPowerWatts returns the three-phase power limit of a size at volts.
func MaxPowerWatts(size string, volts float64) (float64, error) {
	if err := checkVoltage(volts); err != nil {
		return 0, fmt.Errorf("MaxPowerWatts: %w", err)
	}
	a, err := MaxContinuousAmperes(size)
	if err != nil {
		return 0, fmt.Errorf("MaxPowerWatts: %w", err)
	}

	return a * volts * math.Sqrt(3), nil
}

// MaxHorsepower returns the three-phase horsepower limit of a size at volts.
func MaxHorsepower(size string, volts float64) (float64, error) {
	w, err := MaxPowerWatts(size, volts)
	if err != nil {
		return 0, err
	}

	return w / WattsPerHorsepower, nil
}

// MinimumSizeForAmperes returns the smallest size rated for amperes,
// after rounding amperes up to a whole number.
func MinimumSizeForAmperes(amperes float64) (string, error) {
	if amperes < 0 || math.IsNaN(amperes) {
		return "", fmt.Errorf("MinimumSizeForAmperes(%v): %w", amperes, ErrNegativeLoad)
	}
	need := math.Ceil(amperes)
	for _, r := range ratings {
		if need <= r.Amperes {
			return r.Size, nil
		}
	}

	return "", fmt.Errorf("MinimumSizeForAmperes(%v): %w", amperes, ErrNoSize)
}

// MinimumSizeForWatts sizes a three-phase load given in watts.
func MinimumSizeForWatts(watts, volts float64) (string, error) {
	if err := checkVoltage(volts); err != nil {
		return "", fmt.Errorf("MinimumSizeForWatts: %w", err)
	}

	return MinimumSizeForAmperes(watts / (volts * math.Sqrt(3)))
}

// MinimumSizeForHorsepower sizes a three-phase motor given in horsepower.
func MinimumSizeForHorsepower(hp, volts float64) (string, error) {
	return MinimumSizeForWatts(hp*WattsPerHorsepower, volts)
}

func find(size string) (Rating, bool) {
	key := normalize(size)
	for _, r := range ratings {
		if r.Size == key {
			return r, true
		}
	}

	return Rating{}, false
}

func normalize(size string) string {
	s := strings.ToUpper(strings.TrimSpace(size))
	for _, p := range []string{"NEMA", "SIZE"} {
		s = strings.TrimSpace(strings.TrimPrefix(s, p))
	}

	return s
}

func checkVoltage(v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return fmt.Errorf("%v V: %w", v, ErrNonPositiveVoltage)
	}

	return nil
}
