// SPDX-License-Identifier: MIT

package laborfactor

import (
	"fmt"
	"math"
	"strings"
)

// Dimension names.
const (
	DimMountingHeight          = "Mounting Height"
	DimParallelRuns            = "Parallel Runs"
	DimAmbientTemperature      = "Ambient Temperature"
	DimAmbientRelativeHumidity = "Ambient Relative Humidity"
)

// MaxRecommendedHeight is the mounting height (ft) above which the height
// model is extrapolating.
const MaxRecommendedHeight = 50.0

// Factor is a single labor adjustment.
type Factor struct {
	Dimension  string  `json:"dimension" msgpack:"dimension"`
	Value      float64 `json:"value" msgpack:"value"`
	Multiplier float64 `json:"multiplier" msgpack:"multiplier"`
	Warning    string  `json:"warning,omitempty" msgpack:"warning,omitempty"`
}

// MountingHeight returns the factor for work mounted heightFt above the floor.
func MountingHeight(heightFt float64) (Factor, error) {
	if err := finite(heightFt); err != nil {
		return Factor{}, fmt.Errorf("MountingHeight: %w", err)
	}
	if heightFt < 0 {
		return Factor{}, fmt.Errorf("MountingHeight(%v): %w", heightFt, ErrNegativeHeight)
	}

	f := Factor{
		Dimension:  DimMountingHeight,
		Value:      heightFt,
		Multiplier: 0.4 * math.Pow(heightFt, 0.3),
	}
	if heightFt > MaxRecommendedHeight {
		f.Warning = fmt.Sprintf("mounting height %v exceeds recommended range (>%v)", heightFt, MaxRecommendedHeight)
	}

	return f, nil
}

// ParallelRuns returns the per-run factor when n runs are pulled together.
func ParallelRuns(n float64) (Factor, error) {
	if err := finite(n); err != nil {
		return Factor{}, fmt.Errorf("ParallelRuns: %w", err)
	}
	if n < 1 {
		return Factor{}, fmt.Errorf("ParallelRuns(%v): %w", n, ErrTooFewRuns)
	}

	return Factor{
		Dimension:  DimParallelRuns,
		Value:      n,
		Multiplier: 1.2 * math.Pow(n, -0.115),
	}, nil
}

// AmbientTemperature records the ambient temperature; its multiplier is 1
// until the model is calibrated.
func AmbientTemperature(celsius float64) Factor {
	return uncalibrated(DimAmbientTemperature, celsius)
}

// AmbientRelativeHumidity records relative humidity; its multiplier is 1
// until the model is calibrated.
func AmbientRelativeHumidity(percent float64) Factor {
	return uncalibrated(DimAmbientRelativeHumidity, percent)
}

func uncalibrated(dim string, v float64) Factor {
	return Factor{
		Dimension:  dim,
		Value:      v,
		Multiplier: 1,
		Warning:    strings.ToLower(dim) + " factor is not implemented",
	}
}

func finite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%v: %w", v, ErrNotFinite)
	}

	return nil
}
