// SPDX-License-Identifier: MIT

package wiregauge

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

const (
	// awgAnchorDiameter is the #36 AWG diameter in inches.
	awgAnchorDiameter = 0.005
	// awgAnchorStep is the step number of the anchor gauge.
	awgAnchorStep = 36
	// awgRatioBase and awgRatioSteps: 92^(1/39) between adjacent gauges.
	awgRatioBase  = 92.0
	awgRatioSteps = 39.0
)

// awgPattern captures either a plain gauge (group 1/3) or an aught count (group 2/4).
var awgPattern = regexp.MustCompile(`^(?:#(?:(\d{1,2})|(\d)/0)|(?:(\d{1,2})|(\d)/0) AWG)$`)

// AWGDiameter returns the diameter in inches of AWG step s.
// Step 1 is "1 AWG"; aught sizes k/0 are step 1−k.
func AWGDiameter(step int) float64 {
	return awgAnchorDiameter * math.Pow(awgRatioBase, (awgAnchorStep-float64(step))/awgRatioSteps)
}

// AWGStep returns the nearest AWG step for diameter d (inches).
// d must be positive; the result for d ≤ 0 is meaningless.
func AWGStep(d float64) int {
	return int(math.Round(-awgRatioSteps*math.Log(d/awgAnchorDiameter)/math.Log(awgRatioBase) + awgAnchorStep))
}

// ParseAWG parses "#12", "12 AWG", "#2/0" or "2/0 AWG" into a step number.
func ParseAWG(s string) (int, error) {
	m := awgPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("ParseAWG(%q): %w", s, ErrSyntax)
	}

	plainGauge, aught := m[1]+m[3], m[2]+m[4]
	if plainGauge != "" {
		n, _ := strconv.Atoi(plainGauge)
		if n < 1 {
			return 0, fmt.Errorf("ParseAWG(%q): gauge 0 is written 1/0: %w", s, ErrSyntax)
		}
		return n, nil
	}

	k, _ := strconv.Atoi(aught)
	if k < 1 {
		return 0, fmt.Errorf("ParseAWG(%q): 0/0 is not a gauge: %w", s, ErrSyntax)
	}

	return 1 - k, nil
}

// FormatAWG renders a step number as its canonical label: "12 AWG", "2/0 AWG".
func FormatAWG(step int) string {
	if step < 1 {
		return fmt.Sprintf("%d/0 AWG", 1-step)
	}

	return fmt.Sprintf("%d AWG", step)
}
