// SPDX-License-Identifier: MIT

package threadsize

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/estkit/mixednum"
)

const (
	pitchDiameterFactor = 0.649519 // 3√3/8
	minorDiameterFactor = 1.299038 // 3√3/4
)

// numbered lists the machine-screw sizes, ascending, with the thread
// densities of their UNC, UNF and UNEF series.
var numbered = []struct {
	size     string
	diameter float64
	series   []float64
}{
	{"#0", 0.060, []float64{80}},
	{"#1", 0.073, []float64{64, 72}},
	{"#2", 0.086, []float64{56, 64}},
	{"#3", 0.099, []float64{48, 56}},
	{"#4", 0.112, []float64{40, 48}},
	{"#5", 0.125, []float64{40, 44}},
	{"#6", 0.138, []float64{32, 40}},
	{"#8", 0.164, []float64{32, 36}},
	{"#10", 0.190, []float64{24, 32}},
	{"#12", 0.216, []float64{24, 28, 32}},
}

// MajorDiameter returns the major diameter in inches of a numbered size.
// The "#" is optional.
func MajorDiameter(size string) (float64, error) {
	key := strings.TrimSpace(size)
	if !strings.HasPrefix(key, "#") {
		key = "#" + key
	}
	for _, n := range numbered {
		if n.size == key {
			return n.diameter, nil
		}
	}

	return 0, fmt.Errorf("MajorDiameter(%q): %w", size, ErrUnknownSize)
}

// NumberedSizes returns the numbered sizes in ascending diameter.
func NumberedSizes() []string {
	out := make([]string, len(numbered))
	for i, n := range numbered {
		out[i] = n.size
	}

	return out
}

// Thread is a UTS thread: major diameter (in) and threads per inch.
type Thread struct {
	major float64
	tpi   float64
}

// New validates and returns a Thread.
func New(majorDiameter, tpi float64) (Thread, error) {
	if !(majorDiameter > 0) || math.IsInf(majorDiameter, 1) {
		return Thread{}, fmt.Errorf("New: major diameter %v: %w", majorDiameter, ErrNonPositive)
	}
	if !(tpi > 0) || math.IsInf(tpi, 1) {
		return Thread{}, fmt.Errorf("New: threads per inch %v: %w", tpi, ErrNonPositive)
	}

	return Thread{major: majorDiameter, tpi: tpi}, nil
}

// Parse reads a designation: "#10-32", "10-24", "1/4-20", "1-1/2-6", "1-8".
// The part after the last "-" is the thread density.
//
// A "#" always marks a numbered size. A bare whole number is a numbered
// size only when the density belongs to that size's UNC/UNF/UNEF series
// ("10-24", "6-32"); otherwise it is a diameter in inches, so "1-8" is a
// 1 in bolt and "#1-64" the machine screw.
func Parse(s string) (Thread, error) {
	s = strings.TrimSpace(s)
	i := strings.LastIndex(s, "-")
	if i <= 0 || i == len(s)-1 {
		return Thread{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}
	sizePart, tpiPart := s[:i], s[i+1:]

	tpi, err := strconv.ParseFloat(tpiPart, 64)
	if err != nil {
		return Thread{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	var major float64
	if strings.HasPrefix(sizePart, "#") || inNumberedSeries(sizePart, tpi) {
		major, err = MajorDiameter(sizePart)
	} else {
		major, err = mixednum.Parse(sizePart)
	}
	if err != nil {
		return Thread{}, fmt.Errorf("Parse(%q): %w", s, err)
	}

	return New(major, tpi)
}

// inNumberedSeries reports whether bare size and tpi form a standard
// machine-screw designation.
func inNumberedSeries(size string, tpi float64) bool {
	key := "#" + size
	for _, n := range numbered {
		if n.size == key {
			return slices.Contains(n.series, tpi)
		}
	}

	return false
}

// MajorDiameter returns the major diameter in inches.
func (t Thread) MajorDiameter() float64 { return t.major }

// ThreadsPerInch returns the thread density.
func (t Thread) ThreadsPerInch() float64 { return t.tpi }

// Pitch returns the axial distance between threads in inches.
func (t Thread) Pitch() float64 { return 1 / t.tpi }

// PitchDiameter returns the basic pitch diameter.
func (t Thread) PitchDiameter() float64 { return t.major - pitchDiameterFactor*t.Pitch() }

// MinorDiameter returns the basic minor diameter of an external thread.
func (t Thread) MinorDiameter() float64 { return t.major - minorDiameterFactor*t.Pitch() }

// String renders the designation, using the numbered size when the major
// diameter is one.
func (t Thread) String() string {
	tpi := strconv.FormatFloat(t.tpi, 'f', -1, 64)
	for _, n := range numbered {
		if n.diameter == t.major {
			return n.size + "-" + tpi
		}
	}

	return mixednum.Format(t.major) + "-" + tpi
}
