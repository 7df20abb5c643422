package wiregauge_test

import (
	"testing"

	"github.com/katalvlaran/estkit"
	"github.com/katalvlaran/estkit/wiregauge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAWG_StepRoundTrip verifies AWGStep(AWGDiameter(s)) == s for 9/0 … #40.
func TestAWG_StepRoundTrip(t *testing.T) {
	for s := -8; s <= 40; s++ {
		assert.Equal(t, s, wiregauge.AWGStep(wiregauge.AWGDiameter(s)), "step %d", s)
	}
}

// TestAWG_KnownDiameters pins the series against the standard table.
func TestAWG_KnownDiameters(t *testing.T) {
	assert.InDelta(t, 0.2893, wiregauge.AWGDiameter(1), 1e-4, "1 AWG")
	assert.InDelta(t, 0.3249, wiregauge.AWGDiameter(0), 1e-4, "1/0 AWG")

	one, err := wiregauge.Lookup("1 AWG")
	require.NoError(t, err)
	assert.InDelta(t, one, wiregauge.AWGDiameter(1), 1e-6)

	aught, err := wiregauge.Lookup("1/0 AWG")
	require.NoError(t, err)
	assert.InDelta(t, aught, wiregauge.AWGDiameter(0), 1e-6)

	assert.InDelta(t, 0.46, wiregauge.AWGDiameter(-3), 1e-12, "4/0 AWG anchors the series")
	assert.InDelta(t, 0.005, wiregauge.AWGDiameter(36), 1e-15, "#36 anchors the series")
}

// TestParseAWG covers both spellings, aught sizes and rejected gauges.
func TestParseAWG(t *testing.T) {
	valid := []struct {
		in   string
		step int
	}{
		{"#12", 12},
		{"12 AWG", 12},
		{"#1", 1},
		{"99 AWG", 99},
		{"#1/0", 0},
		{"2/0 AWG", -1},
		{"4/0 AWG", -3},
		{"#9/0", -8},
	}
	for _, tc := range valid {
		step, err := wiregauge.ParseAWG(tc.in)
		require.NoError(t, err, "ParseAWG(%q)", tc.in)
		assert.Equal(t, tc.step, step, "ParseAWG(%q)", tc.in)
	}

	invalid := []string{"", "12", "#", "#0", "00 AWG", "0/0 AWG", "#100", "12 awg", "12AWG", "#10/0", "#2/1", " #12"}
	for _, in := range invalid {
		_, err := wiregauge.ParseAWG(in)
		assert.ErrorIs(t, err, wiregauge.ErrSyntax, "ParseAWG(%q)", in)
		assert.ErrorIs(t, err, estkit.ErrFormat, "ParseAWG(%q)", in)
	}
}

// TestFormatAWG renders positive and aught steps.
func TestFormatAWG(t *testing.T) {
	assert.Equal(t, "12 AWG", wiregauge.FormatAWG(12))
	assert.Equal(t, "1 AWG", wiregauge.FormatAWG(1))
	assert.Equal(t, "1/0 AWG", wiregauge.FormatAWG(0))
	assert.Equal(t, "4/0 AWG", wiregauge.FormatAWG(-3))
}
