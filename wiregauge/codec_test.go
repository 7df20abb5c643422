package wiregauge_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/estkit"
	"github.com/katalvlaran/estkit/wiregauge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseDiameter checks both regimes and the error classes.
func TestParseDiameter(t *testing.T) {
	d, err := wiregauge.ParseDiameter("#12")
	require.NoError(t, err)
	assert.InDelta(t, 0.0808, d, 1e-4)

	d, err = wiregauge.ParseDiameter("250 kcmil")
	require.NoError(t, err)
	assert.Equal(t, 0.5, d)

	d, err = wiregauge.ParseDiameter("#500")
	require.NoError(t, err, "three digits after # select kcmil")
	assert.InDelta(t, math.Sqrt(0.5), d, 1e-12)

	_, err = wiregauge.ParseDiameter("")
	assert.ErrorIs(t, err, wiregauge.ErrEmpty)
	assert.ErrorIs(t, err, estkit.ErrFormat)

	_, err = wiregauge.ParseDiameter("twelve")
	assert.ErrorIs(t, err, wiregauge.ErrSyntax)
	assert.ErrorIs(t, err, estkit.ErrFormat)
}

// TestFormatDiameter_RegimeBoundary pins the inclusive AWG side of 0.46 in.
func TestFormatDiameter_RegimeBoundary(t *testing.T) {
	cases := []struct {
		d    float64
		want string
	}{
		{0.46, "4/0 AWG"},
		{wiregauge.AWGDiameter(-3), "4/0 AWG"},
		{0.4601, "212 kcmil"},
		{0.5, "250 kcmil"},
		{0.0808, "12 AWG"},
		{0.3249, "1/0 AWG"},
	}
	for _, tc := range cases {
		got, err := wiregauge.FormatDiameter(tc.d)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "FormatDiameter(%v)", tc.d)
	}
	assert.True(t, wiregauge.IsAWG(0.46))
	assert.False(t, wiregauge.IsAWG(0.4601))
}

// TestFormatDiameter_Invalid rejects non-positive and non-finite diameters.
func TestFormatDiameter_Invalid(t *testing.T) {
	for _, d := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		_, err := wiregauge.FormatDiameter(d)
		assert.ErrorIs(t, err, wiregauge.ErrNonPositiveDiameter, "d=%v", d)
		assert.ErrorIs(t, err, estkit.ErrDomain, "d=%v", d)
	}
}

// TestFormatDiameter_OutOfRange rejects diameters whose label could not be
// parsed back, and keeps the extremes that still round-trip.
func TestFormatDiameter_OutOfRange(t *testing.T) {
	for _, d := range []float64{3.2, 5, 1e200, 1e-7, wiregauge.AWGDiameter(100)} {
		_, err := wiregauge.FormatDiameter(d)
		assert.ErrorIs(t, err, wiregauge.ErrOutOfRange, "d=%v", d)
		assert.ErrorIs(t, err, estkit.ErrDomain, "d=%v", d)
	}

	for _, d := range []float64{wiregauge.AWGDiameter(99), wiregauge.KcmilDiameter(9999)} {
		label, err := wiregauge.FormatDiameter(d)
		require.NoError(t, err, "d=%v", d)
		back, err := wiregauge.ParseDiameter(label)
		require.NoError(t, err, label)
		assert.InDelta(t, d, back, 1e-9, label)
	}
}

// TestStandardTable_RoundTrip formats every table diameter back to its label
// and parses every label back to its diameter.
func TestStandardTable_RoundTrip(t *testing.T) {
	sizes := wiregauge.StandardSizes()
	require.Len(t, sizes, 30)
	for i, s := range sizes {
		got, err := wiregauge.FormatDiameter(s.Diameter)
		require.NoError(t, err)
		assert.Equal(t, s.Label, got)

		d, err := wiregauge.ParseDiameter(s.Label)
		require.NoError(t, err)
		assert.InDelta(t, s.Diameter, d, 1e-6, s.Label)

		if i > 0 {
			assert.Greater(t, s.Diameter, sizes[i-1].Diameter, "table is ascending")
		}
	}
}

// TestLookup distinguishes a miss (LookupError) from a well-formed label.
func TestLookup(t *testing.T) {
	d, err := wiregauge.Lookup("4/0 AWG")
	require.NoError(t, err)
	assert.Equal(t, 0.46, d)

	_, err = wiregauge.Lookup("#4/0")
	assert.ErrorIs(t, err, wiregauge.ErrUnknownSize, "lookup is exact; no normalization")
	assert.ErrorIs(t, err, estkit.ErrLookup)

	_, err = wiregauge.Lookup("20 AWG")
	assert.ErrorIs(t, err, estkit.ErrLookup)
}

// TestCanonical normalizes alternate spellings to table labels.
func TestCanonical(t *testing.T) {
	for in, want := range map[string]string{
		"#12":      "12 AWG",
		"12 AWG":   "12 AWG",
		"#2/0":     "2/0 AWG",
		"250 MCM":  "250 kcmil",
		"#500":     "500 kcmil",
		"1000 MCM": "1000 kcmil",
	} {
		got, err := wiregauge.Canonical(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := wiregauge.Canonical("")
	assert.ErrorIs(t, err, wiregauge.ErrEmpty)
	_, err = wiregauge.Canonical("#0")
	assert.ErrorIs(t, err, wiregauge.ErrSyntax)
}

// TestStandardSizes_Copy ensures callers cannot mutate the table.
func TestStandardSizes_Copy(t *testing.T) {
	a := wiregauge.StandardSizes()
	a[0].Diameter = 99
	b := wiregauge.StandardSizes()
	assert.NotEqual(t, 99.0, b[0].Diameter)
}
