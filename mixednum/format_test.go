package mixednum_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/estkit/mixednum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormat_Values pins the canonical rendering of representative values.
func TestFormat_Values(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{2.75, "2-3/4"},
		{0.75, "3/4"},
		{-0.5, "-1/2"},
		{0.5, "1/2"},
		{0.375, "3/8"},
		{1.25, "1-1/4"},
		{-2.75, "-2-3/4"},
		{0.1, "3/32"},
		{1.99, "2"},
		{0.01, "0"},
		{-0.01, "0"},
		{1.0 / 64, "1/32"},
		{0, "0"},
		{3, "3"},
		{-4, "-4"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mixednum.Format(tc.in), "Format(%v)", tc.in)
	}
}

// TestFormat_RoundTripBound verifies |Parse(Format(x)) - x| ≤ MaxFormatError
// over a dense sweep of positive and negative values.
func TestFormat_RoundTripBound(t *testing.T) {
	for i := -2000; i <= 2000; i++ {
		x := float64(i) * 0.0137
		s := mixednum.Format(x)
		got, err := mixednum.Parse(s)
		require.NoError(t, err, "Parse(Format(%v)) = Parse(%q)", x, s)
		assert.LessOrEqual(t, math.Abs(got-x), mixednum.MaxFormatError+1e-12,
			"x=%v formatted as %q", x, s)
	}
}

// TestFormat_DyadicExact checks that every multiple of 1/32 round-trips exactly.
func TestFormat_DyadicExact(t *testing.T) {
	for n := -200; n <= 200; n++ {
		x := float64(n) / mixednum.Denominator
		got, err := mixednum.Parse(mixednum.Format(x))
		require.NoError(t, err)
		assert.Equal(t, x, got, "n=%d", n)
	}
}

// TestGCD covers the Euclidean algorithm including zero and negative operands.
func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{24, 32, 8},
		{32, 24, 8},
		{3, 32, 1},
		{0, 32, 32},
		{32, 0, 32},
		{0, 0, 0},
		{-12, 18, 6},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mixednum.GCD(tc.a, tc.b), "GCD(%d,%d)", tc.a, tc.b)
	}
}
