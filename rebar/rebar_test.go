package rebar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/estkit"
	"github.com/katalvlaran/estkit/rebar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromBarSize accepts optional "#" and lower-case "j".
func TestFromBarSize(t *testing.T) {
	for in, want := range map[string]string{"#4": "#4", "4": "#4", " #14j ": "#14J", "18J": "#18J"} {
		b, err := rebar.FromBarSize(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, b.Size())
	}

	_, err := rebar.FromBarSize("#12")
	assert.ErrorIs(t, err, rebar.ErrUnknownSize)
	assert.ErrorIs(t, err, estkit.ErrLookup)

	_, err = rebar.FromBarSize("  ")
	assert.ErrorIs(t, err, rebar.ErrEmpty)
}

// TestBar_Weight checks #4 against the published 0.668 lb/ft.
func TestBar_Weight(t *testing.T) {
	b, err := rebar.FromBarSize("#4")
	require.NoError(t, err)
	assert.Equal(t, 0.5, b.NominalDiameter())
	assert.InDelta(t, math.Pi/16, b.Area(), 1e-12)
	assert.InDelta(t, 0.668, b.LinearMassDensity(), 0.001)

	w, err := b.Weight(20)
	require.NoError(t, err)
	assert.InDelta(t, 20*b.LinearMassDensity(), w, 1e-12)

	_, err = b.Weight(-1)
	assert.ErrorIs(t, err, rebar.ErrNegativeLength)
}

// TestSizes is ordered by diameter and round-trips.
func TestSizes(t *testing.T) {
	sizes := rebar.Sizes()
	require.Len(t, sizes, 14)
	prev := 0.0
	for _, s := range sizes {
		b, err := rebar.FromBarSize(s)
		require.NoError(t, err)
		assert.Greater(t, b.NominalDiameter(), prev, s)
		prev = b.NominalDiameter()
	}
}
