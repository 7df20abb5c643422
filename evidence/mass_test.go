package evidence_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/estkit"
	"github.com/katalvlaran/estkit/evidence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type focal = evidence.Focal[string]

func mustNew(t *testing.T, fs ...focal) evidence.Mass[string] {
	t.Helper()
	m, err := evidence.New(fs...)
	require.NoError(t, err)

	return m
}

// TestNew normalizes sets, merges duplicates and drops zero masses.
func TestNew(t *testing.T) {
	m := mustNew(t,
		focal{Set: []string{"C", "B", "B"}, Mass: 0.25},
		focal{Set: []string{"A"}, Mass: 0.5},
		focal{Set: []string{"B", "C"}, Mass: 0.25},
		focal{Set: []string{"D"}, Mass: 0},
	)
	assert.Equal(t, []focal{
		{Set: []string{"A"}, Mass: 0.5},
		{Set: []string{"B", "C"}, Mass: 0.5},
	}, m.Focals())
	assert.Equal(t, []string{"A", "B", "C"}, m.Frame())
}

// TestNew_Errors rejects malformed assignments.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		fs   []focal
		err  error
	}{
		{"Empty", nil, evidence.ErrMassSum},
		{"ShortSum", []focal{{Set: []string{"A"}, Mass: 0.9}}, evidence.ErrMassSum},
		{"Negative", []focal{{Set: []string{"A"}, Mass: 1.2}, {Set: []string{"B"}, Mass: -0.2}}, evidence.ErrInvalidMass},
		{"NaN", []focal{{Set: []string{"A"}, Mass: math.NaN()}}, evidence.ErrInvalidMass},
		{"EmptySet", []focal{{Set: nil, Mass: 1}}, evidence.ErrEmptyFocal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := evidence.New(tc.fs...)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, estkit.ErrDomain)
		})
	}

	_, err := evidence.New(focal{Set: []string{"A"}, Mass: 0.5 + 5e-9}, focal{Set: []string{"B"}, Mass: 0.5})
	assert.NoError(t, err)
}

// TestBeliefPlausibility checks the bounds Bel ≤ Pl and the sums.
func TestBeliefPlausibility(t *testing.T) {
	m := mustNew(t,
		focal{Set: []string{"A"}, Mass: 0.2},
		focal{Set: []string{"B", "C"}, Mass: 0.5},
		focal{Set: []string{"A", "B", "C"}, Mass: 0.3},
	)
	assert.InDelta(t, 0.2, m.Belief("A"), 1e-12)
	assert.InDelta(t, 0.5, m.Plausibility("A"), 1e-12)
	assert.InDelta(t, 0.5, m.Belief("C", "B"), 1e-12)
	assert.InDelta(t, 0.8, m.Plausibility("C", "B"), 1e-12)
	assert.InDelta(t, 0.8, m.Plausibility("B"), 1e-12)
	assert.InDelta(t, 1.0, m.Belief("A", "B", "C"), 1e-12)
	assert.Equal(t, 0.0, m.Belief("B"))

	for _, s := range [][]string{{"A"}, {"B"}, {"C"}, {"A", "B"}} {
		assert.LessOrEqual(t, m.Belief(s...), m.Plausibility(s...)+1e-12, s)
	}

	assert.InDelta(t, 0.2+0.1, m.Pignistic("A"), 1e-12)
	assert.InDelta(t, 0.25+0.1, m.Pignistic("B"), 1e-12)
	assert.Equal(t, 0.0, m.Pignistic("Z"))
}

// TestCombine applies Dempster's rule to two opinions.
func TestCombine(t *testing.T) {
	m1 := mustNew(t,
		focal{Set: []string{"A"}, Mass: 0.2},
		focal{Set: []string{"B", "C"}, Mass: 0.5},
		focal{Set: []string{"A", "B", "C"}, Mass: 0.3},
	)
	m2 := mustNew(t,
		focal{Set: []string{"B"}, Mass: 0.4},
		focal{Set: []string{"A", "C"}, Mass: 0.6},
	)
	assert.InDelta(t, 0.08, m1.Conflict(m2), 1e-12)

	c, err := m1.Combine(m2)
	require.NoError(t, err)
	got := c.Focals()
	require.Len(t, got, 4)
	want := []struct {
		set  []string
		mass float64
	}{
		{[]string{"A"}, 0.12 / 0.92},
		{[]string{"B"}, 0.32 / 0.92},
		{[]string{"C"}, 0.30 / 0.92},
		{[]string{"A", "C"}, 0.18 / 0.92},
	}
	var sum float64
	for i, w := range want {
		assert.Equal(t, w.set, got[i].Set)
		assert.InDelta(t, w.mass, got[i].Mass, 1e-12)
		sum += got[i].Mass
	}
	assert.InDelta(t, 1.0, sum, 1e-12)

	swapped, err := m2.Combine(m1)
	require.NoError(t, err)
	for i, f := range swapped.Focals() {
		assert.InDelta(t, got[i].Mass, f.Mass, 1e-12)
	}
}

// TestCombine_Vacuous leaves the other assignment unchanged.
func TestCombine_Vacuous(t *testing.T) {
	v, err := evidence.Vacuous("A", "B", "C")
	require.NoError(t, err)
	m := mustNew(t, focal{Set: []string{"A"}, Mass: 0.6}, focal{Set: []string{"B", "C"}, Mass: 0.4})

	c, err := m.Combine(v)
	require.NoError(t, err)
	assert.Equal(t, m.Focals(), c.Focals())
}

// TestCombine_TotalConflict fails when the opinions are disjoint.
func TestCombine_TotalConflict(t *testing.T) {
	a := mustNew(t, focal{Set: []string{"A"}, Mass: 1})
	b := mustNew(t, focal{Set: []string{"B"}, Mass: 1})
	_, err := a.Combine(b)
	assert.ErrorIs(t, err, evidence.ErrTotalConflict)
	assert.ErrorIs(t, err, estkit.ErrDomain)
}

// TestFocals_Copy returns sets the caller may modify.
func TestFocals_Copy(t *testing.T) {
	m := mustNew(t, focal{Set: []string{"A", "B"}, Mass: 1})
	fs := m.Focals()
	fs[0].Set[0] = "Z"
	assert.Equal(t, []string{"A", "B"}, m.Focals()[0].Set)
}
