package base26_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/estkit"
	"github.com/katalvlaran/estkit/base26"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncode_Known pins the column-name boundaries.
func TestEncode_Known(t *testing.T) {
	cases := map[int]string{
		1:     "A",
		26:    "Z",
		27:    "AA",
		52:    "AZ",
		53:    "BA",
		702:   "ZZ",
		703:   "AAA",
		16384: "XFD",
	}
	for n, want := range cases {
		got, err := base26.Encode(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "Encode(%d)", n)
	}
}

// TestRoundTrip checks Decode(Encode(n)) == n over a range and at MaxInt.
func TestRoundTrip(t *testing.T) {
	for n := 1; n <= 20000; n++ {
		s, err := base26.Encode(n)
		require.NoError(t, err)
		got, err := base26.Decode(s)
		require.NoError(t, err)
		require.Equal(t, n, got, "label %q", s)
	}

	s, err := base26.Encode(math.MaxInt)
	require.NoError(t, err)
	got, err := base26.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, got)
}

// TestDecode_CaseInsensitive accepts lower and mixed case.
func TestDecode_CaseInsensitive(t *testing.T) {
	for _, s := range []string{"ba", "Ba", "bA", "BA"} {
		got, err := base26.Decode(s)
		require.NoError(t, err)
		assert.Equal(t, 53, got, s)
	}
}

// TestErrors checks the error class for each failure mode.
func TestErrors(t *testing.T) {
	_, err := base26.Encode(0)
	assert.ErrorIs(t, err, base26.ErrNonPositive)
	assert.ErrorIs(t, err, estkit.ErrDomain)

	_, err = base26.Encode(-5)
	assert.ErrorIs(t, err, estkit.ErrDomain)

	_, err = base26.Decode("A1")
	assert.ErrorIs(t, err, base26.ErrInvalidLetter)
	assert.ErrorIs(t, err, estkit.ErrFormat)

	_, err = base26.Decode("")
	assert.ErrorIs(t, err, base26.ErrEmpty)
	assert.ErrorIs(t, err, estkit.ErrFormat)

	_, err = base26.Decode("Ä")
	assert.ErrorIs(t, err, estkit.ErrFormat)

	_, err = base26.Decode("ZZZZZZZZZZZZZZZZ")
	assert.ErrorIs(t, err, base26.ErrOverflow)
	assert.ErrorIs(t, err, estkit.ErrDomain)
}

// TestLabel exercises the typed wrapper.
func TestLabel(t *testing.T) {
	l, err := base26.ParseLabel("z")
	require.NoError(t, err)
	assert.Equal(t, base26.Label(26), l)
	assert.Equal(t, "Z", l.String())
	assert.Equal(t, "AA", l.Next().String())
	assert.Equal(t, -1, l.Compare(l.Next()))
	assert.Equal(t, "", base26.Label(0).String())

	_, err = base26.ParseLabel("1")
	assert.ErrorIs(t, err, base26.ErrInvalidLetter)
}
