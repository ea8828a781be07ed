package poly

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialTrialPolyString(t *testing.T) {
	f, err := InitialTrialPoly(4, 2)
	require.NoError(t, err)
	require.Equal(t, "x ^ 4 + 1, 2", f.String())
}

func TestNextTrialPolyEnumeratesExactlyPToTheN(t *testing.T) {
	const p, n = 2, 3
	f, err := InitialTrialPoly(n, p)
	require.NoError(t, err)
	seen := map[string]bool{f.String(): true}
	count := 1
	for {
		if err := f.NextTrialPoly(); err != nil {
			break
		}
		seen[f.String()] = true
		count++
		require.LessOrEqual(t, count, 100, "enumeration did not terminate")
	}
	total := 1
	for i := 0; i < n; i++ {
		total *= p
	}
	require.Equal(t, total, count, "enumerated polynomial count should equal p^n")
	require.Len(t, seen, total, "enumeration should produce no duplicates")
}

func TestHasLinearFactor(t *testing.T) {
	// x^4 + x + 1 mod 2 has no root in GF(2).
	f, err := New(2, []uint64{1, 1, 0, 0, 1})
	require.NoError(t, err)
	require.False(t, f.HasLinearFactor(), "x^4+x+1 should have no linear factor mod 2")
}

func TestAddAssignTrims(t *testing.T) {
	f, err := New(5, []uint64{1, 2, 3})
	require.NoError(t, err)
	g, err := New(5, []uint64{0, 0, 2})
	require.NoError(t, err)
	require.NoError(t, f.AddAssign(g))
	require.Equal(t, 1, f.Degree(), "expected degree 1 after cancelling leading terms: %s", f)
}

func TestStringSuppressesCoefficientOne(t *testing.T) {
	f, err := New(5, []uint64{2, 3, 1, 0, 1})
	require.NoError(t, err)
	require.Equal(t, "x ^ 4 + x ^ 2 + 3 x + 2, 5", f.String())
}
