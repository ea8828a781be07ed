package oracle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfix/primpoly/poly"
)

func TestIsPrimitiveDegree4Mod5(t *testing.T) {
	// x^4 + x^2 + 2x + 3 mod 5, from the worked example: constant
	// coefficient 3 is a primitive root of 5, no linear factor,
	// Q-matrix nullity 1, x^r integer and consistent, order_m holds.
	f, err := poly.New(5, []uint64{3, 2, 1, 0, 1})
	require.NoError(t, err)
	o, err := New(5, 4, t.TempDir())
	require.NoError(t, err)
	ok, err := o.IsPrimitive(f)
	require.NoError(t, err)
	require.True(t, ok, "x^4+x^2+2x+3 mod 5 should be primitive")
}

func TestIsPrimitiveRejectsMultipleIrreducibleFactors(t *testing.T) {
	// x^3 + 3 mod 5 = (x+2)(x^2+3x+4): two distinct irreducible
	// factors (Q-matrix nullity 2). The constant-coefficient filter
	// passes, but x = 3 is a root, so the linear-factor filter already
	// rejects it.
	f, err := poly.New(5, []uint64{3, 0, 0, 1})
	require.NoError(t, err)
	o, err := New(5, 3, t.TempDir())
	require.NoError(t, err)
	ok, err := o.IsPrimitive(f)
	require.NoError(t, err)
	require.False(t, ok, "x^3+3 mod 5 should not be primitive (nullity 2)")
}

func TestIsPrimitiveDegree4Mod2(t *testing.T) {
	f, err := poly.New(2, []uint64{1, 1, 0, 0, 1}) // x^4+x+1
	require.NoError(t, err)
	o, err := New(2, 4, t.TempDir())
	require.NoError(t, err)
	ok, err := o.IsPrimitive(f)
	require.NoError(t, err)
	require.True(t, ok, "x^4+x+1 mod 2 should be primitive")
}

func TestIsPrimitiveRejectsNonPrimitiveSameDegree(t *testing.T) {
	f, err := poly.New(2, []uint64{1, 0, 0, 0, 1}) // x^4+1, not primitive mod 2
	require.NoError(t, err)
	o, err := New(2, 4, t.TempDir())
	require.NoError(t, err)
	ok, err := o.IsPrimitive(f)
	require.NoError(t, err)
	require.False(t, ok, "x^4+1 mod 2 should not be primitive")
}
