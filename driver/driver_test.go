package driver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfix/primpoly/poly"
)

func TestRunFindsSinglePrimitiveDegree4Mod2(t *testing.T) {
	rep, err := Run(2, 4, t.TempDir(), Options{})
	require.NoError(t, err)
	require.Len(t, rep.Found, 1)
	require.Equal(t, "x ^ 4 + x + 1, 2", rep.Found[0].String())
}

func TestRunListAllDegree4Mod2FindsExactlyTwo(t *testing.T) {
	rep, err := Run(2, 4, t.TempDir(), Options{ListAll: true})
	require.NoError(t, err)
	want := []string{"x ^ 4 + x + 1, 2", "x ^ 4 + x ^ 3 + 1, 2"}
	require.Len(t, rep.Found, len(want))
	for i, w := range want {
		require.Equal(t, w, rep.Found[i].String(), "polynomial %d", i)
	}
}

func TestRunWithSlowConfirmAgrees(t *testing.T) {
	rep, err := Run(2, 4, t.TempDir(), Options{SlowConfirm: true})
	require.NoError(t, err)
	require.Len(t, rep.Found, 1)
}

func TestMaximalOrderAgreesWithOracleOnPrimitive(t *testing.T) {
	f, err := poly.New(2, []uint64{1, 1, 0, 0, 1}) // x^4+x+1
	require.NoError(t, err)
	ok, err := MaximalOrder(f)
	require.NoError(t, err)
	require.True(t, ok, "x^4+x+1 mod 2 should have maximal order")
}

func TestMaximalOrderRejectsNonPrimitive(t *testing.T) {
	f, err := poly.New(2, []uint64{1, 0, 0, 0, 1}) // x^4+1
	require.NoError(t, err)
	ok, err := MaximalOrder(f)
	require.NoError(t, err)
	require.False(t, ok, "x^4+1 mod 2 should not have maximal order")
}
