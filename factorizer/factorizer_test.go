package factorizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfix/primpoly/bigint"
)

func TestMillerRabinBoundaryComposites(t *testing.T) {
	for _, n := range []uint64{0, 1, 4, 6, 8, 9, 10, 49} {
		require.Equal(t, composite, isProbablyPrimeSmall(n, 2), "n=%d", n)
	}
}

func TestMillerRabinBoundaryPrimes(t *testing.T) {
	for _, n := range []uint64{2, 3, 5, 7, 11, 13, 97, 104729} {
		require.Equal(t, probablyPrime, isProbablyPrimeSmall(n, 2), "n=%d", n)
	}
}

func TestIsAlmostSurelyPrime(t *testing.T) {
	ok, err := IsAlmostSurelyPrime(bigint.FromWord(104729))
	require.NoError(t, err)
	require.True(t, ok, "104729 should be almost-surely-prime")

	ok, err = IsAlmostSurelyPrime(bigint.FromWord(49))
	require.NoError(t, err)
	require.False(t, ok, "49 should not be almost-surely-prime")
}

func factorsToString(fz *Factorization) map[string]uint64 {
	out := make(map[string]uint64)
	for _, pf := range fz.Factors {
		out[pf.Prime.String()] = pf.Multiplicity
	}
	return out
}

func TestFactorize25852(t *testing.T) {
	n := bigint.FromWord(25852)
	fz, err := Factorize(n, t.TempDir(), 0, 0)
	require.NoError(t, err)
	require.Equal(t, map[string]uint64{"2": 2, "23": 1, "281": 1}, factorsToString(fz))
}

func TestFactorize3Pow20Minus1(t *testing.T) {
	three := bigint.FromWord(3)
	p20, err := bigint.Power(three, 20)
	require.NoError(t, err)
	n, err := p20.Sub(bigint.One())
	require.NoError(t, err)
	fz, err := Factorize(n, t.TempDir(), 0, 0)
	require.NoError(t, err)
	require.Equal(t, map[string]uint64{"2": 4, "5": 2, "11": 2, "61": 1, "1181": 1}, factorsToString(fz))
}

func TestFactorRAndCountPrimitivesDegree4Mod2(t *testing.T) {
	res, err := FactorRAndCountPrimitives(2, 4, t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "15", res.Q.String())
	// p=2 => p-1=1 so r = q.
	require.Equal(t, "15", res.R.String())
	require.Equal(t, "2", res.NumPrimitives.String())
}
