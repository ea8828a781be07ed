package modarith

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddModWrapsPastWordMax(t *testing.T) {
	p := uint64(1<<64 - 59)
	m, err := New(p)
	require.NoError(t, err)
	a := p - 1
	b := p - 1
	got := m.Add(a, b)
	// a+b = 2p-2 exceeds 2^64, so (a+b) mod p = p-2 is worked out by hand.
	want := p - 2
	require.Equal(t, want, got)
}

func TestAddModNearMax(t *testing.T) {
	p := uint64(1<<64-1) / 3
	m, err := New(p)
	require.NoError(t, err)
	a := p - 1
	b := p - 1
	got := m.Add(a, b)
	require.Equal(t, (a+b)%p, got)
}

func TestMultiplyModAgreesWithReference(t *testing.T) {
	m, err := New(97)
	require.NoError(t, err)
	for a := uint64(0); a < 97; a++ {
		for b := uint64(0); b < 97; b++ {
			require.Equal(t, (a*b)%97, m.Multiply(a, b))
		}
	}
}

func TestPowerModAgreesWithReference(t *testing.T) {
	m, err := New(104729)
	require.NoError(t, err)
	a := uint64(3)
	acc := uint64(1)
	for e := uint64(0); e <= 20; e++ {
		got, err := m.Power(a, e)
		require.NoError(t, err)
		require.Equal(t, acc, got, "3^%d mod p", e)
		acc = (acc * a) % 104729
	}
}

func TestPowerZeroToZeroIsDomainError(t *testing.T) {
	m, err := New(13)
	require.NoError(t, err)
	_, err = m.Power(0, 0)
	require.Error(t, err)
}

func TestInverseModP(t *testing.T) {
	m, err := New(13)
	require.NoError(t, err)
	for u := uint64(1); u < 13; u++ {
		inv, err := m.Inverse(u)
		require.NoError(t, err)
		require.Equal(t, uint64(1), m.Multiply(u, inv), "inverse of %d", u)
	}
}

func TestInverseNonUnitFails(t *testing.T) {
	m, err := New(12)
	require.NoError(t, err)
	_, err = m.Inverse(4)
	require.Error(t, err)
}

func TestIsPrimitiveRootSmallTable(t *testing.T) {
	m, err := New(7)
	require.NoError(t, err)
	ok, err := m.IsPrimitiveRoot(3, []uint64{2, 3})
	require.NoError(t, err)
	require.True(t, ok, "3 is a primitive root mod 7")
}

func TestIsPrimitiveRootRejectsEven(t *testing.T) {
	m, err := New(10)
	require.NoError(t, err)
	_, err = m.IsPrimitiveRoot(3, nil)
	require.Error(t, err, "expected rejection for even modulus > 2")
}

func TestGCD(t *testing.T) {
	require.Equal(t, uint64(6), GCD(48, 18))
}
