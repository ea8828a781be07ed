package polymod

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfix/primpoly/bigint"
	"github.com/bfix/primpoly/poly"
)

func TestPowerOfXIdentityAtExponentZero(t *testing.T) {
	f, err := poly.New(2, []uint64{1, 1, 0, 0, 1}) // x^4+x+1
	require.NoError(t, err)
	pm, err := NewModulus(f)
	require.NoError(t, err)
	got, err := PowerOfX(pm, bigint.Zero())
	require.NoError(t, err)
	require.True(t, got.IsInteger())
	require.Equal(t, uint64(1), got.Coeff(0))
}

func TestPowerOfXMatchesRepeatedSquaring(t *testing.T) {
	f, err := poly.New(2, []uint64{1, 1, 0, 0, 1}) // x^4+x+1
	require.NoError(t, err)
	pm, err := NewModulus(f)
	require.NoError(t, err)

	// x^15 mod f should be 1 for this primitive polynomial (order
	// 2^4-1 = 15).
	got, err := PowerOfX(pm, bigint.FromWord(15))
	require.NoError(t, err)
	require.True(t, got.IsInteger())
	require.Equal(t, uint64(1), got.Coeff(0))

	// x^5 mod f should not be an integer.
	got5, err := PowerOfX(pm, bigint.FromWord(5))
	require.NoError(t, err)
	require.False(t, got5.IsInteger())
}

func TestTimesXAndSquareAgree(t *testing.T) {
	f, err := poly.New(5, []uint64{3, 2, 1, 0, 1}) // x^4+x^2+2x+3 mod 5
	require.NoError(t, err)
	pm, err := NewModulus(f)
	require.NoError(t, err)
	x, err := poly.New(5, []uint64{0, 1})
	require.NoError(t, err)
	require.NoError(t, pm.Set(x))
	// x^2 via square should equal x*x via two TimesX calls from 1.
	require.NoError(t, pm.Square())
	viaSquare := pm.Get()

	one, err := poly.New(5, []uint64{1})
	require.NoError(t, err)
	pm2, err := NewModulus(f)
	require.NoError(t, err)
	require.NoError(t, pm2.Set(one))
	pm2.TimesX()
	pm2.TimesX()
	viaShift := pm2.Get()

	require.Equal(t, viaShift.String(), viaSquare.String())
}
