package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustFromString(t *testing.T, s string) *Int {
	t.Helper()
	v, err := FromString(s)
	require.NoError(t, err, "FromString(%q)", s)
	return v
}

func TestDecimalRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "9", "10", "12345678901234567890123456789"}
	for _, c := range cases {
		v := mustFromString(t, c)
		require.Equal(t, c, v.String())
	}
}

func TestAddSub(t *testing.T) {
	a := mustFromString(t, "3141592653589793238462643383279")
	b := mustFromString(t, "2718281828459045")
	sum := a.Add(b)
	back, err := sum.Sub(b)
	require.NoError(t, err)
	require.True(t, back.Equals(a), "a+b-b = %s, want %s", back, a)
}

func TestMulDiv(t *testing.T) {
	a := mustFromString(t, "3141592653589793238462643383279")
	b := mustFromString(t, "2718281828459045")
	prod := a.Mul(b)
	q, err := prod.Div(b)
	require.NoError(t, err)
	require.True(t, q.Equals(a), "a*b/b = %s, want %s", q, a)
}

func TestDivModKnuthExample(t *testing.T) {
	u := mustFromString(t, "398765")
	v := mustFromString(t, "3457")
	q, r, err := u.DivMod(v)
	require.NoError(t, err)
	require.Equal(t, "115", q.String())
	require.Equal(t, "1210", r.String())
}

func TestSubUnderflow(t *testing.T) {
	a := mustFromString(t, "1")
	b := mustFromString(t, "2")
	_, err := a.Sub(b)
	require.Error(t, err)
}

func TestDivModZeroDivide(t *testing.T) {
	a := mustFromString(t, "5")
	_, _, err := a.DivMod(Zero())
	require.Error(t, err)
}

func TestCeilLg(t *testing.T) {
	require.Equal(t, 3, FromWord(6).CeilLg())
}

func TestPowerOf2To100(t *testing.T) {
	got, err := Power(FromWord(2), 100)
	require.NoError(t, err)
	want := mustFromString(t, "1267650600228229401496703205376")
	require.True(t, got.Equals(want), "2^100 = %s, want %s", got, want)
}

func TestPowerDomainError(t *testing.T) {
	_, err := Power(Zero(), 0)
	require.Error(t, err, "expected domain error for 0^0")
}

func TestPowerZeroExponent(t *testing.T) {
	got, err := Power(FromWord(5), 0)
	require.NoError(t, err)
	require.True(t, got.Equals(One()), "5^0 = %s, want 1", got)
}

func TestCmp(t *testing.T) {
	a := FromWord(100)
	b := FromWord(200)
	require.True(t, a.Cmp(b) < 0, "100 should be < 200")
	require.True(t, b.Cmp(a) > 0, "200 should be > 100")
	require.Equal(t, 0, a.Cmp(a.clone()), "equal values should compare 0")
}

func TestFromStringRejectsNonDecimal(t *testing.T) {
	_, err := FromString("12x3")
	require.Error(t, err, "expected error for non-decimal character")
}
