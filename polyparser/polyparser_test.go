package polyparser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCanonicalForm(t *testing.T) {
	f, err := Parse("x^4 + x + 1, 2")
	require.NoError(t, err)
	require.Equal(t, "x ^ 4 + x + 1, 2", f.String())
}

func TestParseDefaultsModulusToTwo(t *testing.T) {
	f, err := Parse("x + 1")
	require.NoError(t, err)
	require.Equal(t, uint64(2), f.Modulus())
}

func TestParseDefaultsPowerAndMultiplier(t *testing.T) {
	f, err := Parse("x^4 + x^2 + 2x + 3, 5")
	require.NoError(t, err)
	require.Equal(t, "x ^ 4 + x ^ 2 + 2 x + 3, 5", f.String())
}

func TestParseRejectsNegativeCoefficient(t *testing.T) {
	_, err := Parse("x^3 - 3, 5")
	require.Error(t, err, "expected an error for a negative coefficient")
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("x^3 & 3, 5")
	require.Error(t, err, "expected an error for an unrecognised character")
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := Parse("x + 1, 2 garbage")
	require.Error(t, err, "expected an error for trailing input")
}
