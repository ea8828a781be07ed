package cunningham

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixture = `Cunningham table for base 2, minus side.
some preamble comment
 n   #Fac  Factorisation
4   2   3.5
5   1   31
6   3   3^2.7
7   + incomplete.entry
8   2   3.5.\
17
`

func TestReadEntrySimple(t *testing.T) {
	e, err := ReadEntry(strings.NewReader(fixture), 4)
	require.NoError(t, err)
	require.Len(t, e.Factors, 2)
	require.Equal(t, "3", e.Factors[0].Base.String())
	require.Equal(t, "5", e.Factors[1].Base.String())
}

func TestReadEntryWithExponent(t *testing.T) {
	e, err := ReadEntry(strings.NewReader(fixture), 6)
	require.NoError(t, err)
	require.Len(t, e.Factors, 2)
	require.EqualValues(t, 2, e.Factors[0].Exp)
	require.EqualValues(t, 1, e.Factors[1].Exp)
}

func TestReadEntrySkipsIncomplete(t *testing.T) {
	_, err := ReadEntry(strings.NewReader(fixture), 7)
	require.Error(t, err, "expected an incomplete entry to be unmatched")
}

func TestReadEntryBackslashContinuation(t *testing.T) {
	e, err := ReadEntry(strings.NewReader(fixture), 8)
	require.NoError(t, err)
	require.Len(t, e.Factors, 3)
	require.Equal(t, "17", e.Factors[2].Base.String())
}

func TestReadEntryMissingReturnsFactorError(t *testing.T) {
	_, err := ReadEntry(strings.NewReader(fixture), 999)
	require.Error(t, err, "expected a FactorError for a missing entry")
}

func TestFilename(t *testing.T) {
	require.Equal(t, "c2minus.txt", Filename(2))
}
