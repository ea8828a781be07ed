package cliparser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFindOnePositional(t *testing.T) {
	a, err := Parse([]string{"2", "4"})
	require.NoError(t, err)
	require.EqualValues(t, 2, a.P)
	require.Equal(t, 4, a.N)
	require.False(t, a.ListAll)
	require.False(t, a.Test)
}

func TestParseConcatenatedFlags(t *testing.T) {
	a, err := Parse([]string{"-sc", "13", "19"})
	require.NoError(t, err)
	require.True(t, a.PrintCounts)
	require.True(t, a.SlowConfirm)
	require.EqualValues(t, 13, a.P)
	require.Equal(t, 19, a.N)
}

func TestParseTestFlag(t *testing.T) {
	a, err := Parse([]string{"-t", "x^4 + x + 1, 2"})
	require.NoError(t, err)
	require.True(t, a.Test)
	require.Equal(t, "x^4 + x + 1, 2", a.PolyString)
}

func TestParseHelp(t *testing.T) {
	a, err := Parse([]string{"-h"})
	require.NoError(t, err)
	require.True(t, a.Help)
}

func TestParseRejectsNonPrimeP(t *testing.T) {
	_, err := Parse([]string{"4", "4"})
	require.Error(t, err, "expected an error for non-prime p=4")
}

func TestParseRejectsDegreeBelowTwo(t *testing.T) {
	_, err := Parse([]string{"2", "1"})
	require.Error(t, err, "expected an error for n=1")
}

func TestParseRejectsUnknownFlag(t *testing.T) {
	_, err := Parse([]string{"-z", "2", "4"})
	require.Error(t, err, "expected an error for an unrecognised flag")
}
