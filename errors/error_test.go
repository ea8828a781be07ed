//----------------------------------------------------------------------
// This file is part of Primpoly.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Primpoly is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Primpoly is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL-3.0-or-later
//----------------------------------------------------------------------

package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitCodeUserInputIsThree(t *testing.T) {
	require.Equal(t, 3, UserInput.ExitCode())
}

func TestExitCodeNonUserInputIsFour(t *testing.T) {
	for _, k := range []Kind{
		InternalRange, Overflow, Underflow, ZeroDivide,
		Domain, ModularArithmetic, Factor, ConfirmationMismatch, Memory,
	} {
		require.Equal(t, 4, k.ExitCode(), "kind %s", k.String())
	}
}

func TestKindStringNamesEveryKind(t *testing.T) {
	cases := map[Kind]string{
		UserInput:            "UserInputError",
		InternalRange:        "InternalRangeError",
		Overflow:             "OverflowError",
		Underflow:            "UnderflowError",
		ZeroDivide:           "ZeroDivideError",
		Domain:               "DomainError",
		ModularArithmetic:    "ModularArithmeticError",
		Factor:               "FactorError",
		ConfirmationMismatch: "ConfirmationMismatchError",
		Memory:               "MemoryError",
	}
	for k, want := range cases {
		require.Equal(t, want, k.String())
	}
}

func TestNewFormatsContext(t *testing.T) {
	err := New(Factor, "entry for n=%d not found", 42)
	require.Equal(t, "FactorError: entry for n=42 not found", err.Error())
	require.Equal(t, 4, err.ExitCode())
}

func TestIsMatchesKindOfTypedError(t *testing.T) {
	err := New(UserInput, "p=%d is not prime", 4)
	require.True(t, Is(err, UserInput))
	require.False(t, Is(err, Factor))
}

func TestIsRejectsUntypedError(t *testing.T) {
	require.False(t, Is(plainError("plain failure"), UserInput))
}

// plainError is a bare error value (not *Error) so Is can be exercised
// against something outside the typed taxonomy.
type plainError string

func (p plainError) Error() string { return string(p) }
