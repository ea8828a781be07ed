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

package factorizer

import (
	"slices"

	"github.com/bfix/primpoly/bigint"
	"github.com/bfix/primpoly/cunningham"
	"github.com/bfix/primpoly/errors"
)

// lookupTable tries the Cunningham table for base p, entry n, first in
// the factorization cascade. It returns ok=false (not an error)
// whenever the table is simply absent or silent on this n -- only a
// present-but-inconsistent entry is a hard FactorError.
func lookupTable(tableDir string, p, n uint64, target *bigint.Int, counts *OperationCount) (*Factorization, bool, error) {
	if !slices.Contains(cunningham.SupportedBases, p) {
		return nil, false, nil
	}
	f, err := cunningham.Open(tableDir, p)
	if err != nil {
		return nil, false, nil
	}
	defer f.Close()

	entry, err := cunningham.ReadEntry(f, n)
	if err != nil {
		return nil, false, nil
	}
	fz, err := entryToFactorization(entry, target, counts)
	if err != nil {
		return nil, false, err
	}
	return fz, true, nil
}

// entryToFactorization expands a parsed table Entry into a
// Factorization, verifying the product equals target and every base
// is prime -- the parse contract §4.8 requires both before trusting a
// published table.
func entryToFactorization(e *cunningham.Entry, target *bigint.Int, counts *OperationCount) (*Factorization, error) {
	var raw []*bigint.Int
	for _, term := range e.Factors {
		for i := uint64(0); i < term.Exp; i++ {
			raw = append(raw, term.Base)
		}
	}
	fz, err := newFromRawFactors(target, raw, counts)
	if err != nil {
		return nil, errors.New(errors.Factor, "Cunningham table entry n=%d inconsistent: %v", e.N, err)
	}
	return fz, nil
}
