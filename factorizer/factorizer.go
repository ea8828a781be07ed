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
	"github.com/bfix/primpoly/bigint"
	"github.com/bfix/primpoly/logger"
)

// pollardRhoRestartC is tried whenever the first attempt, with
// constant 2, fails to find a factor -- chosen outside {0, 1, -2} per
// the cascade's restart rule, since those three constants degenerate
// Brent's walk.
const pollardRhoRestartC = 7

// Factorize decomposes n into its prime factors using the automatic
// cascade: a Cunningham table lookup for base p exponent deg first (if
// tableDir/p/deg identify a published table), then Pollard rho with
// c=2, then Pollard rho with a fresh c, then guaranteed trial division.
// p and deg are advisory -- they only enable the table lookup fast
// path; the remaining algorithms need only n itself.
func Factorize(n *bigint.Int, tableDir string, p, deg uint64) (*Factorization, error) {
	counts := &OperationCount{}

	if fz, ok, err := lookupTable(tableDir, p, deg, n, counts); err != nil {
		return nil, err
	} else if ok {
		logger.Printf(logger.TRACE, "factorization of %s resolved via Cunningham table c%dminus", n, p)
		return fz, nil
	}

	ok, err := IsAlmostSurelyPrime(n)
	counts.PrimalityTests++
	if err != nil {
		return nil, err
	}
	if ok {
		return newFromRawFactors(n, []*bigint.Int{n}, counts)
	}

	if factor, found, err := pollardRho(n, 2); err != nil {
		return nil, err
	} else if found {
		logger.Printf(logger.TRACE, "Pollard rho (c=2) split %s -> %s", n, factor)
		return decomposeAround(n, factor, tableDir, p, deg, counts)
	}

	if factor, found, err := pollardRho(n, pollardRhoRestartC); err != nil {
		return nil, err
	} else if found {
		logger.Printf(logger.TRACE, "Pollard rho (c=%d) split %s -> %s", pollardRhoRestartC, n, factor)
		return decomposeAround(n, factor, tableDir, p, deg, counts)
	}

	logger.Printf(logger.TRACE, "falling back to trial division for %s", n)
	raw := trialDivision(n, counts)
	return newFromRawFactors(n, raw, counts)
}

// decomposeAround recursively factors both sides of an n = factor *
// (n/factor) split found by Pollard rho, then merges the two results.
func decomposeAround(n, factor *bigint.Int, tableDir string, p, deg uint64, counts *OperationCount) (*Factorization, error) {
	cofactor, err := n.Div(factor)
	if err != nil {
		return nil, err
	}
	left, err := Factorize(factor, tableDir, p, deg)
	if err != nil {
		return nil, err
	}
	right, err := Factorize(cofactor, tableDir, p, deg)
	if err != nil {
		return nil, err
	}
	var raw []*bigint.Int
	for _, pf := range left.Factors {
		for i := uint64(0); i < pf.Multiplicity; i++ {
			raw = append(raw, pf.Prime)
		}
	}
	for _, pf := range right.Factors {
		for i := uint64(0); i < pf.Multiplicity; i++ {
			raw = append(raw, pf.Prime)
		}
	}
	counts.GCDs += left.Counts.GCDs + right.Counts.GCDs
	counts.TrialDivisions += left.Counts.TrialDivisions + right.Counts.TrialDivisions
	counts.PrimalityTests += left.Counts.PrimalityTests + right.Counts.PrimalityTests
	return newFromRawFactors(n, raw, counts)
}
