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

// Package factorizer decomposes large integers of the shape (p^n-1)/(p-1)
// into their prime factors through a layered pipeline: a Cunningham
// table lookup first, then Pollard rho with Brent's cycle detection,
// and guaranteed trial division as the fallback of last resort.
package factorizer

import (
	"sort"

	"github.com/bfix/primpoly/bigint"
	"github.com/bfix/primpoly/errors"
)

// PrimeFactor is an ordered pair (prime, multiplicity), multiplicity >= 1.
type PrimeFactor struct {
	Prime        *bigint.Int
	Multiplicity uint64
}

// OperationCount records the counters reported by -s: candidate
// polynomials tested and how many survived each oracle filter, plus
// the primality and factoring work spent getting there.
type OperationCount struct {
	PolysTested    uint64
	GCDs           uint64
	PrimalityTests uint64
	Squarings      uint64
	TrialDivisions uint64
	PassedFilter   [6]uint64 // index i = filter i+1 passes (see oracle package)
}

// Factorization owns the residual unfactored value (always 1 once
// complete), the ordered, duplicate-free list of prime factors sorted
// by ascending prime, and a running OperationCount shared with the
// caller that requested the factorization.
type Factorization struct {
	Residual *bigint.Int
	Factors  []PrimeFactor
	Counts   *OperationCount
}

// DistinctPrimes returns the sorted list of distinct prime factors.
func (f *Factorization) DistinctPrimes() []*bigint.Int {
	out := make([]*bigint.Int, len(f.Factors))
	for i, pf := range f.Factors {
		out[i] = pf.Prime
	}
	return out
}

// Product recomputes prod(prime^multiplicity) to verify a Factorization
// against its original input.
func (f *Factorization) Product() (*bigint.Int, error) {
	prod := bigint.One()
	for _, pf := range f.Factors {
		term, err := bigint.Power(pf.Prime, pf.Multiplicity)
		if err != nil {
			return nil, err
		}
		prod = prod.Mul(term)
	}
	return prod, nil
}

// newFromRawFactors sorts a possibly-unordered, possibly-duplicated
// list of single-multiplicity prime factors into canonical form: merge
// duplicates into prime^count, drop prime==1 or count==0 entries,
// verify every surviving prime is almost-surely-prime, and verify the
// product equals original.
func newFromRawFactors(original *bigint.Int, raw []*bigint.Int, counts *OperationCount) (*Factorization, error) {
	sort.Slice(raw, func(i, j int) bool { return raw[i].Cmp(raw[j]) < 0 })

	var merged []PrimeFactor
	for _, p := range raw {
		if p.Equals(bigint.One()) {
			continue
		}
		if len(merged) > 0 && merged[len(merged)-1].Prime.Equals(p) {
			merged[len(merged)-1].Multiplicity++
			continue
		}
		merged = append(merged, PrimeFactor{Prime: p, Multiplicity: 1})
	}

	for _, pf := range merged {
		if pf.Multiplicity == 0 {
			continue
		}
		ok, err := IsAlmostSurelyPrime(pf.Prime)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.New(errors.Factor, "factor %s is not almost-surely-prime", pf.Prime)
		}
	}

	f := &Factorization{Residual: bigint.One(), Factors: merged, Counts: counts}
	prod, err := f.Product()
	if err != nil {
		return nil, err
	}
	if !prod.Equals(original) {
		return nil, errors.New(errors.Factor, "product of factors %s disagrees with input %s", prod, original)
	}
	return f, nil
}
