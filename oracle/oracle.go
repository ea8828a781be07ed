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

// Package oracle implements the primitivity decision procedure: a
// sequence of fast filters culminating in the x^r and x^(r/qi) tests,
// backed by a Berlekamp Q-matrix nullity check that disqualifies any
// polynomial with more than one distinct irreducible factor.
package oracle

import (
	"github.com/bfix/primpoly/bigint"
	"github.com/bfix/primpoly/errors"
	"github.com/bfix/primpoly/factorizer"
	"github.com/bfix/primpoly/modarith"
	"github.com/bfix/primpoly/poly"
	"github.com/bfix/primpoly/polymod"
)

// Oracle decides primitivity for monic polynomials of a fixed degree n
// mod a fixed prime p. Construction factors r = (p^n-1)/(p-1) once up
// front; every subsequent IsPrimitive call reuses that factorization.
type Oracle struct {
	p       uint64
	n       int
	result  *factorizer.RResult
	pMinus1 []uint64 // distinct prime factors of p-1
	counts  *factorizer.OperationCount
}

// New constructs an Oracle for degree n mod p, looking up Cunningham
// tables under tableDir if present.
func New(p uint64, n int, tableDir string) (*Oracle, error) {
	res, err := factorizer.FactorRAndCountPrimitives(p, uint64(n), tableDir)
	if err != nil {
		return nil, err
	}
	pm1 := make([]uint64, 0, len(res.PMinus1.Factors))
	for _, pf := range res.PMinus1.Factors {
		v, ok := bigint.ToUint64(pf.Prime)
		if !ok {
			return nil, errors.New(errors.InternalRange, "prime factor of p-1 too large for a machine word")
		}
		pm1 = append(pm1, v)
	}
	return &Oracle{p: p, n: n, result: res, pMinus1: pm1, counts: res.QFactors.Counts}, nil
}

// R returns the factored integer r = (p^n-1)/(p-1) driving the oracle.
func (o *Oracle) R() *factorizer.RResult { return o.result }

// Counts returns the shared operation-count record, updated as
// IsPrimitive runs its filters.
func (o *Oracle) Counts() *factorizer.OperationCount { return o.counts }

// IsPrimitive runs the six-filter decision procedure against f,
// returning true iff f is a primitive polynomial of degree n mod p.
func (o *Oracle) IsPrimitive(f *poly.Polynomial) (bool, error) {
	o.counts.PolysTested++

	// Filter 1: the constant coefficient, signed by (-1)^n, must be a
	// primitive root of p.
	c := signedConstant(f, o.p)
	m, err := modarith.New(o.p)
	if err != nil {
		return false, err
	}
	isPrimRoot, err := m.IsPrimitiveRoot(c, o.pMinus1)
	if err != nil {
		return false, err
	}
	if !isPrimRoot {
		return false, nil
	}
	o.counts.PassedFilter[0]++

	// Filter 2: no linear factors.
	if f.HasLinearFactor() {
		return false, nil
	}
	o.counts.PassedFilter[1]++

	// Filter 3: Berlekamp Q-matrix nullity must be < 2 (at most one
	// distinct irreducible factor).
	nullity, err := qMatrixNullity(f, o.p, o.n)
	if err != nil {
		return false, err
	}
	if nullity >= 2 {
		return false, nil
	}
	o.counts.PassedFilter[2]++

	// Filter 4: x^r mod (f,p) must be an integer a != 0.
	pm, err := polymod.NewModulus(f)
	if err != nil {
		return false, err
	}
	xr, err := polymod.PowerOfX(pm, o.result.R)
	if err != nil {
		return false, err
	}
	if !xr.IsInteger() {
		return false, nil
	}
	a := xr.Coeff(0)
	if a == 0 {
		return false, nil
	}
	o.counts.PassedFilter[3]++

	// Filter 5: a must agree with the signed constant coefficient.
	if (a+o.p-c%o.p)%o.p != 0 {
		return false, nil
	}
	o.counts.PassedFilter[4]++

	// Filter 6: for every distinct prime qi of r not dividing p-1,
	// x^(r/qi) mod (f,p) must NOT be an integer. This is sound by
	// Fermat's little theorem applied to the cyclic subgroup generated
	// by GF(p)* inside GF(p^n)*: constants already have order dividing
	// p-1, so any qi dividing p-1 can never be the missing factor of
	// x's order and the check is redundant for it.
	for _, qi := range o.result.RFactors.Factors {
		qiVal, ok := bigint.ToUint64(qi.Prime)
		dividesP1 := ok && (o.p-1)%qiVal == 0
		if ok && dividesP1 {
			continue
		}
		rOverQi, err := o.result.R.Div(qi.Prime)
		if err != nil {
			return false, err
		}
		xk, err := polymod.PowerOfX(pm, rOverQi)
		if err != nil {
			return false, err
		}
		o.counts.Squarings++
		if xk.IsInteger() {
			return false, nil
		}
	}
	o.counts.PassedFilter[5]++

	return true, nil
}

// signedConstant returns (-1)^n * f[0] mod p: for odd n this negates
// f[0] mod p, for even n it passes f[0] through unchanged.
func signedConstant(f *poly.Polynomial, p uint64) uint64 {
	c0 := f.Coeff(0)
	if f.Degree()%2 == 0 {
		return c0
	}
	if c0 == 0 {
		return 0
	}
	return p - c0
}
