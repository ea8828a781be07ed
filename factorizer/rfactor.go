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
	"github.com/bfix/primpoly/errors"
)

// RResult bundles everything the primitivity oracle and driver need
// from one up-front factorization call: r = (p^n-1)/(p-1), its
// factorization, and the exact count of primitive polynomials of
// degree n mod p.
type RResult struct {
	Q             *bigint.Int    // p^n - 1
	QFactors      *Factorization // factorization of q
	R             *bigint.Int    // q / (p-1)
	RFactors      *Factorization // factorization of r
	PMinus1       *Factorization // factorization of p-1 (empty for p=2)
	NumPrimitives *bigint.Int    // count of primitive polynomials of degree n mod p
}

// FactorRAndCountPrimitives computes P = p^n, q = P-1, factors q, and
// derives r = q/(p-1) together with its factorization by subtracting
// the (always-dividing) factorization of p-1 from q's, prime by
// prime. It also counts the exact number of
// primitive polynomials of degree n mod p via
// Phi(q)/n = (q * prod(qi-1)) / (n * prod(qi)) over q's distinct primes.
func FactorRAndCountPrimitives(p, n uint64, tableDir string) (*RResult, error) {
	if p < 2 {
		return nil, errors.New(errors.UserInput, "p must be >= 2")
	}
	if n < 2 {
		return nil, errors.New(errors.UserInput, "n must be >= 2")
	}

	bigP := bigint.FromWord(p)
	capital, err := bigint.Power(bigP, n)
	if err != nil {
		return nil, err
	}
	q, err := capital.Sub(bigint.One())
	if err != nil {
		return nil, err
	}

	qFact, err := Factorize(q, tableDir, p, n)
	if err != nil {
		return nil, err
	}

	count, err := eulerTotientOverN(q, qFact, n)
	if err != nil {
		return nil, err
	}

	var pMinus1Fact *Factorization
	if p == 2 {
		pMinus1Fact = &Factorization{Residual: bigint.One(), Counts: &OperationCount{}}
	} else {
		pMinus1, err := bigP.Sub(bigint.One())
		if err != nil {
			return nil, err
		}
		pMinus1Fact, err = Factorize(pMinus1, tableDir, 0, 0)
		if err != nil {
			return nil, err
		}
	}

	rFactors, err := subtractFactorizations(qFact, pMinus1Fact)
	if err != nil {
		return nil, err
	}
	r, err := q.Div(mustProduct(pMinus1Fact))
	if err != nil {
		return nil, err
	}
	if prod, err := rFactors.Product(); err != nil {
		return nil, err
	} else if !prod.Equals(r) {
		return nil, errors.New(errors.Factor, "derived factorization of r disagrees with q/(p-1)")
	}

	return &RResult{
		Q:             q,
		QFactors:      qFact,
		R:             r,
		RFactors:      rFactors,
		PMinus1:       pMinus1Fact,
		NumPrimitives: count,
	}, nil
}

// mustProduct returns 1 for an empty factorization (p=2 case) or the
// verified product of its prime powers otherwise.
func mustProduct(f *Factorization) *bigint.Int {
	if len(f.Factors) == 0 {
		return bigint.One()
	}
	prod, err := f.Product()
	if err != nil {
		return bigint.One()
	}
	return prod
}

// subtractFactorizations returns the factorization of q / (p-1) given
// q's factorization and (p-1)'s, which always divides q: for each prime
// of q, look up its multiplicity in p-1 (zero if absent) and subtract
// it, keeping q-only primes at full multiplicity and dropping primes
// whose multiplicity reaches zero.
func subtractFactorizations(q, pMinus1 *Factorization) (*Factorization, error) {
	pmMult := make(map[string]uint64)
	for _, pf := range pMinus1.Factors {
		pmMult[pf.Prime.String()] = pf.Multiplicity
	}
	var out []PrimeFactor
	for _, pf := range q.Factors {
		sub := pmMult[pf.Prime.String()]
		if sub > pf.Multiplicity {
			return nil, errors.New(errors.Factor, "factorization of p-1 does not divide q at prime %s", pf.Prime)
		}
		if mult := pf.Multiplicity - sub; mult > 0 {
			out = append(out, PrimeFactor{Prime: pf.Prime, Multiplicity: mult})
		}
	}
	return &Factorization{Residual: bigint.One(), Factors: out, Counts: q.Counts}, nil
}

// eulerTotientOverN computes Phi(q)/n = (q * prod(qi-1)) / (n * prod(qi))
// over q's distinct primes qi, which counts the exact number of monic
// primitive polynomials of degree n mod p.
func eulerTotientOverN(q *bigint.Int, qFact *Factorization, n uint64) (*bigint.Int, error) {
	numerator := q.Clone()
	denominator := bigint.FromWord(n)
	for _, pf := range qFact.Factors {
		qiMinus1, err := pf.Prime.Sub(bigint.One())
		if err != nil {
			return nil, err
		}
		numerator = numerator.Mul(qiMinus1)
		denominator = denominator.Mul(pf.Prime)
	}
	result, err := numerator.Div(denominator)
	if err != nil {
		return nil, err
	}
	rem, err := numerator.Mod(denominator)
	if err != nil {
		return nil, err
	}
	if !rem.IsZero() {
		return nil, errors.New(errors.Factor, "Euler totient division left a remainder: Phi(q)/n must be exact")
	}
	return result, nil
}
