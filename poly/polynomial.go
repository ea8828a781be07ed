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

// Package poly implements dense polynomials over GF(p): construction,
// serialization, coefficient-wise addition and scalar multiplication,
// monic evaluation, and the monic-polynomial enumeration used to drive
// the primitivity search.
package poly

import (
	"fmt"
	"strings"

	"github.com/bfix/primpoly/errors"
)

// Polynomial is a degree-n polynomial over GF(p): coeffs[i] is the
// coefficient of x^i, 0 <= coeffs[i] < p. The zero polynomial is
// represented with degree 0 and coeffs = [0]; every other polynomial
// has a non-zero leading coefficient coeffs[degree].
type Polynomial struct {
	p      uint64
	coeffs []uint64
}

// New builds a Polynomial over GF(p) from a coefficient vector
// (index i = coefficient of x^i), reducing every coefficient mod p and
// trimming to canonical degree.
func New(p uint64, coeffs []uint64) (*Polynomial, error) {
	if p < 2 {
		return nil, errors.New(errors.UserInput, "modulus must be >= 2, got %d", p)
	}
	c := make([]uint64, len(coeffs))
	for i, v := range coeffs {
		c[i] = v % p
	}
	return &Polynomial{p: p, coeffs: trim(c)}, nil
}

func trim(c []uint64) []uint64 {
	n := len(c)
	for n > 1 && c[n-1] == 0 {
		n--
	}
	if n == 0 {
		return []uint64{0}
	}
	return c[:n]
}

// Modulus returns p.
func (f *Polynomial) Modulus() uint64 { return f.p }

// Degree returns the polynomial's degree (0 for the zero polynomial).
func (f *Polynomial) Degree() int { return len(f.coeffs) - 1 }

// Coeff returns the coefficient of x^i, or 0 if i exceeds the degree.
func (f *Polynomial) Coeff(i int) uint64 {
	if i < 0 || i >= len(f.coeffs) {
		return 0
	}
	return f.coeffs[i]
}

// SetCoeff sets the coefficient of x^i mod p, auto-extending the
// coefficient vector with zeros and recomputing the degree -- the
// indexed lvalue accessor described for Polynomial's lifecycle.
func (f *Polynomial) SetCoeff(i int, v uint64) error {
	if i < 0 {
		return errors.New(errors.InternalRange, "negative coefficient index %d", i)
	}
	for len(f.coeffs) <= i {
		f.coeffs = append(f.coeffs, 0)
	}
	f.coeffs[i] = v % f.p
	f.coeffs = trim(f.coeffs)
	return nil
}

// Clone returns an independent copy of f.
func (f *Polynomial) Clone() *Polynomial {
	c := make([]uint64, len(f.coeffs))
	copy(c, f.coeffs)
	return &Polynomial{p: f.p, coeffs: c}
}

// IsZero reports whether f is the zero polynomial.
func (f *Polynomial) IsZero() bool {
	return len(f.coeffs) == 1 && f.coeffs[0] == 0
}

// AddAssign implements += : coefficient-wise sum mod p over the larger
// of the two degrees, extending the receiver's coefficient vector with
// zeros as needed, then trimming.
func (f *Polynomial) AddAssign(g *Polynomial) error {
	if f.p != g.p {
		return errors.New(errors.ModularArithmetic, "cannot add polynomials over different moduli %d, %d", f.p, g.p)
	}
	for len(f.coeffs) < len(g.coeffs) {
		f.coeffs = append(f.coeffs, 0)
	}
	for i, v := range g.coeffs {
		f.coeffs[i] = (f.coeffs[i] + v) % f.p
	}
	f.coeffs = trim(f.coeffs)
	return nil
}

// ScaleAssign implements *=k : coefficient-wise multiply by scalar k,
// mod p.
func (f *Polynomial) ScaleAssign(k uint64) {
	k %= f.p
	for i := range f.coeffs {
		f.coeffs[i] = (f.coeffs[i] * k) % f.p
	}
	f.coeffs = trim(f.coeffs)
}

// EvalMonic evaluates f at integer x in [0, p-1] by Horner's rule,
// treating f as monic regardless of its actual leading coefficient:
// the coefficient of x^degree is taken to be 1.
// hasLinearFactor relies on this asymmetry with AddAssign/ScaleAssign.
func (f *Polynomial) EvalMonic(x uint64) uint64 {
	x %= f.p
	acc := uint64(1)
	n := f.Degree()
	for i := n - 1; i >= 0; i-- {
		acc = (acc*x + f.coeffs[i]) % f.p
	}
	return acc
}

// HasLinearFactor reports whether f (interpreted monic, see EvalMonic)
// vanishes at any x in [0, p-1].
func (f *Polynomial) HasLinearFactor() bool {
	for x := uint64(0); x < f.p; x++ {
		if f.EvalMonic(x) == 0 {
			return true
		}
	}
	return false
}

// IsInteger reports whether every coefficient of degree >= 1 is zero,
// i.e. f reduces to a constant.
func (f *Polynomial) IsInteger() bool {
	for i := 1; i < len(f.coeffs); i++ {
		if f.coeffs[i] != 0 {
			return false
		}
	}
	return true
}

// InitialTrialPoly returns x^n - 1 over GF(p): the first candidate in
// the monic-polynomial enumeration driven by NextTrialPoly.
func InitialTrialPoly(n int, p uint64) (*Polynomial, error) {
	if n < 1 {
		return nil, errors.New(errors.UserInput, "degree must be >= 1, got %d", n)
	}
	coeffs := make([]uint64, n+1)
	coeffs[n] = 1
	coeffs[0] = (p - 1) % p
	return New(p, coeffs)
}

// NextTrialPoly advances f in place to the next monic polynomial of
// the same degree mod p: treat coeffs[0..n-1] as a base-p numeral
// (least-significant first) and add 1, propagating carries up to but
// not past index n-1, so the leading coefficient stays 1; a carry out
// of index n-1 is dropped, wrapping around to x^n. Starting from
// InitialTrialPoly (x^n - 1), the next p^n - 1 calls visit every other
// monic polynomial of degree n mod p exactly once; the call after that,
// whose result would be x^n - 1 again, leaves f unchanged and reports
// exhaustion.
func (f *Polynomial) NextTrialPoly() error {
	n := f.Degree()
	for len(f.coeffs) <= n {
		f.coeffs = append(f.coeffs, 0)
	}
	last := f.coeffs[0] == f.p-2
	for j := 1; j < n && last; j++ {
		last = f.coeffs[j] == 0
	}
	if last {
		return errors.New(errors.InternalRange, "monic polynomial enumeration exhausted for degree %d", n)
	}
	i := 0
	for i < n {
		f.coeffs[i]++
		if f.coeffs[i] < f.p {
			break
		}
		f.coeffs[i] = 0
		i++
	}
	return nil
}

// String renders f in the canonical textual form: terms high to low
// degree, coefficient 1 suppressed except on the constant term, joined
// by " + ", followed by ", p".
func (f *Polynomial) String() string {
	var terms []string
	n := f.Degree()
	for i := n; i >= 0; i-- {
		c := f.coeffs[i]
		if c == 0 && !(i == 0 && n == 0) {
			continue
		}
		switch {
		case i == 0:
			terms = append(terms, fmt.Sprintf("%d", c))
		case i == 1:
			if c == 1 {
				terms = append(terms, "x")
			} else {
				terms = append(terms, fmt.Sprintf("%d x", c))
			}
		default:
			if c == 1 {
				terms = append(terms, fmt.Sprintf("x ^ %d", i))
			} else {
				terms = append(terms, fmt.Sprintf("%d x ^ %d", c, i))
			}
		}
	}
	return strings.Join(terms, " + ") + fmt.Sprintf(", %d", f.p)
}
