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

// Package modarith provides carry-safe modular arithmetic on native
// machine words: operands may approach the word maximum, so every
// primitive here avoids intermediate values that could overflow a
// uint64 rather than widening to a bigger integer type.
package modarith

import "github.com/bfix/primpoly/errors"

// Modulus bundles a fixed modulus p with the operations defined over
// it, following the "functor owns its modulus" re-architecture: callers
// construct one Modulus per p and thread it explicitly instead of
// relying on free functions that take p every time.
type Modulus struct {
	p uint64
}

// New constructs a Modulus for p. p must be positive.
func New(p uint64) (*Modulus, error) {
	if p == 0 {
		return nil, errors.New(errors.ModularArithmetic, "modulus must be positive")
	}
	return &Modulus{p: p}, nil
}

// P returns the modulus value.
func (m *Modulus) P() uint64 { return m.p }

// Reduce returns n mod p, always landing in [0, p).
func Reduce(n int64, p uint64) (uint64, error) {
	if p == 0 {
		return 0, errors.New(errors.ModularArithmetic, "modulus must be positive")
	}
	r := n % int64(p)
	if r < 0 {
		r += int64(p)
	}
	return uint64(r), nil
}

// Add returns (a+b) mod p. The sum a+b is computed in native uint64
// arithmetic; if it wraps past the word maximum, the wrapped value c
// satisfies c < a (equivalently c < b), and discarding 2^64 is
// equivalent to subtracting p from the true sum once more than a
// plain reduction would -- so the carry case corrects by subtracting p
// from the wrapped value directly.
func (m *Modulus) Add(a, b uint64) uint64 {
	a %= m.p
	b %= m.p
	c := a + b
	if c < a || c < b {
		return c - m.p
	}
	return c % m.p
}

// TimesTwo returns (2*a) mod p using the same carry-discard trick as
// Add: shifting left by one bit is multiplication by two, and the
// pre-shift high bit signals the overflow that Add's carry branch
// handles explicitly.
func (m *Modulus) TimesTwo(a uint64) uint64 {
	a %= m.p
	highBit := a>>63 == 1
	c := a << 1
	if highBit {
		return c - m.p
	}
	return c % m.p
}

// Multiply returns (a*b) mod p via a Horner scan over the bits of b,
// combining TimesTwo and Add so that no intermediate product needs to
// be wider than a uint64.
func (m *Modulus) Multiply(a, b uint64) uint64 {
	a %= m.p
	b %= m.p
	var result uint64
	top := bitLen(b)
	for k := top - 1; k >= 0; k-- {
		result = m.TimesTwo(result)
		if (b>>uint(k))&1 == 1 {
			result = m.Add(result, a)
		}
	}
	return result
}

func bitLen(n uint64) int {
	l := 0
	for n > 0 {
		l++
		n >>= 1
	}
	return l
}

// Power returns (a^e) mod p via binary exponentiation, switching to
// the word-safe Multiply on every squaring and product. Rejects a < 0
// is not representable (a is unsigned), e undefined is impossible
// here; 0^0 is a domain violation.
func (m *Modulus) Power(a, e uint64) (uint64, error) {
	if m.p <= 1 {
		return 0, errors.New(errors.ModularArithmetic, "modulus must exceed 1")
	}
	if e == 0 {
		if a%m.p == 0 {
			return 0, errors.New(errors.Domain, "0^0 is undefined")
		}
		return 1, nil
	}
	result := uint64(1)
	base := a % m.p
	top := bitLen(e) - 1
	for k := top; k >= 0; k-- {
		result = m.Multiply(result, result)
		if (e>>uint(k))&1 == 1 {
			result = m.Multiply(result, base)
		}
	}
	return result, nil
}

// Inverse returns u1 such that u*u1 = 1 (mod p), found via the
// extended Euclidean algorithm on (u, p). Self-checks the result and
// fails if u is not a unit mod p.
func (m *Modulus) Inverse(u uint64) (uint64, error) {
	u %= m.p
	if u == 0 {
		return 0, errors.New(errors.ModularArithmetic, "0 has no inverse mod %d", m.p)
	}
	oldR, r := int64(u), int64(m.p)
	oldS, s := int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, errors.New(errors.ModularArithmetic, "%d is not invertible mod %d", u, m.p)
	}
	inv := oldS % int64(m.p)
	if inv < 0 {
		inv += int64(m.p)
	}
	if m.Multiply(u, uint64(inv)) != 1 {
		return 0, errors.New(errors.ModularArithmetic, "inverse self-check failed for %d mod %d", u, m.p)
	}
	return uint64(inv), nil
}

// smallPrimitiveRoots special-cases the tiny primes named in the
// primitivity oracle's constant-coefficient filter, avoiding a
// factorization of p-1 for the handful of moduli exercised on every
// call. Each prime has several primitive roots, not one, so every
// member of the set must be tried.
var smallPrimitiveRoots = map[uint64][]uint64{
	2:  {1},
	3:  {2},
	5:  {2, 3},
	7:  {3, 5},
	11: {2, 6, 7, 8},
	13: {2, 6, 7, 11},
}

// IsPrimitiveRoot reports whether a generates the multiplicative group
// mod p, i.e. whether a^((p-1)/q) != 1 (mod p) for every distinct
// prime divisor q of p-1. primeFactorsOfPMinus1 supplies those
// divisors (the caller already has them from factoring r = (p^n-1)/(p-1),
// whose prime factors coincide with those dividing p-1 on exactly the
// divisors shared between r and p-1 -- but the oracle always calls
// this with the full factorization of p-1 itself). Rejects even p > 2.
func (m *Modulus) IsPrimitiveRoot(a uint64, distinctPrimeFactorsOfPMinus1 []uint64) (bool, error) {
	p := m.p
	if p != 2 && p%2 == 0 {
		return false, errors.New(errors.ModularArithmetic, "%d is even and not 2: no primitive root test defined", p)
	}
	if roots, ok := smallPrimitiveRoots[p]; ok {
		ar := a % p
		for _, root := range roots {
			if ar == root {
				return true, nil
			}
		}
		return false, nil
	}
	a %= p
	if a == 0 {
		return false, nil
	}
	for _, q := range distinctPrimeFactorsOfPMinus1 {
		e := (p - 1) / q
		v, err := m.Power(a, e)
		if err != nil {
			return false, err
		}
		if v == 1 {
			return false, nil
		}
	}
	return true, nil
}

// GCD computes the greatest common divisor of u and v via Euclid's
// algorithm: r := u mod v; u := v; v := r; until v = 0.
func GCD(u, v uint64) uint64 {
	for v != 0 {
		u, v = v, u%v
	}
	return u
}
