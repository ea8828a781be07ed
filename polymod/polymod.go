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

// Package polymod implements arithmetic on polynomials reduced modulo
// a fixed monic modulus f(x) over GF(p): a precomputed power-of-x
// reduction table, squaring and multiplication via convolution, and
// repeated-squaring exponentiation of x to very large exponents.
package polymod

import (
	"github.com/bfix/primpoly/bigint"
	"github.com/bfix/primpoly/errors"
	"github.com/bfix/primpoly/poly"
)

// PolyMod is a polynomial g reduced modulo a fixed monic modulus f of
// degree n over GF(p): deg(g) < n always holds after construction.
// The power table is owned by, and rebuilt only when, f changes --
// each PolyMod owns its own table rather than sharing one across
// instances built from different moduli.
type PolyMod struct {
	f     *poly.Polynomial // monic modulus, degree n
	p     uint64
	n     int
	g     *poly.Polynomial // representative, deg(g) < n
	table []*poly.Polynomial // table[i] = x^(n+i) mod (f,p), 0 <= i <= n-2
}

// NewModulus builds the power table for monic modulus f (degree n,
// over GF(p)) with representative initialized to x. A modulus of
// degree below 2 is rejected.
func NewModulus(f *poly.Polynomial) (*PolyMod, error) {
	if f.Coeff(f.Degree()) != 1 {
		return nil, errors.New(errors.UserInput, "PolyMod requires a monic modulus")
	}
	n := f.Degree()
	if n < 2 {
		return nil, errors.New(errors.UserInput, "PolyMod requires a modulus of degree >= 2, got %d", n)
	}
	p := f.Modulus()

	table, err := buildPowerTable(f, n, p)
	if err != nil {
		return nil, err
	}

	g, err := poly.New(p, []uint64{0, 1})
	if err != nil {
		return nil, err
	}
	pm := &PolyMod{f: f, p: p, n: n, g: g, table: table}
	pm.reduceG()
	return pm, nil
}

// buildPowerTable computes T[i] = x^(n+i) mod (f,p) for i=0..n-2,
// starting from t(x) = x^(n-1) and repeatedly multiplying by x: when
// the shift pushes a non-zero coefficient into position n, use the
// monic relation x^n = -(f[0] + f[1]x + ... + f[n-1]x^(n-1)) to fold it
// back into degree < n.
func buildPowerTable(f *poly.Polynomial, n int, p uint64) ([]*poly.Polynomial, error) {
	if n < 2 {
		return nil, nil
	}
	t, err := poly.New(p, powerOfXCoeffs(n-1))
	if err != nil {
		return nil, err
	}
	table := make([]*poly.Polynomial, n-1)
	for i := 0; i < n-1; i++ {
		t, err = timesXGeneric(t, f, n, p)
		if err != nil {
			return nil, err
		}
		table[i] = t.Clone()
	}
	return table, nil
}

func powerOfXCoeffs(k int) []uint64 {
	c := make([]uint64, k+1)
	c[k] = 1
	return c
}

// timesXGeneric multiplies t by x and folds any overflow into degree
// < n using the monic relation, without requiring an already-built
// power table (used only while the table itself is under construction).
func timesXGeneric(t, f *poly.Polynomial, n int, p uint64) (*poly.Polynomial, error) {
	shifted := make([]uint64, n+1)
	for i := 0; i <= t.Degree(); i++ {
		if i+1 <= n {
			shifted[i+1] = t.Coeff(i)
		}
	}
	out, err := poly.New(p, shifted)
	if err != nil {
		return nil, err
	}
	if out.Degree() == n && out.Coeff(n) != 0 {
		c := out.Coeff(n)
		newCoeffs := make([]uint64, n)
		for j := 0; j < n; j++ {
			fj := f.Coeff(j)
			newCoeffs[j] = (out.Coeff(j) + p - (c*fj)%p) % p
		}
		return poly.New(p, newCoeffs)
	}
	return out, nil
}

// Set replaces the representative with g (must already satisfy
// deg(g) <= 2n-2) and reduces it modulo (f,p).
func (pm *PolyMod) Set(g *poly.Polynomial) error {
	if g.Modulus() != pm.p {
		return errors.New(errors.ModularArithmetic, "modulus mismatch")
	}
	if g.Degree() > 2*pm.n-2 {
		return errors.New(errors.InternalRange, "representative degree %d exceeds 2n-2", g.Degree())
	}
	pm.g = g.Clone()
	pm.reduceG()
	return nil
}

// Get returns the current representative (degree < n).
func (pm *PolyMod) Get() *poly.Polynomial { return pm.g.Clone() }

// reduceG folds any coefficients at degree >= n into degree < n using
// the power table: for i = n..deg(g), add g[i]*T[i-n] into g[0..n-1]
// mod p, then zero g[i].
func (pm *PolyMod) reduceG() {
	deg := pm.g.Degree()
	for i := pm.n; i <= deg; i++ {
		c := pm.g.Coeff(i)
		if c == 0 {
			continue
		}
		term := pm.table[i-pm.n].Clone()
		term.ScaleAssign(c)
		_ = pm.g.AddAssign(term)
	}
	trimmed := make([]uint64, pm.n)
	for i := 0; i < pm.n; i++ {
		trimmed[i] = pm.g.Coeff(i)
	}
	g, _ := poly.New(pm.p, trimmed)
	pm.g = g
}

// TimesX shifts g left by one degree (multiply by x) and folds any
// overflow at degree n back in via table[0] (= x^n mod f).
func (pm *PolyMod) TimesX() {
	c := pm.g.Coeff(pm.n - 1)
	shifted := make([]uint64, pm.n)
	for i := pm.n - 2; i >= 0; i-- {
		shifted[i+1] = pm.g.Coeff(i)
	}
	g, _ := poly.New(pm.p, shifted)
	if c != 0 {
		term := pm.table[0].Clone()
		term.ScaleAssign(c)
		_ = g.AddAssign(term)
	}
	pm.g = g
}

// Square replaces g with g^2 mod (f,p) using the autoconvolution
// formula for each coefficient of the low part (degree < n) and for
// the high part (degree n..2n-2), folded back in via the table.
func (pm *PolyMod) Square() error {
	return pm.MultiplyAssign(pm.Get())
}

// MultiplyAssign replaces g with g*other mod (f,p). other must share
// the same modulus f.
func (pm *PolyMod) MultiplyAssign(other *poly.Polynomial) error {
	if other.Modulus() != pm.p {
		return errors.New(errors.ModularArithmetic, "modulus mismatch in PolyMod multiply")
	}
	top := 2*pm.n - 2
	if top < 0 {
		top = 0
	}
	prod := make([]uint64, top+1)
	for k := 0; k <= top; k++ {
		lo, hi := 0, k
		if lo < k-(pm.n-1) {
			lo = k - (pm.n - 1)
		}
		if hi > pm.n-1 {
			hi = pm.n - 1
		}
		var sum uint64
		for i := lo; i <= hi; i++ {
			sum = (sum + pm.g.Coeff(i)*other.Coeff(k-i)) % pm.p
		}
		prod[k] = sum
	}
	g, err := poly.New(pm.p, prod)
	if err != nil {
		return err
	}
	pm.g = g
	pm.reduceG()
	return nil
}

// PowerOfX computes x^m mod (f,p) for a very large exponent m,
// represented as a BigInt, via repeated squaring scanning m's bits
// from just below its leading one down to 0: square at every step,
// and additionally multiply by x (TimesX) whenever the scanned bit is
// 1. This is the only exponentiation the oracle needs: it is always
// applied starting from the representative x.
func PowerOfX(pm *PolyMod, m *bigint.Int) (*poly.Polynomial, error) {
	one, err := poly.New(pm.p, []uint64{1})
	if err != nil {
		return nil, err
	}
	if m.IsZero() {
		return one, nil
	}
	// The power table depends only on f, so reuse it instead of
	// rebuilding: share it with a scratch PolyMod seeded at 1.
	work := &PolyMod{f: pm.f, p: pm.p, n: pm.n, g: one, table: pm.table}

	top := m.CeilLg() - 1
	for k := top; k >= 0; k-- {
		if err := work.Square(); err != nil {
			return nil, err
		}
		if m.TestBit(k) == 1 {
			work.TimesX()
		}
	}
	return work.Get(), nil
}

// Modulus returns the fixed modulus f this PolyMod reduces against.
func (pm *PolyMod) Modulus() *poly.Polynomial { return pm.f }

// Degree returns deg(f) = n.
func (pm *PolyMod) Degree() int { return pm.n }
