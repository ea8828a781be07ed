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

import "github.com/bfix/primpoly/bigint"

// pollardRhoMaxSteps bounds the cycle search so a stubbornly hard
// residual falls through to trial division instead of spinning
// forever; it is generous enough that every Cunningham-scale input in
// practice restarts or succeeds long before hitting it.
const pollardRhoMaxSteps = 1 << 20

// pollardRho runs Brent's variant of Pollard's rho algorithm on n with
// the polynomial x^2+c, returning a non-trivial factor of n, or
// ok=false if the walk degenerates (gcd hits n) before finding one.
func pollardRho(n *bigint.Int, c uint64) (factor *bigint.Int, ok bool, err error) {
	cc := bigint.FromWord(c)
	x := bigint.FromWord(5)
	xPrime := bigint.FromWord(2)
	k := uint64(1)
	l := uint64(1)

	step := func(v *bigint.Int) (*bigint.Int, error) {
		sq := v.Mul(v)
		sum := sq.Add(cc)
		return sum.Mod(n)
	}

	for steps := 0; steps < pollardRhoMaxSteps; steps++ {
		diff, err := x.Sub(xPrime)
		if err != nil {
			diff, err = xPrime.Sub(x)
			if err != nil {
				return nil, false, err
			}
		}
		g := gcdBig(diff, n)

		if g.IsOne() {
			k--
			if k == 0 {
				xPrime = x.Clone()
				l *= 2
				k = l
			}
			x, err = step(x)
			if err != nil {
				return nil, false, err
			}
			continue
		}
		if g.Equals(n) {
			return nil, false, nil
		}
		return g, true, nil
	}
	return nil, false, nil
}

// gcdBig computes gcd(u,v) over BigInt via Euclid's algorithm.
func gcdBig(u, v *bigint.Int) *bigint.Int {
	u = u.Clone()
	v = v.Clone()
	for !v.IsZero() {
		r, err := u.Mod(v)
		if err != nil {
			return bigint.One()
		}
		u, v = v, r
	}
	return u
}
