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

// isProbablyPrimeBig is the Miller-Rabin witness test for n wider than
// a machine word: r = (p^n-1)/(p-1) and p^n-1 themselves routinely
// exceed 2^62 for the larger spec scenarios (p=13, n=19), so the
// witness test must fall back to full BigInt modular exponentiation
// rather than modarith's word-limited primitives.
func isProbablyPrimeBig(n, x *bigint.Int) (bool, error) {
	one := bigint.One()
	two := bigint.FromWord(2)
	nMinus1, err := n.Sub(one)
	if err != nil {
		return false, err
	}
	q := nMinus1.Clone()
	k := 0
	for q.IsEven() {
		q, _ = q.Div(two)
		k++
	}
	y, err := bigint.PowMod(x, q, n)
	if err != nil {
		return false, err
	}
	if y.IsOne() {
		return true, nil
	}
	for j := 0; j < k; j++ {
		if y.Equals(nMinus1) {
			return true, nil
		}
		if j > 0 && y.IsOne() {
			return false, nil
		}
		y = y.Mul(y)
		if y, err = y.Mod(n); err != nil {
			return false, err
		}
	}
	return false, nil
}
