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

// trialDivision strips factors of 2 and 3, then walks d = 5, 7, 11, 13,
// ... (every integer coprime to 2 and 3, by alternately adding 2 and 4)
// until either n has been fully reduced to 1 or d*d exceeds what
// remains of n, in which case the remainder is itself prime. This is
// the guaranteed fallback of the factorization cascade: always
// correct, possibly slow.
func trialDivision(n *bigint.Int, counts *OperationCount) []*bigint.Int {
	var factors []*bigint.Int
	two := bigint.FromWord(2)
	three := bigint.FromWord(3)

	rem := n.Clone()
	for rem.IsEven() {
		factors = append(factors, two)
		rem, _ = rem.Div(two)
		if counts != nil {
			counts.TrialDivisions++
		}
	}
	for isDivisible(rem, three) {
		factors = append(factors, three)
		rem, _ = rem.Div(three)
		if counts != nil {
			counts.TrialDivisions++
		}
	}

	d := bigint.FromWord(5)
	add := uint64(2)
	for {
		if rem.IsOne() {
			break
		}
		dd := d.Mul(d)
		if dd.Cmp(rem) > 0 {
			factors = append(factors, rem)
			break
		}
		if counts != nil {
			counts.TrialDivisions++
		}
		if isDivisible(rem, d) {
			factors = append(factors, d.Clone())
			rem, _ = rem.Div(d)
			continue
		}
		d = d.Add(bigint.FromWord(add))
		if add == 2 {
			add = 4
		} else {
			add = 2
		}
	}
	return factors
}

func isDivisible(n, d *bigint.Int) bool {
	r, err := n.Mod(d)
	if err != nil {
		return false
	}
	return r.IsZero()
}
