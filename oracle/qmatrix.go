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

package oracle

import (
	"github.com/bfix/primpoly/bigint"
	"github.com/bfix/primpoly/modarith"
	"github.com/bfix/primpoly/poly"
	"github.com/bfix/primpoly/polymod"
)

// qMatrixNullity builds the Berlekamp Q-matrix for f over GF(p) and
// returns the nullity of Q-I via column reduction, short-circuiting as
// soon as the nullity reaches 2 (the only threshold the oracle cares
// about).
func qMatrixNullity(f *poly.Polynomial, p uint64, n int) (int, error) {
	rows, err := buildQMatrix(f, p, n)
	if err != nil {
		return 0, err
	}

	m, err := modarith.New(p)
	if err != nil {
		return 0, err
	}

	pivotal := make([]bool, n)
	nullity := 0
	for r := 0; r < n; r++ {
		col := -1
		for c := 0; c < n; c++ {
			if !pivotal[c] && rows[r][c] != 0 {
				col = c
				break
			}
		}
		if col == -1 {
			nullity++
			if nullity >= 2 {
				return nullity, nil
			}
			continue
		}

		q := rows[r][col]
		inv, err := m.Inverse(q)
		if err != nil {
			return 0, err
		}
		scalar := (p - inv) % p // -1/q mod p

		for i := 0; i < n; i++ {
			rows[i][col] = m.Multiply(rows[i][col], scalar)
		}

		for cp := 0; cp < n; cp++ {
			if cp == col || pivotal[cp] {
				continue
			}
			factor := rows[r][cp]
			if factor == 0 {
				continue
			}
			for i := 0; i < n; i++ {
				rows[i][cp] = m.Add(rows[i][cp], m.Multiply(factor, rows[i][col]))
			}
		}
		pivotal[col] = true
	}
	return nullity, nil
}

// buildQMatrix forms the n x n matrix over GF(p) whose row k is the
// coefficient vector of x^(p*k) mod (f,p), minus the identity matrix.
// Row 0 is the all-zero vector after subtracting 1 from its first
// entry (x^0 = 1). Row 1 is computed directly via repeated squaring;
// each subsequent row is the previous row's polynomial multiplied by
// x^p mod f, avoiding a fresh repeated-squaring pass per row.
func buildQMatrix(f *poly.Polynomial, p uint64, n int) ([][]uint64, error) {
	pm, err := polymod.NewModulus(f)
	if err != nil {
		return nil, err
	}

	rows := make([][]uint64, n)
	rows[0] = make([]uint64, n)
	rows[0][0] = 1

	if n > 1 {
		xp, err := polymod.PowerOfX(pm, bigint.FromWord(p))
		if err != nil {
			return nil, err
		}
		rows[1] = toRow(xp, n)

		rowPoly := xp
		for k := 2; k < n; k++ {
			if err := pm.Set(rowPoly); err != nil {
				return nil, err
			}
			if err := pm.MultiplyAssign(xp); err != nil {
				return nil, err
			}
			rowPoly = pm.Get()
			rows[k] = toRow(rowPoly, n)
		}
	}

	for i := 0; i < n; i++ {
		rows[i][i] = (rows[i][i] + p - 1) % p
	}
	return rows, nil
}

func toRow(p *poly.Polynomial, n int) []uint64 {
	row := make([]uint64, n)
	for i := 0; i < n; i++ {
		row[i] = p.Coeff(i)
	}
	return row
}
