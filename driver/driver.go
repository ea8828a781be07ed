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

// Package driver enumerates monic polynomials of a fixed degree over
// GF(p) and drives the primitivity oracle against each candidate,
// either stopping at the first primitive polynomial found or
// collecting all of them, optionally cross-checking every acceptance
// against the slow maximal-order confirmation.
package driver

import (
	"github.com/bfix/primpoly/bigint"
	"github.com/bfix/primpoly/errors"
	"github.com/bfix/primpoly/factorizer"
	"github.com/bfix/primpoly/logger"
	"github.com/bfix/primpoly/oracle"
	"github.com/bfix/primpoly/poly"
	"github.com/bfix/primpoly/polymod"
)

// Options selects the driver's three independent behaviours, named
// after the command-line flags that set them.
type Options struct {
	ListAll     bool // collect every primitive polynomial instead of stopping at the first
	PrintCounts bool // caller intends to report OperationCount (driver always accumulates it)
	SlowConfirm bool // cross-check every oracle acceptance against maximal_order
}

// Report is the outcome of a full search: the primitive polynomials
// found (one, unless ListAll), the exact count N the factorizer
// predicted, and the accumulated operation counters.
type Report struct {
	Found  []*poly.Polynomial
	N      *bigint.Int
	Counts *factorizer.OperationCount
}

// Run searches for primitive polynomials of degree n mod p according
// to opts. tableDir is forwarded to the factorizer for Cunningham
// table lookups.
func Run(p uint64, n int, tableDir string, opts Options) (*Report, error) {
	o, err := oracle.New(p, n, tableDir)
	if err != nil {
		return nil, err
	}
	nTarget := o.R().NumPrimitives
	logger.Printf(logger.INFO, "driver: searching degree %d mod %d, expecting %s primitive polynomials", n, p, nTarget)

	f, err := poly.InitialTrialPoly(n, p)
	if err != nil {
		return nil, err
	}

	var found []*poly.Polynomial
	total, err := totalMonicCount(p, n)
	if err != nil {
		return nil, err
	}
	tested := bigint.Zero()

	for {
		if err := f.NextTrialPoly(); err != nil {
			// Exhausted all p^n monic candidates. At least one
			// primitive polynomial is guaranteed to exist for every
			// p, n >= 2, so running out here is an internal defect
			// rather than a legitimate empty result.
			return nil, errors.New(errors.InternalRange, "exhausted all monic polynomials of degree %d mod %d without satisfying the search target", n, p)
		}
		tested = tested.Add(bigint.One())

		ok, err := o.IsPrimitive(f)
		if err != nil {
			return nil, err
		}
		if ok {
			if opts.SlowConfirm {
				confirmed, err := MaximalOrder(f)
				if err != nil {
					return nil, err
				}
				if !confirmed {
					return nil, errors.New(errors.ConfirmationMismatch, "oracle accepted %s but maximal_order disagrees", f)
				}
			}
			found = append(found, f.Clone())
			if !opts.ListAll {
				break
			}
			count := bigint.FromWord(uint64(len(found)))
			if count.Equals(nTarget) {
				break
			}
		}
		if tested.Equals(total) {
			return nil, errors.New(errors.InternalRange, "tested every monic polynomial of degree %d mod %d but found only %d of the predicted %s", n, p, len(found), nTarget)
		}
	}

	return &Report{Found: found, N: nTarget, Counts: o.Counts()}, nil
}

// totalMonicCount returns p^n, the exact number of monic polynomials
// of degree n over GF(p), used only to detect enumeration exhaustion.
func totalMonicCount(p uint64, n int) (*bigint.Int, error) {
	return bigint.Power(bigint.FromWord(p), uint64(n))
}

// MaximalOrder is the slow, direct confirmation described for
// maximal_order: iterate k = 1 .. p^n-1, computing x^k mod (f,p); if
// the constant polynomial 1 appears at any k strictly less than
// p^n-1, f is not primitive. Reaching exactly p^n-1 without an earlier
// hit confirms primitivity. This is Theta(p^n) and meant only for
// small-scale cross-checks, never the default path.
func MaximalOrder(f *poly.Polynomial) (bool, error) {
	pm, err := polymod.NewModulus(f)
	if err != nil {
		return false, err
	}
	n := f.Degree()
	p := f.Modulus()
	total, err := bigint.Power(bigint.FromWord(p), uint64(n))
	if err != nil {
		return false, err
	}
	total, err = total.Sub(bigint.One())
	if err != nil {
		return false, err
	}

	k := bigint.One()
	for {
		xk, err := polymod.PowerOfX(pm, k)
		if err != nil {
			return false, err
		}
		if xk.IsInteger() && xk.Coeff(0) == 1 {
			return k.Equals(total), nil
		}
		if k.Equals(total) {
			return false, nil
		}
		k = k.Add(bigint.One())
	}
}
