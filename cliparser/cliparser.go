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

// Package cliparser parses the primpoly command line: the flags
// -t/-a/-s/-c/-h (concatenable, e.g. -sc), and either a quoted
// polynomial string after -t or the positional integers p and n.
package cliparser

import (
	"strconv"

	"github.com/bfix/primpoly/bigint"
	"github.com/bfix/primpoly/errors"
	"github.com/bfix/primpoly/factorizer"
)

// Args is the parsed, validated command line.
type Args struct {
	Help        bool
	Test        bool // -t: test the supplied polynomial string
	ListAll     bool // -a: list every primitive polynomial
	PrintCounts bool // -s: print operation counts
	SlowConfirm bool // -c: also run the slow maximal_order confirmation
	PolyString  string
	P           uint64
	N           int
}

// Parse parses argv (excluding the program name). It validates 2 <= p
// < BigInt's base, that p is almost-surely-prime, and n >= 2 -- but
// only when p and n are actually consumed as positional operands (-t
// mode defers p's primality check to the polynomial's own modulus,
// validated by the caller once parsed).
func Parse(argv []string) (*Args, error) {
	var a Args
	var positional []string

	for _, tok := range argv {
		if len(tok) >= 2 && tok[0] == '-' && tok != "-" {
			for _, flag := range tok[1:] {
				switch flag {
				case 'h':
					a.Help = true
				case 't':
					a.Test = true
				case 'a':
					a.ListAll = true
				case 's':
					a.PrintCounts = true
				case 'c':
					a.SlowConfirm = true
				default:
					return nil, errors.New(errors.UserInput, "unrecognised flag -%c", flag)
				}
			}
			continue
		}
		positional = append(positional, tok)
	}

	if a.Help {
		return &a, nil
	}

	if a.Test {
		if len(positional) != 1 {
			return nil, errors.New(errors.UserInput, "-t requires exactly one quoted polynomial operand, got %d", len(positional))
		}
		a.PolyString = positional[0]
		return &a, nil
	}

	if len(positional) != 2 {
		return nil, errors.New(errors.UserInput, "expected two positional integers p and n, got %d", len(positional))
	}
	p, err := strconv.ParseUint(positional[0], 10, 64)
	if err != nil {
		return nil, errors.New(errors.UserInput, "p must be a non-negative integer, got %q", positional[0])
	}
	n, err := strconv.ParseUint(positional[1], 10, 64)
	if err != nil {
		return nil, errors.New(errors.UserInput, "n must be a non-negative integer, got %q", positional[1])
	}
	if err := validatePN(p, n); err != nil {
		return nil, err
	}
	a.P = p
	a.N = int(n)
	return &a, nil
}

// validatePN checks 2 <= p < BigInt's base, p almost-surely-prime, and
// n >= 2.
func validatePN(p, n uint64) error {
	if p < 2 || p >= bigint.Base() {
		return errors.New(errors.UserInput, "p must satisfy 2 <= p < %d, got %d", bigint.Base(), p)
	}
	ok, err := factorizer.IsAlmostSurelyPrime(bigint.FromWord(p))
	if err != nil {
		return err
	}
	if !ok {
		return errors.New(errors.UserInput, "p=%d is not prime", p)
	}
	if n < 2 {
		return errors.New(errors.UserInput, "n must be >= 2, got %d", n)
	}
	return nil
}

// HelpText is the command summary printed for -h.
const HelpText = `primpoly p n          find one primitive polynomial of degree n mod p
primpoly -a p n       list all primitive polynomials of degree n mod p
primpoly -s p n       also print operation counts
primpoly -t "<poly>[, p]"   test a user polynomial for primitivity
primpoly -c ...       also run the slow maximal-order confirmation
primpoly -h           print this help

Flags may be concatenated, e.g. -sc.`
