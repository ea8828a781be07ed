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

// Package polyparser parses the textual polynomial grammar
//
//	S          -> Poly Mod
//	Mod        -> , integer | epsilon
//	Poly       -> Poly + Term | Term
//	Term       -> Multiplier Power
//	Multiplier -> integer | epsilon
//	Power      -> x | x ^ integer | epsilon
//
// over the terminals {integer, ',', 'x', '+', '^', $}. The lexer
// coalesces whitespace, accepts 'x' or 'X', and lexes a leading '-' as
// a flagged '+' so the parser can reject negative coefficients with a
// specific message rather than silently misreading them.
package polyparser

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/bfix/primpoly/errors"
	"github.com/bfix/primpoly/poly"
)

type tokenKind int

const (
	tokInt tokenKind = iota
	tokX
	tokPlus
	tokCaret
	tokComma
	tokEnd
)

type token struct {
	kind     tokenKind
	text     string
	negative bool // only meaningful for tokPlus, flags a lexed '-'
	pos      int
}

// lex scans s into a token stream, coalescing whitespace and rejecting
// any character outside the grammar's terminal alphabet.
func lex(s string) ([]token, error) {
	var toks []token
	r := []rune(s)
	i := 0
	for i < len(r) {
		c := r[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '+':
			toks = append(toks, token{kind: tokPlus, pos: i})
			i++
		case c == '-':
			toks = append(toks, token{kind: tokPlus, negative: true, pos: i})
			i++
		case c == '^':
			toks = append(toks, token{kind: tokCaret, pos: i})
			i++
		case c == ',':
			toks = append(toks, token{kind: tokComma, pos: i})
			i++
		case c == 'x' || c == 'X':
			toks = append(toks, token{kind: tokX, pos: i})
			i++
		case unicode.IsDigit(c):
			j := i
			for j < len(r) && unicode.IsDigit(r[j]) {
				j++
			}
			toks = append(toks, token{kind: tokInt, text: string(r[i:j]), pos: i})
			i = j
		default:
			return nil, mkError("unrecognised character %q", i, c)
		}
	}
	toks = append(toks, token{kind: tokEnd, pos: len(r)})
	return toks, nil
}

// parser walks the token stream produced by lex with one token of
// lookahead, accumulating the (coefficient, modulus) pair described by
// the grammar's syntax-directed translation.
type parser struct {
	toks []token
	pos  int
	// coeffs[i] accumulates the coefficient of x^i as terms are parsed;
	// grown on demand.
	coeffs []uint64
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// Parse parses s into a Polynomial, defaulting a missing modulus to 2.
func Parse(s string) (*poly.Polynomial, error) {
	toks, err := lex(s)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	if err := p.parsePoly(); err != nil {
		return nil, err
	}
	modulus, err := p.parseMod()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEnd {
		return nil, mkError("unexpected trailing input %q", p.peek().pos, p.peek().text)
	}
	return poly.New(modulus, p.coeffs)
}

// parsePoly consumes Poly -> Poly + Term | Term, accumulating each
// term's coefficient into p.coeffs as it goes.
func (p *parser) parsePoly() error {
	if err := p.parseTerm(); err != nil {
		return err
	}
	for p.peek().kind == tokPlus {
		plus := p.advance()
		if plus.negative {
			return mkError("negative polynomial coefficients are not supported", plus.pos)
		}
		if err := p.parseTerm(); err != nil {
			return err
		}
	}
	return nil
}

// parseTerm consumes Term -> Multiplier Power and folds the resulting
// coefficient*x^power into p.coeffs.
func (p *parser) parseTerm() error {
	mult := uint64(1)
	if p.peek().kind == tokInt {
		v, err := parseUint(p.advance())
		if err != nil {
			return err
		}
		mult = v
	}

	power := 0
	if p.peek().kind == tokX {
		p.advance()
		power = 1
		if p.peek().kind == tokCaret {
			p.advance()
			if p.peek().kind != tokInt {
				return mkError("expected integer exponent after '^', got %q", p.peek().pos, p.peek().text)
			}
			v, err := parseUint(p.advance())
			if err != nil {
				return err
			}
			power = int(v)
		}
	}

	for len(p.coeffs) <= power {
		p.coeffs = append(p.coeffs, 0)
	}
	p.coeffs[power] += mult
	return nil
}

// parseMod consumes Mod -> , integer | epsilon, defaulting to 2.
func (p *parser) parseMod() (uint64, error) {
	if p.peek().kind != tokComma {
		return 2, nil
	}
	p.advance()
	if p.peek().kind != tokInt {
		return 0, mkError("expected integer modulus after ',', got %q", p.peek().pos, p.peek().text)
	}
	return parseUint(p.advance())
}

func parseUint(t token) (uint64, error) {
	v, err := strconv.ParseUint(t.text, 10, 64)
	if err != nil {
		return 0, mkError("invalid integer %q", t.pos, t.text)
	}
	return v, nil
}

func mkError(format string, pos int, args ...interface{}) *errors.Error {
	msg := fmt.Sprintf(format, args...)
	return errors.New(errors.UserInput, "%s (offset %d)", msg, pos)
}
