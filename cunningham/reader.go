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

// Package cunningham parses pre-computed Cunningham factor tables
// (known factorizations of b^n-1 for small bases b) into Factorization
// values, so the factorizer can skip Pollard rho entirely whenever a
// queried exponent has already been published.
package cunningham

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bfix/primpoly/bigint"
	"github.com/bfix/primpoly/errors"
)

// SupportedBases lists the Cunningham table bases available alongside
// the executable, per the factorization cascade's fast path.
var SupportedBases = []uint64{2, 3, 5, 6, 7, 10, 11, 12}

var headerRE = regexp.MustCompile(`^\s*n\s*#Fac\s+Factorisation`)

// Entry is one parsed logical line of a table file: the exponent n,
// the expected factor count, and the dot-separated factor terms
// before expansion into a Factorization.
type Entry struct {
	N          uint64
	NumFactors int
	Factors    []Term
	Incomplete bool
}

// Term is either "p" (meaning p^1) or "p^m".
type Term struct {
	Base *bigint.Int
	Exp  uint64
}

// Filename returns the well-known table filename for base p, e.g.
// "c2minus.txt" for tables of 2^n-1.
func Filename(p uint64) string {
	return fmt.Sprintf("c%dminus.txt", p)
}

// Open locates the table file for base p in dir (typically the
// directory containing the running executable) and opens it; ReadEntry
// skips the comment lines and header that precede the entries.
func Open(dir string, p uint64) (*os.File, error) {
	path := filepath.Join(dir, Filename(p))
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(errors.Factor, "cannot open Cunningham table %s: %v", path, err)
	}
	return f, nil
}

// ReadEntry scans r for the entry whose n column equals n, skipping
// comment lines until the header, then logical lines until a match or
// EOF. Physically continued lines are first reassembled into one
// logical line; lines marked incomplete (containing '+') are skipped
// entirely.
func ReadEntry(r io.Reader, n uint64) (*Entry, error) {
	logical, err := logicalLines(r)
	if err != nil {
		return nil, err
	}
	for _, line := range logical {
		e, ok, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		if !ok || e.Incomplete {
			continue
		}
		if e.N == n {
			return e, nil
		}
	}
	return nil, errors.New(errors.Factor, "no Cunningham table entry for n=%d", n)
}

// logicalLines reads past comments/header and reassembles physically
// continued lines (trailing backslash, or a trailing period where the
// factor list goes on in the next line) into single logical lines.
func logicalLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var foundHeader bool
	var logical []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			logical = append(logical, cur.String())
			cur.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if !foundHeader {
			if headerRE.MatchString(line) {
				foundHeader = true
			}
			continue
		}
		trimmed := strings.TrimRight(line, " \t\r")
		if trimmed == "" {
			continue
		}
		continued := strings.HasSuffix(trimmed, "\\") || strings.HasSuffix(trimmed, ".")
		if strings.HasSuffix(trimmed, "\\") {
			trimmed = strings.TrimSuffix(trimmed, "\\")
		}
		// A trailing period is also the dot-separator between factors,
		// so it is kept rather than trimmed when it signals continuation.
		cur.WriteString(trimmed)
		if !continued {
			flush()
		}
	}
	flush()
	if err := scanner.Err(); err != nil {
		return nil, errors.New(errors.Factor, "reading Cunningham table: %v", err)
	}
	if !foundHeader {
		return nil, errors.New(errors.Factor, "Cunningham table header not found")
	}
	return logical, nil
}

// parseLine parses one logical line "n numFactors factorization" where
// factorization is a dot-separated list of "p" or "p^m" terms.
func parseLine(line string) (*Entry, bool, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil, false, nil
	}
	nVal, err := parseUint(fields[0])
	if err != nil {
		return nil, false, nil
	}
	numFac, err := parseUint(fields[1])
	if err != nil {
		return nil, false, nil
	}
	rest := strings.Join(fields[2:], "")
	if strings.Contains(rest, "+") {
		return &Entry{N: nVal, NumFactors: int(numFac), Incomplete: true}, true, nil
	}
	var terms []Term
	for _, part := range strings.Split(rest, ".") {
		if part == "" {
			continue
		}
		t, err := parseTerm(part)
		if err != nil {
			return nil, false, err
		}
		terms = append(terms, t)
	}
	return &Entry{N: nVal, NumFactors: int(numFac), Factors: terms}, true, nil
}

func parseTerm(s string) (Term, error) {
	parts := strings.SplitN(s, "^", 2)
	base, err := bigint.FromString(parts[0])
	if err != nil {
		return Term{}, errors.New(errors.Factor, "bad factor base %q: %v", parts[0], err)
	}
	if len(parts) == 1 {
		return Term{Base: base, Exp: 1}, nil
	}
	exp, err := parseUint(parts[1])
	if err != nil {
		return Term{}, errors.New(errors.Factor, "bad factor exponent %q: %v", parts[1], err)
	}
	return Term{Base: base, Exp: exp}, nil
}

func parseUint(s string) (uint64, error) {
	var v uint64
	if len(s) == 0 {
		return 0, errors.New(errors.Factor, "empty integer field")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errors.New(errors.Factor, "non-decimal character in %q", s)
		}
		v = v*10 + uint64(r-'0')
	}
	return v, nil
}
