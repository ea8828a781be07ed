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

// Package bigint implements non-negative arbitrary-precision integers
// as a positional sequence of base-b digits, least-significant first,
// with schoolbook multiplication and Knuth Algorithm D long division.
//
// The base b is a power of two fixed once at process start such that
// b*b still fits in a machine word (uint64 here), so that every digit
// product and carry computation stays within native arithmetic.
package bigint

import (
	"strings"

	"github.com/bfix/primpoly/errors"
)

// word is the native unsigned type digits and carries are computed in.
type word = uint64

// numBitsPerDigit is fixed once at package initialization: half of a
// machine word's bits (64), minus one, so that b = 2^numBitsPerDigit
// satisfies b*b < 2^64. Exposed for testing only via SetBitsPerDigit.
var numBitsPerDigit = 64/2 - 1

// base is 2^numBitsPerDigit, recomputed whenever numBitsPerDigit changes.
var base word = word(1) << uint(numBitsPerDigit)

// SetBitsPerDigit overrides the process-wide digit width. Exposed for
// testing only: production code must never call this after any Int
// has been constructed, since existing digit slices would no longer
// be canonical under the new base.
func SetBitsPerDigit(bits int) {
	numBitsPerDigit = bits
	base = word(1) << uint(bits)
}

// BitsPerDigit returns the current digit width in bits.
func BitsPerDigit() int { return numBitsPerDigit }

// Base returns the current digit base b = 2^BitsPerDigit().
func Base() uint64 { return base }

// Int is a non-negative arbitrary-precision integer: digits[0] is the
// least significant base-b digit. The canonical form has no leading
// (most-significant) zero digit, except for the value zero itself,
// which is represented as the single digit [0].
type Int struct {
	digits []word
}

// Zero is the canonical representation of 0.
func Zero() *Int { return &Int{digits: []word{0}} }

// One is the canonical representation of 1.
func One() *Int { return FromWord(1) }

// FromWord builds an Int from a native unsigned word by repeatedly
// extracting digits mod b.
func FromWord(d uint64) *Int {
	if d == 0 {
		return &Int{digits: []word{0}}
	}
	var digs []word
	for d > 0 {
		digs = append(digs, word(d)%base)
		d /= uint64(base)
	}
	return &Int{digits: digs}
}

// FromString builds an Int from a decimal numeral using Horner's rule:
// w := 10*w + digit for each character left to right. Any non-decimal
// character is a UserInputError.
func FromString(s string) (*Int, error) {
	if len(s) == 0 {
		return nil, errors.New(errors.UserInput, "empty integer literal")
	}
	acc := Zero()
	ten := FromWord(10)
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, errors.New(errors.UserInput, "non-decimal character %q in integer literal %q", r, s)
		}
		acc = acc.Mul(ten).Add(FromWord(uint64(r - '0')))
	}
	return acc, nil
}

// clone makes an independent copy of the digit slice.
func (u *Int) clone() *Int {
	d := make([]word, len(u.digits))
	copy(d, u.digits)
	return &Int{digits: d}
}

// trim restores canonical form in place: drop leading zero digits,
// leaving at least one digit (the canonical zero [0]).
func trim(d []word) []word {
	n := len(d)
	for n > 1 && d[n-1] == 0 {
		n--
	}
	return d[:n]
}

// IsZero reports whether u is the canonical zero value.
func (u *Int) IsZero() bool {
	return len(u.digits) == 1 && u.digits[0] == 0
}

// NumDigits returns the number of base-b digits in the canonical form.
func (u *Int) NumDigits() int { return len(u.digits) }

// String converts u to its decimal representation by repeated
// extraction of (x mod 10), then reversing the digit string. 0 and 1
// are special-cased.
func (u *Int) String() string {
	if u.IsZero() {
		return "0"
	}
	if len(u.digits) == 1 && u.digits[0] == 1 {
		return "1"
	}
	rem := u.clone()
	var out []byte
	for !rem.IsZero() {
		q, r := rem.DivModWord(10)
		out = append(out, byte('0')+byte(r))
		rem = q
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Cmp compares u and v, returning -1, 0 or +1.
func (u *Int) Cmp(v *Int) int {
	if len(u.digits) != len(v.digits) {
		if len(u.digits) < len(v.digits) {
			return -1
		}
		return 1
	}
	for i := len(u.digits) - 1; i >= 0; i-- {
		if u.digits[i] != v.digits[i] {
			if u.digits[i] < v.digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equals reports whether u and v denote the same value.
func (u *Int) Equals(v *Int) bool { return u.Cmp(v) == 0 }

// Add returns u+v using positional add-with-carry.
func (u *Int) Add(v *Int) *Int {
	n := len(u.digits)
	if len(v.digits) > n {
		n = len(v.digits)
	}
	out := make([]word, n+1)
	var carry word
	for i := 0; i < n; i++ {
		var a, b word
		if i < len(u.digits) {
			a = u.digits[i]
		}
		if i < len(v.digits) {
			b = v.digits[i]
		}
		sum := a + b + carry
		out[i] = sum % base
		carry = sum / base
	}
	out[n] = carry
	return &Int{digits: trim(out)}
}

// Sub returns u-v. A negative result (v > u) fails with UnderflowError.
func (u *Int) Sub(v *Int) (*Int, error) {
	if u.Cmp(v) < 0 {
		return nil, errors.New(errors.Underflow, "%s - %s would be negative", u, v)
	}
	n := len(u.digits)
	out := make([]word, n)
	var borrow int64
	for i := 0; i < n; i++ {
		var b word
		if i < len(v.digits) {
			b = v.digits[i]
		}
		t := int64(u.digits[i]) - int64(b) + borrow
		if t >= 0 {
			out[i] = word(t)
			borrow = 0
		} else {
			out[i] = word(t + int64(base))
			borrow = -1
		}
	}
	if borrow != 0 {
		return nil, errors.New(errors.Underflow, "%s - %s underflowed", u, v)
	}
	return &Int{digits: trim(out)}, nil
}

// MulWord multiplies u by a single word w (0 <= w <= base).
// Multiplying by the base itself is a left shift by one digit.
func (u *Int) MulWord(w uint64) *Int {
	if w == uint64(base) {
		return u.shiftDigitsLeft()
	}
	if w > uint64(base) {
		panic("bigint: MulWord operand exceeds digit base")
	}
	if w == 0 {
		return Zero()
	}
	n := len(u.digits)
	out := make([]word, n+1)
	var carry word
	ww := word(w)
	for i := 0; i < n; i++ {
		prod := u.digits[i]*ww + carry
		out[i] = prod % base
		carry = prod / base
	}
	out[n] = carry
	return &Int{digits: trim(out)}
}

// shiftDigitsLeft multiplies u by base (append a zero low digit).
func (u *Int) shiftDigitsLeft() *Int {
	if u.IsZero() {
		return Zero()
	}
	out := make([]word, len(u.digits)+1)
	copy(out[1:], u.digits)
	return &Int{digits: out}
}

// Mul returns u*v via schoolbook O(len(u)*len(v)) multiplication.
func (u *Int) Mul(v *Int) *Int {
	if u.IsZero() || v.IsZero() {
		return Zero()
	}
	out := make([]word, len(u.digits)+len(v.digits))
	for i := range u.digits {
		var carry word
		for j := range v.digits {
			prod := out[i+j] + u.digits[i]*v.digits[j] + carry
			out[i+j] = prod % base
			carry = prod / base
		}
		out[i+len(v.digits)] += carry
	}
	return &Int{digits: trim(out)}
}

// DivModWord divides u by a single digit-sized word d, returning
// quotient and remainder. Division by zero fails.
func (u *Int) DivModWord(d uint64) (*Int, uint64) {
	if d == 0 {
		panic("bigint: DivModWord by zero")
	}
	n := len(u.digits)
	q := make([]word, n)
	var rem word
	dd := word(d)
	for i := n - 1; i >= 0; i-- {
		cur := rem*base + u.digits[i]
		q[i] = cur / dd
		rem = cur % dd
	}
	return &Int{digits: trim(q)}, uint64(rem)
}

// DivMod divides u by v using Knuth's Algorithm D (TAOCP vol.2, 4.3.1),
// returning quotient and remainder. Division by zero fails.
func (u *Int) DivMod(v *Int) (q, r *Int, err error) {
	if v.IsZero() {
		return nil, nil, errors.New(errors.ZeroDivide, "division by zero")
	}
	if len(v.digits) == 1 {
		qq, rr := u.DivModWord(uint64(v.digits[0]))
		return qq, FromWord(rr), nil
	}
	if u.Cmp(v) < 0 {
		return Zero(), u.clone(), nil
	}

	n := len(v.digits)
	m := len(u.digits) - n

	// Step D1: normalize so the divisor's leading digit is large,
	// tightening the trial-quotient estimate in step D3.
	d := (uint64(base)) / (uint64(v.digits[n-1]) + 1)
	uu := u.MulWord(d)
	vv := v.MulWord(d)
	vv.digits = trim(vv.digits)
	for len(vv.digits) < n {
		vv.digits = append(vv.digits, 0)
	}
	ud := make([]word, len(uu.digits)+1)
	copy(ud, uu.digits)
	for len(ud) < m+n+1 {
		ud = append(ud, 0)
	}

	qd := make([]word, m+1)
	for j := m; j >= 0; j-- {
		// Step D3: estimate the trial quotient digit from the top two
		// digits of the current window.
		numerator := ud[j+n]*base + ud[j+n-1]
		qhat := numerator / vv.digits[n-1]
		rhat := numerator % vv.digits[n-1]
		for qhat >= base || (n >= 2 && qhat*vv.digits[n-2] > base*rhat+ud[j+n-2]) {
			qhat--
			rhat += vv.digits[n-1]
			if rhat >= base {
				break
			}
		}

		// Step D4: multiply and subtract qhat*vv from the window.
		var borrow int64
		var carry word
		for i := 0; i < n; i++ {
			p := qhat*vv.digits[i] + carry
			carry = p / base
			sub := int64(ud[j+i]) - int64(p%base) - borrow
			if sub < 0 {
				sub += int64(base)
				borrow = 1
			} else {
				borrow = 0
			}
			ud[j+i] = word(sub)
		}
		sub := int64(ud[j+n]) - int64(carry) - borrow
		if sub < 0 {
			sub += int64(base)
			borrow = 1
		} else {
			borrow = 0
		}
		ud[j+n] = word(sub)

		// Step D5/D6: a negative final borrow means qhat overshot by
		// one; correct it and add the divisor back into the window.
		if borrow != 0 {
			qhat--
			var c word
			for i := 0; i < n; i++ {
				s := ud[j+i] + vv.digits[i] + c
				ud[j+i] = s % base
				c = s / base
			}
			ud[j+n] = (ud[j+n] + c) % base
		}
		qd[j] = qhat
	}

	// Step D8: denormalize the remainder.
	remDigits := make([]word, n)
	copy(remDigits, ud[:n])
	remBig := &Int{digits: trim(remDigits)}
	remQ, _ := remBig.DivModWord(d)

	return &Int{digits: trim(qd)}, remQ, nil
}

// Div returns the quotient of u/v, discarding the remainder.
func (u *Int) Div(v *Int) (*Int, error) {
	q, _, err := u.DivMod(v)
	return q, err
}

// Mod returns u mod v.
func (u *Int) Mod(v *Int) (*Int, error) {
	_, r, err := u.DivMod(v)
	return r, err
}

// TestBit returns bit k (0 = least significant) of u's binary
// expansion, decomposed as digit k/numBitsPerDigit, sub-bit
// k%numBitsPerDigit. Panics if k is out of range -- callers are
// expected to bound k by MaxBitNumber first.
func (u *Int) TestBit(k int) uint {
	if k < 0 || k > u.MaxBitNumber() {
		panic("bigint: TestBit index out of range")
	}
	digIdx := k / numBitsPerDigit
	sub := k % numBitsPerDigit
	return uint((u.digits[digIdx] >> uint(sub)) & 1)
}

// MaxBitNumber is the highest bit index representable by u's current
// digit count: numBitsPerDigit*NumDigits() - 1.
func (u *Int) MaxBitNumber() int {
	return numBitsPerDigit*len(u.digits) - 1
}

// CeilLg returns the position of the leading set bit plus one, i.e.
// the smallest k such that u < 2^k (0 for u == 0).
func (u *Int) CeilLg() int {
	if u.IsZero() {
		return 0
	}
	for k := u.MaxBitNumber(); k >= 0; k-- {
		if u.TestBit(k) == 1 {
			return k + 1
		}
	}
	return 0
}

// Power raises base to exponent n by repeated squaring, scanning the
// exponent's bits from just below the leading one downward. 0^0 is a
// DomainError; any_positive^0 = 1; 0^positive = 0.
func Power(base *Int, n uint64) (*Int, error) {
	if n == 0 {
		if base.IsZero() {
			return nil, errors.New(errors.Domain, "0^0 is undefined")
		}
		return One(), nil
	}
	if base.IsZero() {
		return Zero(), nil
	}
	exp := FromWord(n)
	top := exp.CeilLg() - 1
	result := One()
	b := base
	for k := top; k >= 0; k-- {
		result = result.Mul(result)
		if exp.TestBit(k) == 1 {
			result = result.Mul(b)
		}
	}
	return result, nil
}

// strippedDecimal returns s with leading/trailing whitespace removed,
// used by callers parsing CLI and table literals.
func strippedDecimal(s string) string {
	return strings.TrimSpace(s)
}

// FromTrimmedString parses a decimal literal after trimming whitespace.
func FromTrimmedString(s string) (*Int, error) {
	return FromString(strippedDecimal(s))
}

// PowMod returns (base^exp) mod m by repeated squaring, reducing after
// every multiplication so intermediate values never grow past 2*len(m)
// digits. Used by the factorizer's big-integer Miller-Rabin path,
// where the field modulus itself may not fit in a machine word.
func PowMod(base, exp *Int, m *Int) (*Int, error) {
	if m.IsZero() || m.IsOne() {
		return nil, errors.New(errors.ModularArithmetic, "modulus must exceed 1")
	}
	result := One()
	b, err := base.Mod(m)
	if err != nil {
		return nil, err
	}
	top := exp.CeilLg() - 1
	for k := top; k >= 0; k-- {
		result = result.Mul(result)
		if result, err = result.Mod(m); err != nil {
			return nil, err
		}
		if exp.TestBit(k) == 1 {
			result = result.Mul(b)
			if result, err = result.Mod(m); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// ToUint64 packs u into a native word if it fits, reporting ok=false
// otherwise. Safe whenever u has at most two base-b digits, since
// b*b < 2^64 by construction of the digit base.
func ToUint64(u *Int) (uint64, bool) {
	if len(u.digits) > 2 {
		return 0, false
	}
	acc := uint64(0)
	mult := uint64(1)
	for _, d := range u.digits {
		acc += uint64(d) * mult
		mult *= uint64(base)
	}
	return acc, true
}

// IsEven reports whether u's least significant bit is clear.
func (u *Int) IsEven() bool {
	return u.digits[0]%2 == 0
}

// IsOne reports whether u denotes the value 1.
func (u *Int) IsOne() bool {
	return len(u.digits) == 1 && u.digits[0] == 1
}

// Clone returns an independent copy of u.
func (u *Int) Clone() *Int {
	return u.clone()
}
