// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !bigint64

// This file selects the 32-bit digit width. Build with -tags bigint64 to
// select 64-bit digits instead; see word_64.go.

package bigint

import "math/bits"

// Word is a single base-B digit of a BigInt's magnitude.
type Word = uint32

const (
	wordBits = 32
	wordMax  = 1<<wordBits - 1
)

// addWW returns the sum x+y+c and the carry out of the top bit.
func addWW(x, y, c Word) (sum, carry Word) {
	s := uint64(x) + uint64(y) + uint64(c)
	return Word(s), Word(s >> wordBits)
}

// subWW returns the difference x-y-b and the borrow out of the top bit.
func subWW(x, y, b Word) (diff, borrow Word) {
	d := uint64(x) - uint64(y) - uint64(b)
	return Word(d), Word(d>>wordBits) & 1
}

// mulWW returns the double-word product x*y as (hi, lo).
func mulWW(x, y Word) (hi, lo Word) {
	p := uint64(x) * uint64(y)
	return Word(p >> wordBits), Word(p)
}

// mulAddWWW returns the double-word value x*y+c as (hi, lo). It never
// overflows a double word because (B-1)^2 + (B-1) < B^2.
func mulAddWWW(x, y, c Word) (hi, lo Word) {
	p := uint64(x)*uint64(y) + uint64(c)
	return Word(p >> wordBits), Word(p)
}

// divWW returns the quotient and remainder of the double-word dividend
// hi:lo divided by y. It panics if the quotient would not fit in a
// single Word (i.e. if hi >= y), mirroring math/bits.Div32.
func divWW(hi, lo, y Word) (q, r Word) {
	return bits.Div32(hi, lo, y)
}

// nlz returns the number of leading zero bits in x.
func nlz(x Word) uint {
	return uint(bits.LeadingZeros32(x))
}

// bitLenWord returns the number of bits required to represent x, or 0
// for x == 0.
func bitLenWord(x Word) int {
	return bits.Len32(x)
}
