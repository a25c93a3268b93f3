// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build bigint64

// This file selects the 64-bit digit width (build with -tags bigint64).
// There is no native 128-bit double-word on any Go platform, so multiply
// and divide fall back to the portable split-lane primitives in
// math/bits instead of materialising a double-digit type; see word_32.go
// for the simpler 32-bit path that uses a native uint64 double word.

package bigint

import "math/bits"

// Word is a single base-B digit of a BigInt's magnitude.
type Word = uint64

const (
	wordBits = 64
	wordMax  = 1<<wordBits - 1
)

// addWW returns the sum x+y+c and the carry out of the top bit.
func addWW(x, y, c Word) (sum, carry Word) {
	return bits.Add64(x, y, c)
}

// subWW returns the difference x-y-b and the borrow out of the top bit.
func subWW(x, y, b Word) (diff, borrow Word) {
	return bits.Sub64(x, y, b)
}

// mulWW returns the double-word product x*y as (hi, lo).
func mulWW(x, y Word) (hi, lo Word) {
	return bits.Mul64(x, y)
}

// mulAddWWW returns the double-word value x*y+c as (hi, lo). It never
// overflows a double word because (B-1)^2 + (B-1) < B^2.
func mulAddWWW(x, y, c Word) (hi, lo Word) {
	hi, lo = bits.Mul64(x, y)
	var carry uint64
	lo, carry = bits.Add64(lo, c, 0)
	hi += carry
	return hi, lo
}

// divWW returns the quotient and remainder of the double-word dividend
// hi:lo divided by y. It panics if the quotient would not fit in a
// single Word (i.e. if hi >= y), mirroring math/bits.Div64.
func divWW(hi, lo, y Word) (q, r Word) {
	return bits.Div64(hi, lo, y)
}

// nlz returns the number of leading zero bits in x.
func nlz(x Word) uint {
	return uint(bits.LeadingZeros64(x))
}

// bitLenWord returns the number of bits required to represent x, or 0
// for x == 0.
func bitLenWord(x Word) int {
	return bits.Len64(x)
}
