// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the bitwise core (§4.11): AND/OR/XOR over a
// conceptual infinite-precision two's-complement view, built by
// transiently converting each negative operand's magnitude to two's
// complement across a window of max(sizes) digits (one wider for AND
// and XOR, to hold a possible carry out of the top digit), then converting the
// result back if it comes out negative. NOT is defined as ~x == -x-1.

package bigint

// complementInPlace replaces v with its two's complement, ~v + 1,
// computed modulo B^len(v). Digits of v beyond the operand's original
// magnitude are zero before this call, so NOT-ing them yields the
// all-ones digits the spec calls for when treating a negative operand's
// absent digits as B-1.
func complementInPlace(v DigitVector) {
	for i := range v {
		v[i] = ^v[i]
	}
	carry := Word(1)
	for i := range v {
		s, c := addWW(v[i], 0, carry)
		v[i] = s
		carry = c
		if carry == 0 {
			break
		}
	}
}

// twosComplementView returns a fresh width-digit window holding the
// infinite-precision two's-complement representation of the signed
// value (negative, mag), truncated/extended to width digits.
func twosComplementView(mag DigitVector, negative bool, width int) DigitVector {
	v := zeroExtended(mag, width)
	if negative {
		complementInPlace(v)
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// combineBitwise computes the two's-complement windowed view of x and
// y, combines them digit-wise with op, and recovers the signed result
// according to resultNeg.
func combineBitwise(x, y *BigInt, widen int, op func(a, b Word) Word, resultNeg func(xneg, yneg bool) bool) *BigInt {
	width := maxInt(len(x.mag), len(y.mag)) + widen

	xt := twosComplementView(x.mag, x.neg, width)
	yt := twosComplementView(y.mag, y.neg, width)

	rt := make(DigitVector, width)
	for i := range rt {
		rt[i] = op(xt[i], yt[i])
	}

	neg := resultNeg(x.neg, y.neg)
	if neg {
		complementInPlace(rt)
	}

	mag := normalize(rt)
	return &BigInt{neg: neg && len(mag) > 0, mag: mag}
}

// And sets z = x & y and returns z. The combining window is one digit
// wider than max(|x|,|y|): the AND of two negative operands can be
// -B^n, whose low n window digits are all zero.
func (z *BigInt) And(x, y *BigInt) *BigInt {
	r := combineBitwise(x, y, 1,
		func(a, b Word) Word { return a & b },
		func(xneg, yneg bool) bool { return xneg && yneg })
	*z = *r
	return z
}

// Or sets z = x | y and returns z.
func (z *BigInt) Or(x, y *BigInt) *BigInt {
	r := combineBitwise(x, y, 0,
		func(a, b Word) Word { return a | b },
		func(xneg, yneg bool) bool { return xneg || yneg })
	*z = *r
	return z
}

// Xor sets z = x ^ y and returns z. The combining window is one digit
// wider than max(|x|,|y|) to hold a possible carry produced when
// negating the XOR of two two's-complement views.
func (z *BigInt) Xor(x, y *BigInt) *BigInt {
	r := combineBitwise(x, y, 1,
		func(a, b Word) Word { return a ^ b },
		func(xneg, yneg bool) bool { return xneg != yneg })
	*z = *r
	return z
}

// Not sets z = ^x (bitwise complement over the infinite-precision
// two's-complement view) and returns z. ^x == -x-1.
func (z *BigInt) Not(x *BigInt) *BigInt {
	var one BigInt
	one.SetInt64(1)
	sum, err := new(BigInt).Add(x, &one)
	if err != nil {
		panic(err) // adding one digit cannot overflow MaxDigits
	}
	return z.Negate(sum)
}
