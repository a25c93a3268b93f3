// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the additive core: absolute add (Knuth Algorithm
// A), absolute subtract (Knuth Algorithm S, with a fast top-down
// mismatch scan to pick the larger operand), and the sign dispatch that
// maps signed +/- onto one of those two.

package bigint

// addAbs returns |x| + |y|. It always allocates a fresh result, so it is
// safe regardless of whether the caller intends to alias x or y.
func addAbs(x, y DigitVector) (DigitVector, error) {
	if len(x) < len(y) {
		x, y = y, x
	}
	// len(x) >= len(y)
	z, err := DigitVector(nil).Reserve(len(x) + 1)
	if err != nil {
		return nil, err
	}
	z = z.ResizeUnchecked(len(x) + 1)

	c := addVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = addVW(z[len(y):len(x)], x[len(y):], c)
	}
	z[len(x)] = c

	return normalize(z), nil
}

// addVW sets z[i] = x[i] + carry for i in [0, len(z)) and returns the
// carry out of the top digit.
func addVW(z, x DigitVector, c Word) Word {
	for i := range z {
		z[i], c = addWW(x[i], 0, c)
	}
	return c
}

// subVW sets z[i] = x[i] - borrow for i in [0, len(z)) and returns the
// borrow out of the top digit.
func subVW(z, x DigitVector, b Word) Word {
	for i := range z {
		z[i], b = subWW(x[i], 0, b)
	}
	return b
}

// subAbsGT returns |x| - |y|, assuming |x| >= |y|.
func subAbsGT(x, y DigitVector) DigitVector {
	z := zeroExtended(nil, len(x))

	b := subVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		b = subVW(z[len(y):], x[len(y):], b)
	}
	if b != 0 {
		panic("bigint: subAbsGT called with |x| < |y|")
	}

	return normalize(z)
}

// subAbs returns (|x| - |y|, negative) where negative reports whether
// the mathematical result |x|-|y| is negative, i.e. whether |x| < |y|.
func subAbs(x, y DigitVector) (DigitVector, bool) {
	switch cmpAbs(x, y) {
	case 0:
		return nil, false
	case -1:
		return subAbsGT(y, x), true
	default:
		return subAbsGT(x, y), false
	}
}

// addSigned implements the sign dispatch table for x+y (§4.6):
//
//	sign(x)  sign(y)   x+y
//	  >=0      >=0    addAbs(x,y)
//	  >=0       <0    subAbs(x,y)        (i.e. |x|-|y|, sign of the larger)
//	   <0      >=0    subAbs(y,x)
//	   <0       <0    -addAbs(x,y)
func addSigned(xneg bool, xmag DigitVector, yneg bool, ymag DigitVector) (mag DigitVector, neg bool, err error) {
	switch {
	case !xneg && !yneg:
		mag, err = addAbs(xmag, ymag)
		return mag, false, err
	case xneg && yneg:
		mag, err = addAbs(xmag, ymag)
		return mag, len(mag) > 0, err
	case !xneg && yneg:
		mag, neg = subAbs(xmag, ymag)
		return mag, neg, nil
	default: // xneg && !yneg
		mag, neg = subAbs(ymag, xmag)
		return mag, neg, nil
	}
}

// subSigned implements the mirrored dispatch table for x-y: x-y == x+(-y).
func subSigned(xneg bool, xmag DigitVector, yneg bool, ymag DigitVector) (mag DigitVector, neg bool, err error) {
	return addSigned(xneg, xmag, !yneg, ymag)
}
