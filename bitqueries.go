// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the exported bit queries of §4.14. They act on
// the magnitude only, independent of sign.

package bigint

// BitLen returns the length of x's magnitude in bits. The bit length of
// 0 is 0.
func (x *BigInt) BitLen() int {
	return bitLenAbs(x.mag)
}

// TestBit returns bit i of x's magnitude (ignoring sign); it returns
// false if i is at or past the magnitude's bit length.
func (x *BigInt) TestBit(i uint) bool {
	return testBitAbs(x.mag, i)
}

// SetBit sets bit i of z's magnitude, preserving sign, and returns z. It
// grows and zero-fills intermediate digits as needed.
func (z *BigInt) SetBit(x *BigInt, i uint) *BigInt {
	z.mag = setBitAbs(x.mag, i)
	z.neg = x.neg
	return z
}
