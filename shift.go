// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the shift operators' sign handling (§4.10): Lsh
// is a zero-fill shift that simply carries the sign along; Rsh is
// arithmetic and, for negative operands, adjusts the truncated unsigned
// shift into a floor division by 2^k.

package bigint

// Lsh sets z = x << k and returns z. It fails with ErrOverflow if the
// result would need more than MaxDigits digits; z is left unchanged in
// that case.
func (z *BigInt) Lsh(x *BigInt, k uint) (*BigInt, error) {
	mag, err := shiftLeftAbs(x.mag, k)
	if err != nil {
		return z, err
	}
	z.mag, z.neg = mag, x.neg
	return z.trim(), nil
}

// Rsh sets z = x >> k and returns z. For non-negative x this truncates;
// for negative x it computes the floor, so that x>>k == floor(x/2^k)
// for every x and k, in particular (-1)>>k == -1 for every k.
func (z *BigInt) Rsh(x *BigInt, k uint) *BigInt {
	if !x.neg {
		z.mag = shiftRightAbsTruncating(x.mag, k)
		z.neg = false
		return z
	}

	mag := shiftRightAbsTruncating(x.mag, k)
	if discardedBitsNonzero(x.mag, k) {
		incremented, err := addAbs(mag, DigitVector{1})
		if err != nil {
			panic(err) // adding one digit cannot overflow MaxDigits
		}
		mag = incremented
	}
	z.mag = mag
	z.neg = len(z.mag) > 0
	return z
}
