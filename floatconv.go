// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the floating-point bridge (§4.13): lossy
// conversion to and from float64. Arbitrary-precision floating point is
// explicitly out of scope; this is strictly "BigInt as seen through the
// narrow end of a double".

package bigint

import "math"

// SetFloat64 sets z to the truncation-toward-zero of f and returns z.
// It fails with ErrFromFloat if f is NaN or infinite. |f| < 1 sets z to
// zero.
func (z *BigInt) SetFloat64(f float64) (*BigInt, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return z, ErrFromFloat
	}

	neg := f < 0
	z.mag = magFromFloat64(math.Abs(f))
	z.neg = neg && len(z.mag) > 0
	return z, nil
}

// magFromFloat64 returns the exact magnitude of trunc(fabs), for
// fabs >= 0. It counts digits by repeatedly comparing to B, scaling
// fabs down as it goes so that once the loop ends, scaled holds the
// value of the leading digit's B^(n-1) place, in [1, B), then fills
// from the most significant digit down: digit := trunc(d);
// d := (d - digit) * B.
func magFromFloat64(fabs float64) DigitVector {
	if fabs < 1 {
		return nil
	}

	n := 1
	scaled := fabs
	for scaled >= wordBase {
		scaled /= wordBase
		n++
	}

	mag := make(DigitVector, n)
	cur := scaled
	for i := n - 1; i >= 0; i-- {
		digit := math.Trunc(cur)
		mag[i] = Word(digit)
		cur = (cur - digit) * wordBase
	}

	return normalize(mag)
}

// wordBase is B = 2^wordBits, represented as a float64 (exact for both
// supported digit widths since wordBits <= 64 and float64 has a 53-bit
// mantissa plus an unbounded binary exponent).
var wordBase = math.Ldexp(1, wordBits)

// Float64 returns the float64 value nearest x, computed from the most
// significant digit down via r = r*B + digit. It returns +Inf or -Inf
// for magnitudes that exceed float64's range; exactness beyond
// IEEE-754 round-to-nearest is not guaranteed.
func (x *BigInt) Float64() float64 {
	var r float64
	for i := len(x.mag) - 1; i >= 0; i-- {
		r = r*wordBase + float64(x.mag[i])
	}
	if x.neg {
		r = -r
	}
	return r
}

// CompareFloat64 compares x against f and returns (-1, 0, or +1, true),
// or (0, false) if f is NaN, in which case no ordered comparison holds
// (IEEE-754: all of <, ==, > are false; only != is true for NaN).
func (x *BigInt) CompareFloat64(f float64) (c int, ok bool) {
	if math.IsNaN(f) {
		return 0, false
	}
	if math.IsInf(f, 1) {
		return -1, true
	}
	if math.IsInf(f, -1) {
		return 1, true
	}

	xneg := x.Sign() < 0
	fneg := f < 0
	if xneg != fneg {
		if xneg {
			return -1, true
		}
		return 1, true
	}

	// Same sign: compare x's magnitude digit-wise against |f|'s exact
	// value, not against the lossy round-trip through x.Float64() (x
	// may not be exactly representable as a float64, and its nearest
	// double can coincide with f even though x != f). |f| is split
	// into its truncated integer part, compared against x's magnitude
	// via cmpAbs, and any leftover fractional part of |f| breaks an
	// exact tie in |f|'s favor.
	afs := math.Abs(f)
	cmpMag := cmpAbs(x.mag, magFromFloat64(afs))
	if cmpMag == 0 && afs != math.Trunc(afs) {
		cmpMag = -1
	}
	if xneg {
		cmpMag = -cmpMag
	}
	return cmpMag, true
}
