// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements BigInt, the sign-magnitude signed integer that
// ties the lower layers together: construction from native integers,
// the signed arithmetic operators, comparisons, and sign-aware
// increment/decrement. The shift and bitwise cores' sign handling lives
// in shift.go and bitwise.go.

package bigint

import "golang.org/x/exp/constraints"

// A BigInt represents a signed integer of arbitrary size. The zero
// value for a BigInt represents 0 and is ready to use.
type BigInt struct {
	neg bool       // sign; always false when mag is empty
	mag DigitVector // absolute value, little-endian, no trailing zero digit
}

// Go methods cannot introduce their own type parameters, so the
// native-integer bridge is: concrete SetInt64/SetUint64 methods doing
// the real work, plus generic free functions (FromInt, FromUint) and a
// generic SetAny that adapt any signed or unsigned native integer type
// onto them.

// FromInt returns a new BigInt set to v, for any native signed integer
// type. Construction from a native integer always succeeds.
func FromInt[T constraints.Signed](v T) *BigInt {
	return new(BigInt).SetInt64(int64(v))
}

// FromUint returns a new BigInt set to v, for any native unsigned
// integer type.
func FromUint[T constraints.Unsigned](v T) *BigInt {
	return new(BigInt).SetUint64(uint64(v))
}

// SetAny sets z to v, for any native signed or unsigned integer type,
// and returns z.
func SetAny[T constraints.Integer](z *BigInt, v T) *BigInt {
	if v < 0 {
		return z.SetInt64(int64(v))
	}
	return z.SetUint64(uint64(v))
}

// SetInt64 sets z to v and returns z.
func (z *BigInt) SetInt64(v int64) *BigInt {
	if v == 0 {
		z.mag = nil
		z.neg = false
		return z
	}
	neg := v < 0
	// Cast through the unsigned counterpart before negating so the
	// most negative int64 doesn't overflow (-MinInt64 is not
	// representable as an int64).
	u := uint64(v)
	if neg {
		u = -u
	}
	z.mag = digitsFromUint64(u)
	z.neg = neg
	return z
}

// SetUint64 sets z to v and returns z.
func (z *BigInt) SetUint64(v uint64) *BigInt {
	z.mag = digitsFromUint64(v)
	z.neg = false
	return z
}

// digitsFromUint64 returns the little-endian digit sequence for u,
// using one digit when u fits and two when wordBits == 32 and it
// doesn't.
func digitsFromUint64(u uint64) DigitVector {
	if u == 0 {
		return nil
	}
	if wordBits == 64 {
		return DigitVector{Word(u)}
	}
	if u <= uint64(wordMax) {
		return DigitVector{Word(u)}
	}
	return DigitVector{Word(u), Word(u >> 32)}
}

// Sign returns -1, 0, or +1 depending on whether x is negative, zero, or
// positive.
func (x *BigInt) Sign() int {
	switch {
	case len(x.mag) == 0:
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Abs sets z to |x| and returns z.
func (z *BigInt) Abs(x *BigInt) *BigInt {
	z.mag = x.mag.clone()
	z.neg = false
	return z
}

// Negate sets z to -x and returns z.
func (z *BigInt) Negate(x *BigInt) *BigInt {
	z.mag = x.mag.clone()
	z.neg = !x.neg && len(z.mag) > 0
	return z
}

// IsZero reports whether x == 0.
func (x *BigInt) IsZero() bool { return len(x.mag) == 0 }

// Parity returns 0 if x is even, 1 if x is odd.
func (x *BigInt) Parity() int {
	if len(x.mag) == 0 {
		return 0
	}
	return int(x.mag[0] & 1)
}

// Add sets z to x+y and returns z. It fails with ErrOverflow only if the
// result's magnitude would exceed MaxDigits; z is left unchanged in that
// case.
func (z *BigInt) Add(x, y *BigInt) (*BigInt, error) {
	mag, neg, err := addSigned(x.neg, x.mag, y.neg, y.mag)
	if err != nil {
		return z, err
	}
	z.mag, z.neg = mag, neg
	return z.trim(), nil
}

// Sub sets z to x-y and returns z. See Add for failure semantics.
func (z *BigInt) Sub(x, y *BigInt) (*BigInt, error) {
	mag, neg, err := subSigned(x.neg, x.mag, y.neg, y.mag)
	if err != nil {
		return z, err
	}
	z.mag, z.neg = mag, neg
	return z.trim(), nil
}

// Mul sets z to x*y and returns z. See Add for failure semantics.
func (z *BigInt) Mul(x, y *BigInt) (*BigInt, error) {
	mag, err := mulAbs(x.mag, y.mag)
	if err != nil {
		return z, err
	}
	z.mag = mag
	z.neg = x.neg != y.neg
	return z.trim(), nil
}

// DivMod sets z to the quotient x/y and r to the remainder x%y in one
// pass, and returns (z, r). Division truncates toward zero and the
// remainder takes the sign of x (or is zero), matching the C/C++
// integer-division contract: z*y + r == x and |r| < |y|. It fails with
// ErrDivisionByZero if y is zero; z and r are left unchanged in that
// case.
func (z *BigInt) DivMod(x, y, r *BigInt) (*BigInt, *BigInt, error) {
	qmag, rmag, err := divModAbs(x.mag, y.mag)
	if err != nil {
		return z, r, err
	}
	// Take both signs before writing either result, in case z or r
	// aliases x or y.
	qneg, rneg := x.neg != y.neg, x.neg && len(rmag) > 0
	z.mag, z.neg = qmag, qneg
	r.mag, r.neg = rmag, rneg
	z.trim()
	r.trim()
	return z, r, nil
}

// Quo sets z to the truncated quotient x/y and returns z.
func (z *BigInt) Quo(x, y *BigInt) (*BigInt, error) {
	var r BigInt
	z, _, err := z.DivMod(x, y, &r)
	return z, err
}

// Rem sets z to the truncated remainder x%y and returns z.
func (z *BigInt) Rem(x, y *BigInt) (*BigInt, error) {
	var q BigInt
	_, z, err := q.DivMod(x, y, z)
	return z, err
}

// Inc sets z to x+1 and returns z (§4.12: positive magnitudes increment
// directly; a negative operand's magnitude is decremented instead, and
// the sign is cleared when that leaves zero).
func (z *BigInt) Inc(x *BigInt) *BigInt {
	if !x.neg {
		mag, err := addAbs(x.mag, DigitVector{1})
		if err != nil {
			panic(err) // incrementing by one digit cannot overflow MaxDigits in practice
		}
		z.mag, z.neg = mag, false
		return z
	}
	// x < 0: x+1 has magnitude |x|-1, still negative unless |x| == 1.
	mag := decrementAbs(x.mag)
	z.mag = mag
	z.neg = len(mag) > 0
	return z
}

// Dec sets z to x-1 and returns z.
func (z *BigInt) Dec(x *BigInt) *BigInt {
	if x.neg {
		mag, err := addAbs(x.mag, DigitVector{1})
		if err != nil {
			panic(err)
		}
		z.mag, z.neg = mag, true
		return z
	}
	// x >= 0: x-1 has magnitude |x|-1 if x != 0, else magnitude 1, negative.
	if len(x.mag) == 0 {
		z.mag = DigitVector{1}
		z.neg = true
		return z
	}
	z.mag = decrementAbs(x.mag)
	z.neg = false
	return z
}

// decrementAbs returns |x|-1, assuming |x| >= 1 (x nonzero). Applied to
// the one-digit magnitude {1} it yields the empty (zero) magnitude.
func decrementAbs(x DigitVector) DigitVector {
	return subAbsGT(x, DigitVector{1})
}

// Cmp compares x and y and returns -1, 0, or +1 as x<y, x==y, x>y.
func (x *BigInt) Cmp(y *BigInt) int {
	switch {
	case x.neg == y.neg:
		c := cmpAbs(x.mag, y.mag)
		if x.neg {
			return -c
		}
		return c
	case x.neg:
		return -1
	default:
		return 1
	}
}

// CmpAbs compares |x| and |y| and returns -1, 0, or +1.
func (x *BigInt) CmpAbs(y *BigInt) int {
	return cmpAbs(x.mag, y.mag)
}

// CompareInt compares x against the native integer v without
// constructing a temporary BigInt, and returns -1, 0, or +1.
func CompareInt[T constraints.Signed](x *BigInt, v T) int {
	i64 := int64(v)
	vneg := i64 < 0
	u := uint64(i64)
	if vneg {
		u = -u
	}
	return compareSigned(x.neg, x.mag, vneg, u)
}

// CompareUint compares x against the native unsigned integer v without
// constructing a temporary BigInt, and returns -1, 0, or +1.
func CompareUint[T constraints.Unsigned](x *BigInt, v T) int {
	return compareSigned(x.neg, x.mag, false, uint64(v))
}

func compareSigned(xneg bool, xmag DigitVector, vneg bool, vabs uint64) int {
	xIsZero := len(xmag) == 0
	vIsZero := vabs == 0
	switch {
	case xIsZero && vIsZero:
		return 0
	case xIsZero:
		if vneg {
			return 1
		}
		return -1
	case vIsZero:
		if xneg {
			return -1
		}
		return 1
	case xneg != vneg:
		if xneg {
			return -1
		}
		return 1
	default:
		c := cmpAbsUint64(xmag, vabs)
		if xneg {
			return -c
		}
		return c
	}
}

// cmpAbsUint64 compares the magnitude mag against the absolute value
// vabs. It derives vabs's effective digit count and digit values into
// plain locals instead of building a DigitVector, so no temporary
// BigInt or digit buffer is ever allocated for this comparison.
func cmpAbsUint64(mag DigitVector, vabs uint64) int {
	var n int
	var lo, hi Word
	if wordBits == 64 {
		if vabs != 0 {
			n, lo = 1, Word(vabs)
		}
	} else if vabs != 0 {
		if vabs <= uint64(wordMax) {
			n, lo = 1, Word(vabs)
		} else {
			n, lo, hi = 2, Word(vabs), Word(vabs>>32)
		}
	}

	m := len(mag)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	if n == 2 && mag[1] != hi {
		if mag[1] < hi {
			return -1
		}
		return 1
	}
	if n >= 1 && mag[0] != lo {
		if mag[0] < lo {
			return -1
		}
		return 1
	}
	return 0
}
