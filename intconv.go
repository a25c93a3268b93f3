// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements BigInt<->string and BigInt<->native-integer
// conversion: SetString/ParseBigInt, String/Text, and the to-native
// conversions, which mask (wrap modulo 2^N) rather than error on
// out-of-range input - see §9's Open Question #2.

package bigint

import "golang.org/x/exp/constraints"

// ParseBigInt parses s as a signed base-b integer and returns the
// result. See SetString for the accepted syntax. base must be in
// [2, 36].
func ParseBigInt(s string, base int) (*BigInt, error) {
	return new(BigInt).SetString(s, base)
}

// SetString sets z to the value of s, interpreted in the given base,
// and returns z. The syntax is: optional leading whitespace, an
// optional '+' or '-', then one or more base-b digits (letters a-z/A-Z
// encode 10-35, case-insensitively); parsing stops at the first
// character that is not a valid base-b digit, and any remainder is
// ignored. It fails with ErrInvalidArgument if base is outside [2, 36]
// or if no digit is found, leaving z unchanged.
func (z *BigInt) SetString(s string, base int) (*BigInt, error) {
	neg, mag, err := parseSigned(s, base)
	if err != nil {
		return z, err
	}
	z.neg, z.mag = neg, mag
	return z, nil
}

// String returns the base-10 representation of x: "0" for zero,
// otherwise a minimal decimal with a leading '-' iff x is negative.
func (x *BigInt) String() string {
	return x.Text(10)
}

// Text returns the base-b representation of x, "0" for zero, otherwise
// a minimal representation (no leading zeros) with a leading '-' iff x
// is negative. base must be in [2, 36]; Text panics otherwise, since
// unlike parsing there is no caller-facing failure path for a
// programming error in a constant argument.
func (x *BigInt) Text(base int) string {
	if base < 2 || base > 36 {
		panic("bigint: Text: base out of range")
	}
	s := formatAbs(x.mag, base)
	if x.neg {
		return "-" + s
	}
	return s
}

// Int64 returns x modulo 2^64 as an int64 (the low 64 bits of x's
// two's-complement form), masking (wrapping) rather than erroring if x
// does not fit. Use CompareInt/CompareUint against math.MinInt64 and
// math.MaxInt64-style bounds first if an in-range guarantee is needed.
func (x *BigInt) Int64() int64 {
	return int64(x.Uint64())
}

// Uint64 returns x modulo 2^64 (the low 64 bits of x's two's-complement
// form), masking (wrapping) rather than erroring if x does not fit.
func (x *BigInt) Uint64() uint64 {
	var v uint64
	switch {
	case len(x.mag) == 0:
		return 0
	case wordBits == 64:
		v = uint64(x.mag[0])
	case len(x.mag) == 1:
		v = uint64(x.mag[0])
	default:
		v = uint64(x.mag[0]) | uint64(x.mag[1])<<32
	}
	if x.neg {
		v = -v
	}
	return v
}

// ToInt returns x's low bits truncated (masked) to native signed type T.
func ToInt[T constraints.Signed](x *BigInt) T {
	return T(x.Int64())
}

// ToUint returns x's low bits truncated (masked) to native unsigned
// type T.
func ToUint[T constraints.Unsigned](x *BigInt) T {
	return T(x.Uint64())
}

// Bool reports whether x is nonzero.
func (x *BigInt) Bool() bool {
	return len(x.mag) != 0
}
