// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements schoolbook multiplication (Knuth Algorithm M) and
// the in-place "multiply by one digit, add one digit" helper used by
// string parsing (§4.8). Sub-quadratic multiplication is explicitly out
// of scope.

package bigint

// mulAbs returns |x| * |y| as an m+n digit result (before trimming).
// It always allocates into a fresh vector, so the caller may freely
// alias the result with either operand.
func mulAbs(x, y DigitVector) (DigitVector, error) {
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		return nil, nil
	}
	if m+n > MaxDigits || m+n < m {
		return nil, ErrOverflow
	}

	z, err := DigitVector(nil).Reserve(m + n)
	if err != nil {
		return nil, err
	}
	z = z.ResizeUnchecked(m + n)
	for i := range z {
		z[i] = 0
	}

	// For each pair (i, j): t = x[i]*y[j] + z[i+j] + k, writing the low
	// digit and carrying the high digit forward; the final carry of
	// each outer iteration lands in z[j+m].
	for j := 0; j < n; j++ {
		if y[j] == 0 {
			continue
		}
		z[j+m] = addRowInto(z, x, y[j], j, m)
	}

	return normalize(z), nil
}

// addRowInto accumulates x*y[j] onto z[j:j+m] (which already holds the
// partial sum from earlier rows) and returns the carry into z[j+m].
func addRowInto(z, x DigitVector, yj Word, j, m int) Word {
	var c Word
	for i := 0; i < m; i++ {
		hi, lo := mulAddWWW(x[i], yj, c)
		sum, carry := addWW(lo, z[j+i], 0)
		z[j+i] = sum
		c = hi + carry
	}
	return c
}

// mulAddDigit returns self*v + r, where v and r are single digits. It
// works on a copy of self and leaves the argument's digits untouched.
// It does not trim; the caller finalises. Used by string
// parsing to fold in a batch of digits with one large-integer multiply
// per batch instead of one per character (§4.4).
//
// For each digit d of self: t = d*v + k; d := low(t); k := high(t). If a
// residual k != 0 remains once every existing digit has been processed,
// it is pushed as one more digit.
func mulAddDigit(self DigitVector, v, r Word) (DigitVector, error) {
	self = self.clone()
	k := mulAddVWW(self, self, v, r)
	if k != 0 {
		var err error
		if self, err = self.PushBack(k); err != nil {
			return self, err
		}
	}
	return self, nil
}
