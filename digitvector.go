// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements DigitVector, the owned, contiguous, little-endian
// digit buffer that backs a BigInt's magnitude.

package bigint

// MaxDigits is the hard ceiling on the number of digits a DigitVector may
// ever hold. It plays the role of min(SIZE_MAX/sizeof(Digit),
// ULONG_MAX/W): a bound comfortably below what an int-indexed Go slice
// can address on any supported platform, chosen so that size*wordBits
// and size-in-bytes computations never overflow int.
const MaxDigits = 1<<31 - 1

// DigitVector is a least-significant-digit-first sequence of base-B
// words. A nil or zero-length DigitVector represents the magnitude 0.
//
// DigitVector values are never shared: every operation that grows or
// mutates one either reuses its own backing array or allocates a fresh
// one, never writing through a slice another DigitVector still refers
// to that it does not own.
type DigitVector []Word

// Size reports the number of digits currently in use.
func (d DigitVector) Size() int { return len(d) }

// Capacity reports the number of digits the underlying array can hold
// without reallocation.
func (d DigitVector) Capacity() int { return cap(d) }

// extraCapacity is appended on growth so that a short run of successive
// PushBack calls doesn't reallocate on every call.
const extraCapacity = 4

// Reserve grows d's capacity to at least n digits, preserving the
// existing contents in [0, Size()). It never shrinks an existing
// allocation. Reserve fails with ErrOverflow if n exceeds MaxDigits.
func (d DigitVector) Reserve(n int) (DigitVector, error) {
	if n > MaxDigits {
		return d, ErrOverflow
	}
	if n <= cap(d) {
		return d, nil
	}
	grown := make(DigitVector, len(d), n+extraCapacity)
	copy(grown, d)
	return grown, nil
}

// Resize sets d's size to n, reserving additional capacity if needed.
// Digits newly exposed by growth are zero-filled; algorithms that rely
// on every exposed position being meaningful must still write it before
// reading it back. Resize truncates when n < Size().
func (d DigitVector) Resize(n int) (DigitVector, error) {
	old := len(d)
	if n > cap(d) {
		var err error
		if d, err = d.Reserve(n); err != nil {
			return d, err
		}
	}
	d = d[:n]
	for i := old; i < n; i++ {
		d[i] = 0
	}
	return d, nil
}

// ResizeUnchecked sets d's size to n without zeroing or bounds-checking
// against MaxDigits. The caller must already have reserved at least n
// digits of capacity (e.g. via Reserve) and must write every position it
// depends on before reading it.
func (d DigitVector) ResizeUnchecked(n int) DigitVector {
	return d[:n]
}

// PushBack appends one digit, growing capacity by at least one if
// needed. It fails with ErrOverflow if the vector is already at
// MaxDigits.
func (d DigitVector) PushBack(w Word) (DigitVector, error) {
	if len(d) >= MaxDigits {
		return d, ErrOverflow
	}
	return append(d, w), nil
}

// clone returns an independent copy of d, owning its own backing array.
func (d DigitVector) clone() DigitVector {
	if len(d) == 0 {
		return nil
	}
	c := make(DigitVector, len(d))
	copy(c, d)
	return c
}

// zeroExtended returns a fresh DigitVector of exactly width digits,
// containing d's digits zero-padded (or truncated, which callers never
// ask for) on the high end.
func zeroExtended(d DigitVector, width int) DigitVector {
	v := make(DigitVector, width)
	copy(v, d)
	return v
}
