// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the division core: the divmod dispatcher, the
// single-digit algorithm (Knuth exercise 4.3.1.16), Knuth's Algorithm D
// for multi-digit divisors, and a binary long division used only as a
// property-test oracle.

package bigint

// divModAbs computes q, r such that n == q*d + r, 0 <= r < d, for
// |n| / |d|. It fails with ErrDivisionByZero if d is zero.
func divModAbs(n, d DigitVector) (q, r DigitVector, err error) {
	if len(d) == 0 {
		return nil, nil, ErrDivisionByZero
	}
	if cmpAbs(n, d) < 0 {
		return nil, n.clone(), nil
	}
	if len(d) == 1 {
		return divModWord(n, d[0])
	}
	return divModKnuthD(n, d)
}

// divModWord divides the multi-digit n by the single digit d, walking
// digits from the top with a running double-digit remainder.
func divModWord(n DigitVector, d Word) (q, r DigitVector, err error) {
	m := len(n)
	q, err = DigitVector(nil).Reserve(m)
	if err != nil {
		return nil, nil, err
	}
	q = q.ResizeUnchecked(m)

	var rem Word
	for j := m - 1; j >= 0; j-- {
		q[j], rem = divWW(rem, n[j], d)
	}
	q = normalize(q)
	if rem != 0 {
		r = DigitVector{rem}
	}
	return q, r, nil
}

// divModKnuthD implements Knuth's Algorithm D (TAOCP Vol. 2, §4.3.1) for
// len(d) >= 2. It normalises both operands by a left shift that sets the
// divisor's top bit, estimates each quotient digit from the top two
// digits of the (shifted) dividend and the divisor's leading digit,
// corrects the estimate against the divisor's second digit, then
// multiplies-and-subtracts with an add-back on underflow.
func divModKnuthD(n, d DigitVector) (q, r DigitVector, err error) {
	nn, nd := len(n), len(d)
	m := nn - nd

	shift := nlz(d[nd-1])

	v := make(DigitVector, nd)
	shlVU(v, d, shift)

	u := make(DigitVector, nn+1)
	u[nn] = shlVU(u[:nn], n, shift)

	q, err = DigitVector(nil).Reserve(m + 1)
	if err != nil {
		return nil, nil, err
	}
	q = q.ResizeUnchecked(m + 1)

	qhatv := make(DigitVector, nd+1)

	vn1 := v[nd-1]
	vn2 := v[nd-2]

	for j := m; j >= 0; j-- {
		// D3: estimate qhat. u[j+n] == v[n-1] would overflow a
		// single-word quotient out of divWW, so that case is capped
		// at the largest possible digit directly; either way, the
		// correction loop below still has to run against rhat - qhat
		// can start out 2 too large in either branch, and only one of
		// those two excess counts is absorbed by D6's add-back.
		var qhat, rhat Word
		var rhatOverflowed Word
		ujn := u[j+nd]
		ujn1 := u[j+nd-1]
		if ujn == vn1 {
			qhat = wordMax
			rhat, rhatOverflowed = addWW(vn1, ujn1, 0)
		} else {
			qhat, rhat = divWW(ujn, ujn1, vn1)
		}
		if rhatOverflowed == 0 {
			x1, x2 := mulWW(qhat, vn2)
			ujn2 := u[j+nd-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prevRhat := rhat
				rhat += vn1
				if rhat < prevRhat {
					// rhat overflowed past B: it is now
					// unconditionally >= B, so the test
					// above can never trigger again.
					break
				}
				x1, x2 = mulWW(qhat, vn2)
			}
		}

		// D4: multiply and subtract.
		qhatv[nd] = mulAddVWW(qhatv[:nd], v, qhat, 0)
		c := subVV(u[j:j+len(qhatv)], u[j:], qhatv)

		// D5/D6: add back if the subtraction underflowed.
		if c != 0 {
			c := addVV(u[j:j+nd], u[j:], v)
			u[j+nd] += c
			qhat--
		}

		q[j] = qhat
	}

	q = normalize(q)

	shrVU(u[:nd], u[:nd], shift)
	r = normalize(u[:nd])

	return q, r, nil
}

// divModBinary recomputes q, r for |n| / |d| using unsigned binary long
// division: O(bitlen(n) * len(d)) rather than Knuth D's O(len(n)*len(d)),
// but simple enough to serve as a trusted property-test oracle for the
// faster algorithm above.
func divModBinary(n, d DigitVector) (q, r DigitVector, err error) {
	if len(d) == 0 {
		return nil, nil, ErrDivisionByZero
	}
	nbits := bitLenAbs(n)
	q = zeroExtended(nil, len(n))
	r = nil
	for i := nbits - 1; i >= 0; i-- {
		r, err = shiftLeftAbs(r, 1)
		if err != nil {
			return nil, nil, err
		}
		if testBitAbs(n, uint(i)) {
			r = setLowBit(r)
		}
		if cmpAbs(r, d) >= 0 {
			r = subAbsGT(r, d)
			q = setBitAbs(q, uint(i))
		}
	}
	return normalize(q), normalize(r), nil
}

// setLowBit returns r with bit 0 set, growing it if it was empty.
func setLowBit(r DigitVector) DigitVector {
	if len(r) == 0 {
		return DigitVector{1}
	}
	r[0] |= 1
	return r
}
