// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the string bridge (§4.4): parsing a signed
// base-b literal, and formatting a magnitude in a chosen base via
// repeated division. Both directions batch up to the largest power of
// the base that fits in a single digit, bounding the number of
// large-integer multiplications/divisions to about len/e rather than
// len.

package bigint

import "strings"

const lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"

// maxBatch returns the largest exponent e such that base^e fits in a
// single Word, along with that power (the "batch base").
func maxBatch(base int) (e int, batchBase Word) {
	b := Word(base)
	batchBase = 1
	for batchBase <= wordMax/b {
		batchBase *= b
		e++
	}
	return e, batchBase
}

// digitValue returns the value of a base-b digit character (0-9, then
// a-z/A-Z for 10-35), or -1 if ch is not a valid digit in any
// supported base.
func digitValue(ch byte) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'z':
		return int(ch-'a') + 10
	case 'A' <= ch && ch <= 'Z':
		return int(ch-'A') + 10
	default:
		return -1
	}
}

// parseSigned parses an optional leading whitespace run, an optional
// sign, and a run of one or more base-b digits from s, stopping at the
// first character that is not a valid base-b digit (trailing garbage is
// accepted and ignored, per §4.4's chosen resolution of the parsing
// ambiguity). It fails with ErrInvalidArgument if base is outside
// [2, 36], or if no digit is found before the stop point.
func parseSigned(s string, base int) (neg bool, mag DigitVector, err error) {
	if base < 2 || base > 36 {
		return false, nil, ErrInvalidArgument
	}

	s = strings.TrimLeft(s, " \t\n\r\v\f")

	if len(s) > 0 {
		switch s[0] {
		case '+':
			s = s[1:]
		case '-':
			neg = true
			s = s[1:]
		}
	}

	e, _ := maxBatch(base)

	var acc DigitVector
	consumed := 0
	for len(s) > 0 {
		batch := Word(0)
		batchLen := 0
		batchPow := Word(1)
		for batchLen < e && len(s) > 0 {
			v := digitValue(s[0])
			if v < 0 || v >= base {
				break
			}
			batch = batch*Word(base) + Word(v)
			batchPow *= Word(base)
			batchLen++
			consumed++
			s = s[1:]
		}
		if batchLen == 0 {
			break
		}
		acc, err = mulAddDigit(acc, batchPow, batch)
		if err != nil {
			return false, nil, err
		}
	}

	if consumed == 0 {
		return false, nil, ErrInvalidArgument
	}

	mag = normalize(acc)
	if len(mag) == 0 {
		neg = false
	}
	return neg, mag, nil
}

// formatAbs returns the minimal base-b representation of the magnitude
// x (no sign, no leading zeros; "0" for the zero magnitude).
func formatAbs(x DigitVector, base int) string {
	if len(x) == 0 {
		return "0"
	}

	// Upper bound on the number of base-b digits: ceil(bitlen * log_b(2)) + 1.
	bitlen := bitLenAbs(x)
	capacity := bitlen/log2Floor(base) + 2

	buf := make([]byte, 0, capacity)
	e, batchBase := maxBatch(base)
	b := Word(base)

	work := x.clone()
	for len(work) > 0 {
		var rem Word
		work, rem = divRemWord(work, batchBase)
		if len(work) == 0 {
			// Final, most-significant batch: emit only as many
			// digits as rem actually has, so the overall number has
			// no leading zeros.
			for rem > 0 {
				buf = append(buf, lowerDigits[rem%b])
				rem /= b
			}
		} else {
			// A full interior batch always contributes exactly e
			// digits, zero-padded on the high end within the batch.
			for i := 0; i < e; i++ {
				buf = append(buf, lowerDigits[rem%b])
				rem /= b
			}
		}
	}

	// buf holds digits least-significant-first; reverse to get the
	// conventional most-significant-first string.
	reverseBytes(buf)
	return string(buf)
}

// divRemWord divides the magnitude x by the single digit d, returning
// the (normalized) quotient and the remainder.
func divRemWord(x DigitVector, d Word) (q DigitVector, r Word) {
	m := len(x)
	q = zeroExtended(nil, m)
	for j := m - 1; j >= 0; j-- {
		q[j], r = divWW(r, x[j], d)
	}
	return normalize(q), r
}

// log2Floor returns floor(log2(base)) for base in [2,36], used only to
// size the string buffer conservatively (it is always <= the true
// log2(base), so the computed capacity is never too small).
func log2Floor(base int) int {
	n := 0
	for b := base; b > 1; b >>= 1 {
		n++
	}
	if n == 0 {
		n = 1
	}
	return n
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
