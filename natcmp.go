// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements magnitude comparison: longer wins, else
// lexicographic from the most significant digit.

package bigint

// cmpAbs compares the magnitudes x and y (both assumed canonical: no
// trailing zero digit) and returns -1, 0, or 1 as x < y, x == y, or
// x > y.
func cmpAbs(x, y DigitVector) int {
	m, n := len(x), len(y)
	switch {
	case m < n:
		return -1
	case m > n:
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}
