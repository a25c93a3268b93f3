// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAbsCommutative(t *testing.T) {
	x := DigitVector{0xFFFFFFFF, 0x1}
	y := DigitVector{0x2, 0x3}

	xy, err := addAbs(x, y)
	require.NoError(t, err)
	yx, err := addAbs(y, x)
	require.NoError(t, err)
	assert.Equal(t, xy, yx)
}

func TestAddAbsCarriesIntoNewDigit(t *testing.T) {
	x := DigitVector{wordMax}
	y := DigitVector{1}
	sum, err := addAbs(x, y)
	require.NoError(t, err)
	assert.Equal(t, DigitVector{0, 1}, sum)
}

func TestSubAbsGTMatchesAddAbsInverse(t *testing.T) {
	x := DigitVector{5, 9}
	y := DigitVector{7}
	sum, err := addAbs(x, y)
	require.NoError(t, err)
	back := subAbsGT(sum, y)
	assert.Equal(t, normalize(x), back)
}

func TestSubAbsEqualIsZero(t *testing.T) {
	x := DigitVector{1, 2, 3}
	mag, neg := subAbs(x, x)
	assert.Equal(t, DigitVector(nil), mag)
	assert.False(t, neg)
}

func TestSubAbsSmallerMinusLarger(t *testing.T) {
	x := DigitVector{1}
	y := DigitVector{2}
	mag, neg := subAbs(x, y)
	assert.Equal(t, DigitVector{1}, mag)
	assert.True(t, neg)
}

func TestAddSignedDispatchTable(t *testing.T) {
	one := DigitVector{1}
	two := DigitVector{2}

	tests := []struct {
		name       string
		xneg, yneg bool
		xmag, ymag DigitVector
		wantMag    DigitVector
		wantNeg    bool
	}{
		{"pos+pos", false, false, one, two, DigitVector{3}, false},
		{"neg+neg", true, true, one, two, DigitVector{3}, true},
		{"pos+neg larger y", false, true, one, two, DigitVector{1}, true},
		{"neg+pos larger x", true, false, two, one, DigitVector{1}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mag, neg, err := addSigned(tc.xneg, tc.xmag, tc.yneg, tc.ymag)
			require.NoError(t, err)
			assert.Equal(t, tc.wantMag, mag)
			assert.Equal(t, tc.wantNeg, neg)
		})
	}
}
