// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignedBasic(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		base    int
		wantNeg bool
		wantDec string
	}{
		{"plain decimal", "12345", 10, false, "12345"},
		{"explicit plus", "+000000", 10, false, "0"},
		{"leading whitespace and minus", "  -6789", 10, true, "6789"},
		{"hex lowercase", "ff", 16, false, "255"},
		{"hex uppercase", "FF", 16, false, "255"},
		{"base 36", "z", 36, false, "35"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			neg, mag, err := parseSigned(tc.s, tc.base)
			require.NoError(t, err)
			assert.Equal(t, tc.wantNeg, neg)
			assert.Equal(t, tc.wantDec, formatAbs(mag, 10))
		})
	}
}

func TestParseSignedStopsAtFirstNonDigit(t *testing.T) {
	neg, mag, err := parseSigned("123abc!", 10)
	require.NoError(t, err)
	assert.False(t, neg)
	assert.Equal(t, "123", formatAbs(mag, 10))
}

func TestParseSignedErrors(t *testing.T) {
	tests := []struct {
		name string
		s    string
		base int
	}{
		{"empty string", "", 10},
		{"whitespace only", "   ", 10},
		{"sign only", "  -", 10},
		{"base too small", "0", 1},
		{"base too large", "0", 37},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := parseSigned(tc.s, tc.base)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestFormatAbsZero(t *testing.T) {
	assert.Equal(t, "0", formatAbs(nil, 10))
}

func TestFormatAbsRoundTripAllBases(t *testing.T) {
	_, mag, err := parseSigned("123456789012345678901234567890", 10)
	require.NoError(t, err)

	for base := 2; base <= 36; base++ {
		s := formatAbs(mag, base)
		_, back, err := parseSigned(s, base)
		require.NoError(t, err)
		assert.Equal(t, mag, back, "base %d", base)
	}
}

func TestFormatAbsNoLeadingZeros(t *testing.T) {
	_, mag, err := parseSigned("256", 10)
	require.NoError(t, err)
	s := formatAbs(mag, 16)
	assert.Equal(t, "100", s)
	assert.NotEqual(t, byte('0'), s[0])
}
