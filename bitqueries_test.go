// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitLenZero(t *testing.T) {
	var z BigInt
	assert.Equal(t, 0, z.BitLen())
}

func TestBitLenKnownValues(t *testing.T) {
	tests := []struct {
		v    int64
		want int
	}{
		{1, 1}, {2, 2}, {3, 2}, {4, 3}, {255, 8}, {256, 9},
	}
	for _, tc := range tests {
		x := FromInt(tc.v)
		assert.Equal(t, tc.want, x.BitLen(), "v=%d", tc.v)
	}
}

func TestTestBitMatchesNativeShifts(t *testing.T) {
	x := FromInt(0b10110)
	assert.False(t, x.TestBit(0))
	assert.True(t, x.TestBit(1))
	assert.True(t, x.TestBit(2))
	assert.False(t, x.TestBit(3))
	assert.True(t, x.TestBit(4))
	assert.False(t, x.TestBit(5))
	assert.False(t, x.TestBit(1000))
}

func TestSetBitGrowsAndPreservesSign(t *testing.T) {
	x := FromInt(-5)
	var z BigInt
	z.SetBit(x, 100)
	assert.True(t, z.neg)
	assert.True(t, z.TestBit(100))
	assert.True(t, z.TestBit(0))
	assert.True(t, z.TestBit(2))
}

func TestSetBitThenTestBitRoundTrip(t *testing.T) {
	var z BigInt
	for _, i := range []uint{0, 1, 31, 32, 63, 64, 200} {
		z.SetBit(&z, i)
		assert.True(t, z.TestBit(i))
	}
}
