// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitVectorReserveResize(t *testing.T) {
	var d DigitVector
	d, err := d.Reserve(10)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, d.Capacity(), 10)
	assert.Equal(t, 0, d.Size())

	d, err = d.Resize(3)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Size())
	for _, w := range d {
		assert.Equal(t, Word(0), w)
	}

	d, err = d.Resize(1)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Size())
}

func TestDigitVectorReserveOverflow(t *testing.T) {
	var d DigitVector
	_, err := d.Reserve(MaxDigits + 1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestDigitVectorPushBack(t *testing.T) {
	var d DigitVector
	var err error
	for i := Word(0); i < 5; i++ {
		d, err = d.PushBack(i)
		require.NoError(t, err)
	}
	assert.Equal(t, DigitVector{0, 1, 2, 3, 4}, d)
}

func TestDigitVectorCloneIndependence(t *testing.T) {
	d := DigitVector{1, 2, 3}
	c := d.clone()
	c[0] = 99
	assert.Equal(t, Word(1), d[0])
}

func TestNormalizeTrimsTrailingZeros(t *testing.T) {
	d := DigitVector{1, 2, 0, 0}
	assert.Equal(t, DigitVector{1, 2}, normalize(d))
	assert.Equal(t, DigitVector(nil), normalize(DigitVector{0, 0, 0}))
}

func TestBigIntTrimClearsSignOnZero(t *testing.T) {
	z := &BigInt{neg: true, mag: DigitVector{0, 0}}
	z.trim()
	assert.False(t, z.neg)
	assert.True(t, z.IsZero())
}
