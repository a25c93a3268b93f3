// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFloat64NaNAndInf(t *testing.T) {
	var z BigInt
	_, err := z.SetFloat64(math.NaN())
	assert.ErrorIs(t, err, ErrFromFloat)

	_, err = z.SetFloat64(math.Inf(1))
	assert.ErrorIs(t, err, ErrFromFloat)

	_, err = z.SetFloat64(math.Inf(-1))
	assert.ErrorIs(t, err, ErrFromFloat)
}

func TestSetFloat64FractionIsZero(t *testing.T) {
	var z BigInt
	_, err := z.SetFloat64(0.5)
	require.NoError(t, err)
	assert.True(t, z.IsZero())

	_, err = z.SetFloat64(-0.999)
	require.NoError(t, err)
	assert.True(t, z.IsZero())
}

func TestSetFloat64TruncatesTowardZero(t *testing.T) {
	var z BigInt
	_, err := z.SetFloat64(123.75)
	require.NoError(t, err)
	assert.Equal(t, int64(123), z.Int64())

	_, err = z.SetFloat64(-123.75)
	require.NoError(t, err)
	assert.Equal(t, int64(-123), z.Int64())
}

func TestFloat64RoundTripWithinExactRange(t *testing.T) {
	values := []float64{0, 1, -1, 12345, -999999, 1 << 40, -(1 << 50)}
	for _, v := range values {
		var z BigInt
		_, err := z.SetFloat64(v)
		require.NoError(t, err)
		assert.Equal(t, math.Trunc(v), z.Float64())
	}
}

func TestCompareFloat64NaN(t *testing.T) {
	z := FromInt(5)
	_, ok := z.CompareFloat64(math.NaN())
	assert.False(t, ok)
}

func TestCompareFloat64Infinities(t *testing.T) {
	z := FromInt(5)
	c, ok := z.CompareFloat64(math.Inf(1))
	require.True(t, ok)
	assert.Equal(t, -1, c)

	c, ok = z.CompareFloat64(math.Inf(-1))
	require.True(t, ok)
	assert.Equal(t, 1, c)
}

func TestCompareFloat64SameValue(t *testing.T) {
	z := FromInt(1000)
	c, ok := z.CompareFloat64(1000.0)
	require.True(t, ok)
	assert.Equal(t, 0, c)
}

// TestCompareFloat64BeyondFloatPrecision guards against comparing via a
// lossy round-trip through Float64: x is one more than 2^60, which is not
// exactly representable as a float64 (the ULP at 2^60 is 256), and its
// nearest double rounds down to exactly 2^60. A comparison that went
// through x.Float64() would see 2^60 == 2^60 and wrongly report equality.
func TestCompareFloat64BeyondFloatPrecision(t *testing.T) {
	x := FromInt[int64](1<<60 + 1)
	f := math.Ldexp(1, 60)

	require.Equal(t, f, x.Float64(), "nearest double should round down to 2^60")

	c, ok := x.CompareFloat64(f)
	require.True(t, ok)
	assert.Equal(t, 1, c)

	var negX BigInt
	negX.Negate(x)
	c, ok = negX.CompareFloat64(-f)
	require.True(t, ok)
	assert.Equal(t, -1, c)
}

func TestCompareFloat64FractionalBreaksTie(t *testing.T) {
	x := FromInt(5)
	c, ok := x.CompareFloat64(5.5)
	require.True(t, ok)
	assert.Equal(t, -1, c)

	var negX BigInt
	negX.Negate(x)
	c, ok = negX.CompareFloat64(-5.5)
	require.True(t, ok)
	assert.Equal(t, 1, c)
}
