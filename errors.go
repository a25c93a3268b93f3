// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file defines the error kinds surfaced by the bigint core.

package bigint

import "errors"

// Distinct error values returned by the core. Callers may compare with
// errors.Is; none of them wrap another error kind.
var (
	// ErrInvalidArgument is returned when a string does not parse as a
	// signed base-b integer literal, or when a requested base is outside
	// [2, 36].
	ErrInvalidArgument = errors.New("bigint: invalid argument")

	// ErrDivisionByZero is returned by DivMod, Quo, and Rem when the
	// divisor is zero.
	ErrDivisionByZero = errors.New("bigint: division by zero")

	// ErrOverflow is returned when an operation's result would require a
	// digit vector longer than MaxDigits, or when an internal bit count
	// overflows.
	ErrOverflow = errors.New("bigint: overflow")

	// ErrFromFloat is returned when a value is constructed from a NaN or
	// infinite float64.
	ErrFromFloat = errors.New("bigint: value not representable from float")
)
