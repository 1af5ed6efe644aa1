// SPDX-License-Identifier: MIT

// Package symbolic: sentinel error set.
// All failures surface as these sentinels, possibly wrapped with context via
// %w; callers match them with errors.Is.

package symbolic

import "errors"

var (
	// ErrUnboundVariable is returned by Evaluate when the expression
	// references a variable that the environment does not bind.
	ErrUnboundVariable = errors.New("symbolic: variable not bound in environment")

	// ErrNotEvaluable is returned by Evaluate for kinds that have no direct
	// numeric semantics (if-then-else placeholders, uninterpreted functions).
	ErrNotEvaluable = errors.New("symbolic: expression cannot be evaluated numerically")

	// ErrInvalidDimensions is returned when a requested matrix shape is not
	// strictly positive.
	ErrInvalidDimensions = errors.New("symbolic: matrix dimensions must be > 0")

	// ErrDimensionMismatch is returned when a flat entry slice does not
	// match the requested rows*cols size.
	ErrDimensionMismatch = errors.New("symbolic: entry count does not match matrix shape")

	// ErrIndexOutOfRange indicates a row or column index outside the matrix
	// bounds. At/Set return this instead of panicking.
	ErrIndexOutOfRange = errors.New("symbolic: matrix index out of range")
)
