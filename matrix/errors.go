// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and indexers return these sentinels (possibly wrapped with
// positional context); callers match them via errors.Is. No exported function
// panics on user input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonRectangular indicates ragged input rows.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
