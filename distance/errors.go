// SPDX-License-Identifier: MIT

package distance

import "errors"

var (
	// ErrEmptyPoints indicates a nil point matrix or one with no rows/columns.
	ErrEmptyPoints = errors.New("distance: point set is empty")

	// ErrBadOrder indicates a Minkowski order that is NaN or below 1.
	ErrBadOrder = errors.New("distance: Minkowski order must be >= 1")

	// ErrNonFinitePoint indicates a NaN or ±Inf coordinate.
	ErrNonFinitePoint = errors.New("distance: point coordinates must be finite")
)
