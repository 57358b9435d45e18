// SPDX-License-Identifier: MIT

package traversal

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by this package matches exactly one
// of them with errors.Is.
var (
	// ErrInvalidArgument reports bad caller input, detected before any work.
	ErrInvalidArgument = errors.New("traversal: invalid argument")

	// ErrInvariantViolation reports a degenerate distance table discovered
	// during the traversal.
	ErrInvariantViolation = errors.New("traversal: internal invariant violation")
)

// Specific sentinels; each wraps its category.
var (
	// ErrKOutOfRange is returned when k is outside [1, N].
	ErrKOutOfRange = fmt.Errorf("%w: k must be in [1, n]", ErrInvalidArgument)

	// ErrStartOutOfRange is returned when the start index is outside [0, N).
	ErrStartOutOfRange = fmt.Errorf("%w: start must be in [0, n)", ErrInvalidArgument)

	// ErrBadDistanceMatrix is returned for nil, non-square, empty, non-finite,
	// negative or non-zero-diagonal distance tables.
	ErrBadDistanceMatrix = fmt.Errorf("%w: malformed distance matrix", ErrInvalidArgument)

	// ErrBadPoints is returned when the point set cannot produce a distance table.
	ErrBadPoints = fmt.Errorf("%w: malformed point set", ErrInvalidArgument)

	// ErrUnknownMode is returned for a Mode value outside the declared constants.
	ErrUnknownMode = fmt.Errorf("%w: unknown mode", ErrInvalidArgument)

	// ErrNoProgress is returned when no unvisited candidate scores above zero
	// after the first iteration.
	ErrNoProgress = fmt.Errorf("%w: no candidate with a positive score", ErrInvariantViolation)
)
