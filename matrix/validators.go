// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep providers/selectors minimal by delegating shape/nil/numeric checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can match
//    them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, scan rows in ascending order and stop
//    at the first violation.
//  - Dense inputs are scanned through Row views; other implementations fall back
//    to At with one scratch row.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Square → Finite
//    → NonNegative → ZeroDiagonal → Symmetric), which is the documented error priority.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps an error with validator tag and coordinates.
func cellErrorf(tag string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, i, j, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols) and non-empty.
// Assumes m is not nil (caller must ensure).
//
// Errors: ErrNonSquare if Rows != Cols, ErrInvalidDimensions if empty.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	if m.Rows() <= 0 {
		return validatorErrorf("ValidateSquare", ErrInvalidDimensions)
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf anywhere in m.
//
// Errors: ErrNilMatrix, ErrNaNInf (with coordinates of the first offender).
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}

	return scanCells(m, "ValidateFinite", func(_, _ int, v float64) error {
		if !isFinite(v) {
			return ErrNaNInf
		}

		return nil
	})
}

// ValidateNonNegative rejects negative entries. NaN is not reported here;
// run ValidateFinite first for a complete check.
//
// Errors: ErrNilMatrix, ErrNegativeValue.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonNegative", err)
	}

	return scanCells(m, "ValidateNonNegative", func(_, _ int, v float64) error {
		if v < 0 {
			return ErrNegativeValue
		}

		return nil
	})
}

// ValidateZeroDiagonal checks |A[i,i]| ≤ tol for every i of a square matrix.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrNonZeroDiagonal.
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateZeroDiagonal", err)
	}
	if !isFinite(tol) {
		return validatorErrorf("ValidateZeroDiagonal", ErrNaNInf)
	}
	tol = math.Abs(tol)

	var (
		i   int
		aii float64
		err error
	)
	for i = 0; i < m.Rows(); i++ {
		if aii, err = m.At(i, i); err != nil {
			return validatorErrorf("ValidateZeroDiagonal", err)
		}
		if math.Abs(aii) > tol {
			return cellErrorf("ValidateZeroDiagonal", i, i, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Errors: ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on bad tol,
// ErrAsymmetry on violation.
// Complexity: O(n²) on the strict upper triangle. Space: O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if !isFinite(tol) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // indices are in range after the shape check
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return cellErrorf("ValidateSymmetric", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateDistance checks that m is a usable distance table.
// Implementation:
//   - Stage 1: non-nil, square, non-empty.
//   - Stage 2: finite entries, then non-negative entries.
//   - Stage 3: zero diagonal within eps.
//   - Stage 4: symmetry within eps when WithRequireSymmetry is set.
//
// Errors:
//   - The first violated stage's sentinel (see error priority above).
//
// Complexity:
//   - Time O(n²), Space O(n) scratch for non-Dense inputs.
func ValidateDistance(m Matrix, opts ...Option) error {
	o := gatherOptions(opts...)
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateDistance", err)
	}

	err := scanCells(m, "ValidateDistance", func(_, _ int, v float64) error {
		if !isFinite(v) {
			return ErrNaNInf
		}
		if v < 0 {
			return ErrNegativeValue
		}

		return nil
	})
	if err != nil {
		return err
	}
	if err = ValidateZeroDiagonal(m, o.eps); err != nil {
		return validatorErrorf("ValidateDistance", err)
	}
	if o.requireSymmetry {
		if err = ValidateSymmetric(m, o.eps); err != nil {
			return validatorErrorf("ValidateDistance", err)
		}
	}

	return nil
}

// scanCells visits every cell in row-major order and stops at the first
// error returned by check, wrapping it with tag and coordinates.
func scanCells(m Matrix, tag string, check func(i, j int, v float64) error) error {
	var (
		r, c    = m.Rows(), m.Cols()
		scratch []float64
		row     []float64
		i, j    int
		err     error
	)
	for i = 0; i < r; i++ {
		if row, err = ReadRow(m, i, scratch); err != nil {
			return validatorErrorf(tag, err)
		}
		scratch = row
		for j = 0; j < c; j++ {
			if err = check(i, j, row[j]); err != nil {
				return cellErrorf(tag, i, j, err)
			}
		}
	}

	return nil
}
