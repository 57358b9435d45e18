// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 matrix used for point sets and
// distance tables.
//
// The matrix package provides:
//
//   - Matrix: a small bounds-checked interface (Rows, Cols, At, Set, Clone).
//   - Dense: row-major storage with no-copy Row views and an optional
//     finite-only numeric policy.
//   - Validators: ValidateSquare, ValidateFinite, ValidateZeroDiagonal,
//     ValidateSymmetric and the composite ValidateDistance.
//   - A gonum bridge (Dense.Gonum, FromGonum) for callers already holding
//     gonum matrices.
//
// Errors are package sentinels (errors.go) wrapped with call-site context;
// match them with errors.Is.
package matrix
