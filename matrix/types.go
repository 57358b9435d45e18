// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Point sets (N×M feature vectors) and distance tables (N×N) both travel
// through this interface so that providers and selectors stay decoupled
// from a concrete storage layout.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// RowViewer is implemented by matrices that can expose a row without copying.
// Hot loops (distance kernels, traversal scans) type-assert for it and fall
// back to At otherwise.
type RowViewer interface {
	// Row returns row i as a slice sharing the matrix storage.
	// Returns ErrOutOfRange for invalid i.
	Row(i int) ([]float64, error)
}
