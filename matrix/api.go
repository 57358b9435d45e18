// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock row-view fast paths (no per-cell At calls).
//   - Use ReadRow in hot loops that must accept any Matrix implementation.

package matrix

// error context tags for facades.
const (
	ctxReadRow = "ReadRow"
	ctxToRows  = "ToRows"
)

// ReadRow returns row i of m.
// Implementation:
//   - Stage 1: if m implements RowViewer, return its no-copy view (dst is untouched).
//   - Stage 2: otherwise fill dst (grown when shorter than Cols) through At.
//
// Behavior highlights:
//   - The returned slice may alias m's storage; treat it as read-only.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (wrapped).
//
// Complexity:
//   - O(1) for RowViewer, O(c) otherwise.
func ReadRow(m Matrix, i int, dst []float64) ([]float64, error) {
	if m == nil {
		return nil, validatorErrorf(ctxReadRow, ErrNilMatrix)
	}
	if rv, ok := m.(RowViewer); ok {
		return rv.Row(i)
	}
	if i < 0 || i >= m.Rows() {
		return nil, cellErrorf(ctxReadRow, i, 0, ErrOutOfRange)
	}

	c := m.Cols()
	if cap(dst) < c {
		dst = make([]float64, c)
	}
	dst = dst[:c]

	var (
		j   int
		err error
	)
	for j = 0; j < c; j++ {
		if dst[j], err = m.At(i, j); err != nil {
			return nil, validatorErrorf(ctxReadRow, err)
		}
	}

	return dst, nil
}

// ToRows copies m into a freshly allocated [][]float64.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if m == nil {
		return nil, validatorErrorf(ctxToRows, ErrNilMatrix)
	}
	out := make([][]float64, m.Rows())

	var (
		row []float64
		i   int
		err error
	)
	for i = range out {
		if row, err = ReadRow(m, i, nil); err != nil {
			return nil, validatorErrorf(ctxToRows, err)
		}
		out[i] = append([]float64(nil), row...)
	}

	return out, nil
}
