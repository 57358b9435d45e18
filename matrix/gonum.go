// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const ctxGonum = "Gonum"

// Gonum returns a *mat.Dense sharing m's backing buffer.
// Mutations through either value are visible in the other; the numeric
// policy of m is not enforced on writes made through gonum.
//
// Complexity: O(1).
func (m *Dense) Gonum() *mat.Dense {
	return mat.NewDense(m.r, m.c, m.data)
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
// The numeric policy from opts applies to every copied value.
//
// Errors:
//   - ErrNilMatrix for nil input, ErrInvalidDimensions for empty input,
//     ErrNaNInf when the policy rejects a value.
//
// Complexity: O(r*c).
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, validatorErrorf(ctxGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = g.At(i, j)
			if m.validateNaNInf && !isFinite(v) {
				return nil, cellErrorf(ctxGonum, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}
