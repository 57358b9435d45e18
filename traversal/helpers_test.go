// SPDX-License-Identifier: MIT
package traversal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/farthest/distance"
	"github.com/katalvlaran/farthest/matrix"
	"github.com/stretchr/testify/require"
)

// squareRows are the corners (0,0), (10,0), (0,10), (10,10).
var squareRows = [][]float64{{0, 0}, {10, 0}, {0, 10}, {10, 10}}

// mustDense builds a Dense without the finite-only guard so tests can
// inject NaN/Inf where needed.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	return m
}

// mustDistances returns the Euclidean distance table of rows.
func mustDistances(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := distance.Pairwise(mustDense(t, rows))
	require.NoError(t, err)

	return d
}

// randomRows returns n reproducible points in [0,1)^dim.
func randomRows(n, dim int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, dim)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()
		}
	}

	return rows
}

// cellMatrix implements matrix.Matrix without the Row fast path.
type cellMatrix struct {
	n     int
	cells [][]float64
}

func (m *cellMatrix) Rows() int { return m.n }
func (m *cellMatrix) Cols() int { return m.n }

func (m *cellMatrix) At(i, j int) (float64, error) {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		return 0, matrix.ErrOutOfRange
	}

	return m.cells[i][j], nil
}

func (m *cellMatrix) Set(i, j int, v float64) error {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		return matrix.ErrOutOfRange
	}
	m.cells[i][j] = v

	return nil
}

func (m *cellMatrix) Clone() matrix.Matrix {
	cells := make([][]float64, m.n)
	for i := range cells {
		cells[i] = append([]float64(nil), m.cells[i]...)
	}

	return &cellMatrix{n: m.n, cells: cells}
}

// gonzalez is a brute-force reference for ModeCoverage: the first pick is the
// farthest from start, each later pick maximises the distance to its nearest
// pick. Ties go to the lowest index.
func gonzalez(t testing.TB, d matrix.Matrix, k, start int) []int {
	t.Helper()
	n := d.Rows()
	at := func(i, j int) float64 {
		v, err := d.At(i, j)
		require.NoError(t, err)
		return v
	}
	picked := make([]int, 0, k)
	in := make(map[int]bool, k)

	first, best := start, 0.0
	for j := 0; j < n; j++ {
		if v := at(start, j); v > best {
			first, best = j, v
		}
	}
	picked = append(picked, first)
	in[first] = true

	for len(picked) < k {
		next, nextScore := -1, 0.0
		for j := 0; j < n; j++ {
			if in[j] {
				continue
			}
			nearest := at(picked[0], j)
			for _, s := range picked[1:] {
				if v := at(s, j); v < nearest {
					nearest = v
				}
			}
			if nearest > nextScore {
				next, nextScore = j, nearest
			}
		}
		require.GreaterOrEqual(t, next, 0, "reference made no progress")
		picked = append(picked, next)
		in[next] = true
	}

	return picked
}
