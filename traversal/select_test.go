// SPDX-License-Identifier: MIT
package traversal_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/farthest/matrix"
	"github.com/katalvlaran/farthest/traversal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSelect_SquareEdge checks the farthest corner is taken first, then the
// farthest unvisited corner from it.
func TestSelect_SquareEdge(t *testing.T) {
	t.Parallel()

	d := mustDistances(t, squareRows)
	got, err := traversal.Select(d, 2, 0, traversal.ModeEdge)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0}, got)

	got, err = traversal.Select(d, 3, 0, traversal.ModeEdge)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 1}, got, "ties between 1 and 2 go to the lower index")
}

// TestSelect_KEqualsN returns natural order without reading the table.
func TestSelect_KEqualsN(t *testing.T) {
	t.Parallel()

	d := mustDistances(t, [][]float64{{0}, {1}, {5}})
	got, err := traversal.Select(d, 3, 2, traversal.ModeEdge)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)

	garbage := mustDense(t, [][]float64{{math.NaN(), -1}, {3, math.Inf(1)}})
	got, err = traversal.Select(garbage, 2, 0, traversal.ModeIndex)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, got)
}

// TestSelect_IdenticalPoints fails once no candidate scores above zero.
func TestSelect_IdenticalPoints(t *testing.T) {
	t.Parallel()

	rows := make([][]float64, 5)
	for i := range rows {
		rows[i] = []float64{1, 1}
	}
	d := mustDistances(t, rows)

	for _, mode := range []traversal.Mode{traversal.ModeIndex, traversal.ModeEdge, traversal.ModeCoverage} {
		_, err := traversal.Select(d, 2, 0, mode)
		assert.ErrorIs(t, err, traversal.ErrNoProgress, mode.String())
		assert.ErrorIs(t, err, traversal.ErrInvariantViolation, mode.String())
		assert.NotErrorIs(t, err, traversal.ErrInvalidArgument, mode.String())

		// k=1 never reaches the second iteration: the start is accepted.
		got, err := traversal.Select(d, 1, 4, mode)
		require.NoError(t, err, mode.String())
		assert.Equal(t, []int{4}, got, mode.String())
	}
}

// TestSelect_SizeAndDistinctness runs every mode over random distinct points.
func TestSelect_SizeAndDistinctness(t *testing.T) {
	t.Parallel()

	const n = 40
	d := mustDistances(t, randomRows(n, 3, 11))
	modes := []traversal.Mode{traversal.ModeIndex, traversal.ModeEdge, traversal.ModeCoverage}

	for _, mode := range modes {
		for _, k := range []int{1, 2, 7, n - 1, n} {
			for _, start := range []int{0, 13, n - 1} {
				got, err := traversal.Select(d, k, start, mode)
				require.NoError(t, err, "mode=%s k=%d start=%d", mode, k, start)
				require.Len(t, got, k)

				seen := make(map[int]bool, k)
				for _, idx := range got {
					require.True(t, idx >= 0 && idx < n, "index %d out of range", idx)
					require.False(t, seen[idx], "index %d selected twice", idx)
					seen[idx] = true
				}
			}
		}
	}
}

// TestSelect_Deterministic repeats a call and expects identical output.
func TestSelect_Deterministic(t *testing.T) {
	t.Parallel()

	d := mustDistances(t, randomRows(25, 4, 3))
	first, err := traversal.Select(d, 10, 6, traversal.ModeEdge)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := traversal.Select(d, 10, 6, traversal.ModeEdge)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestSelect_FirstPickIsFarthest checks result[0] maximises the distance to
// the start in edge and coverage modes.
func TestSelect_FirstPickIsFarthest(t *testing.T) {
	t.Parallel()

	rows := randomRows(30, 2, 21)
	d := mustDistances(t, rows)

	for _, mode := range []traversal.Mode{traversal.ModeEdge, traversal.ModeCoverage} {
		for start := 0; start < len(rows); start += 7 {
			got, err := traversal.Select(d, 3, start, mode)
			require.NoError(t, err)

			row, err := d.Row(start)
			require.NoError(t, err)
			var want float64
			for _, v := range row {
				want = math.Max(want, v)
			}
			assert.Equal(t, want, row[got[0]], "mode=%s start=%d", mode, start)
		}
	}
}

// TestSelect_TieGoesToLowestIndex uses equidistant candidates.
func TestSelect_TieGoesToLowestIndex(t *testing.T) {
	t.Parallel()

	d := mustDense(t, [][]float64{
		{0, 2, 5, 5},
		{2, 0, 1, 1},
		{5, 1, 0, 3},
		{5, 1, 3, 0},
	})
	got, err := traversal.Select(d, 1, 0, traversal.ModeEdge)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, got)
}

// TestSelect_IndexMode pins the iteration-column scoring: on distinct points
// the picks are the leading rows, and the start is accepted first when
// dist[start][0] is zero.
func TestSelect_IndexMode(t *testing.T) {
	t.Parallel()

	d := mustDistances(t, squareRows)
	got, err := traversal.Select(d, 2, 0, traversal.ModeIndex)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, got)

	got, err = traversal.Select(d, 3, 3, traversal.ModeIndex)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)

	big := mustDistances(t, randomRows(20, 2, 5))
	got, err = traversal.Select(big, 6, 9, traversal.SampleEdge(false))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, got)
}

// TestSelect_CoverageMatchesGonzalez compares against a brute-force reference.
func TestSelect_CoverageMatchesGonzalez(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 5; seed++ {
		d := mustDistances(t, randomRows(18, 3, seed))
		for _, start := range []int{0, 9, 17} {
			got, err := traversal.Select(d, 8, start, traversal.ModeCoverage)
			require.NoError(t, err)
			assert.Equal(t, gonzalez(t, d, 8, start), got, "seed=%d start=%d", seed, start)
		}
	}
}

// TestSelect_AsymmetricTable accepts tables that only satisfy the
// finite/non-negative/zero-diagonal checks and reads rows as given.
func TestSelect_AsymmetricTable(t *testing.T) {
	t.Parallel()

	d := mustDense(t, [][]float64{
		{0, 1, 9},
		{4, 0, 2},
		{7, 8, 0},
	})
	got, err := traversal.Select(d, 2, 0, traversal.ModeEdge)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, got)
}

// TestSelect_GenericMatrix exercises the At fallback of non-Dense tables.
func TestSelect_GenericMatrix(t *testing.T) {
	t.Parallel()

	d := mustDistances(t, randomRows(15, 2, 8))
	rows, err := matrix.ToRows(d)
	require.NoError(t, err)
	generic := &cellMatrix{n: len(rows), cells: rows}

	for _, mode := range []traversal.Mode{traversal.ModeIndex, traversal.ModeEdge, traversal.ModeCoverage} {
		want, err := traversal.Select(d, 9, 4, mode)
		require.NoError(t, err)
		got, err := traversal.Select(generic, 9, 4, mode)
		require.NoError(t, err)
		assert.Equal(t, want, got, mode.String())
	}
}

// TestSelect_Errors covers the argument taxonomy.
func TestSelect_Errors(t *testing.T) {
	t.Parallel()

	good := mustDistances(t, squareRows)
	cases := []struct {
		name  string
		dist  matrix.Matrix
		k     int
		start int
		mode  traversal.Mode
		want  error
		cause error
	}{
		{"nil table", nil, 1, 0, traversal.ModeEdge, traversal.ErrBadDistanceMatrix, matrix.ErrNilMatrix},
		{"non-square", mustDense(t, [][]float64{{0, 1, 2}, {1, 0, 3}}), 1, 0, traversal.ModeEdge, traversal.ErrBadDistanceMatrix, matrix.ErrNonSquare},
		{"k zero", good, 0, 0, traversal.ModeEdge, traversal.ErrKOutOfRange, nil},
		{"k above n", good, 5, 0, traversal.ModeEdge, traversal.ErrKOutOfRange, nil},
		{"negative start", good, 2, -1, traversal.ModeEdge, traversal.ErrStartOutOfRange, nil},
		{"start equals n", good, 2, 4, traversal.ModeEdge, traversal.ErrStartOutOfRange, nil},
		{"k equals n with bad start", good, 4, 4, traversal.ModeEdge, traversal.ErrStartOutOfRange, nil},
		{"unknown mode", good, 2, 0, traversal.Mode(42), traversal.ErrUnknownMode, nil},
		{"nan cell", mustDense(t, [][]float64{{0, math.NaN()}, {1, 0}}), 1, 0, traversal.ModeEdge, traversal.ErrBadDistanceMatrix, matrix.ErrNaNInf},
		{"negative cell", mustDense(t, [][]float64{{0, -1, 1}, {1, 0, 1}, {1, 1, 0}}), 2, 0, traversal.ModeEdge, traversal.ErrBadDistanceMatrix, matrix.ErrNegativeValue},
		{"non-zero diagonal", mustDense(t, [][]float64{{0, 1, 1}, {1, 0.5, 1}, {1, 1, 0}}), 2, 0, traversal.ModeEdge, traversal.ErrBadDistanceMatrix, matrix.ErrNonZeroDiagonal},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := traversal.Select(tc.dist, tc.k, tc.start, tc.mode)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, traversal.ErrInvalidArgument)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
		})
	}
}

// TestSelect_DoesNotMutate verifies the table is read-only.
func TestSelect_DoesNotMutate(t *testing.T) {
	t.Parallel()

	d := mustDistances(t, randomRows(12, 2, 4))
	before, err := matrix.ToRows(d)
	require.NoError(t, err)

	_, err = traversal.Select(d, 5, 0, traversal.ModeCoverage)
	require.NoError(t, err)
	after, err := matrix.ToRows(d)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
