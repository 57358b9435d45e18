// SPDX-License-Identifier: MIT
package traversal_test

import (
	"fmt"

	"github.com/katalvlaran/farthest/matrix"
	"github.com/katalvlaran/farthest/traversal"
)

// ExampleFarthestFirstRows picks two corners of a square starting from (0,0).
func ExampleFarthestFirstRows() {
	corners := [][]float64{{0, 0}, {10, 0}, {0, 10}, {10, 10}}

	res, err := traversal.FarthestFirstRows(corners, 2,
		traversal.WithSampleEdge(true), traversal.WithStart(0))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.Indices, res.Strategy)
	// Output:
	// [3 0] vectorized
}

// ExampleSelect runs the selector on a precomputed table in coverage mode.
func ExampleSelect() {
	// Points on a line at 0, 1, 4 and 10.
	pos := []float64{0, 1, 4, 10}
	rows := make([][]float64, len(pos))
	for i := range rows {
		rows[i] = make([]float64, len(pos))
		for j := range rows[i] {
			d := pos[i] - pos[j]
			if d < 0 {
				d = -d
			}
			rows[i][j] = d
		}
	}
	dist, _ := matrix.NewDenseFromRows(rows)

	idx, err := traversal.Select(dist, 3, 1, traversal.ModeCoverage)
	fmt.Println(idx, err)
	// Output:
	// [3 0 2] <nil>
}
