// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/farthest/matrix"
)

// lineTable returns the distance table of n points on a line.
func lineTable(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	d, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := float64(i - j)
			if v < 0 {
				v = -v
			}
			_ = d.Set(i, j, v)
		}
	}

	return d
}

func BenchmarkValidateDistance_Dense512(b *testing.B) {
	d := lineTable(b, 512)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := matrix.ValidateDistance(d); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidateDistance_Generic256(b *testing.B) {
	rows, err := matrix.ToRows(lineTable(b, 256))
	if err != nil {
		b.Fatal(err)
	}
	m := sliceMatrix{a: rows}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := matrix.ValidateDistance(m, matrix.WithRequireSymmetry()); err != nil {
			b.Fatal(err)
		}
	}
}
