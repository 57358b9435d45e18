// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/farthest/matrix"
)

// ExampleValidateDistance shows how a malformed distance table is reported.
func ExampleValidateDistance() {
	d, _ := matrix.NewDenseFromRows([][]float64{
		{0, 3, 4},
		{3, 0, 5},
		{4, -5, 0},
	})

	err := matrix.ValidateDistance(d)
	fmt.Println(errors.Is(err, matrix.ErrNegativeValue))
	// Output:
	// true
}
