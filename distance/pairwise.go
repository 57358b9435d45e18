// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"

	"github.com/viterin/vek"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/farthest/matrix"
)

// Minkowski returns ||a − b||_p.
// a and b must have equal length (the underlying kernels panic otherwise).
// p=1 and p=2 use the vek SIMD kernels; any other p (including +Inf) uses
// floats.Distance.
//
// Complexity: O(len(a)).
func Minkowski(a, b []float64, p float64) float64 {
	switch p {
	case 1:
		return vek.ManhattanDistance(a, b)
	case 2:
		return vek.Distance(a, b)
	default:
		return floats.Distance(a, b, p)
	}
}

// Plan reports the strategy Pairwise would use for an n×m point set.
// A forced strategy (WithStrategy) is returned as is.
//
// Complexity: O(1).
func Plan(n, m int, opts ...Option) Strategy {
	return NewOptions(opts...).plan(n, m)
}

func (o Options) plan(n, m int) Strategy {
	if o.strategy != StrategyAuto {
		return o.strategy
	}
	// float64 product: N·N·M overflows int long before memory does.
	if float64(n)*float64(n)*float64(m) <= float64(o.threshold) {
		return StrategyVectorized
	}

	return StrategyIterative
}

// Pairwise computes the N×N Minkowski distance table of the rows of points.
//
// Implementation:
//   - Stage 1: validate the point set (non-empty, finite) and the order (p ≥ 1).
//   - Stage 2: pick the strategy from the threshold (see Plan).
//   - Stage 3: spread anchor rows over workers; row i is owned by worker i mod W.
//
// Behavior highlights:
//   - Diagonal is exactly 0; d[i][j] == d[j][i] bit for bit.
//   - Output is independent of the worker count.
//
// Errors:
//   - ErrEmptyPoints, ErrBadOrder, ErrNonFinitePoint (wrapping the matrix sentinel).
//
// Complexity:
//   - Time O(N²·M); Space O(N²) + O(W·N·M) scratch for the vectorized strategy.
func Pairwise(points matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := NewOptions(opts...)

	// Stage 1: validation.
	if err := o.validate(points); err != nil {
		return nil, err
	}

	x, err := asDense(points)
	if err != nil {
		return nil, err
	}
	n, m := x.Shape()

	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	// Stage 2: strategy.
	var rowFn func(w *worker, i int) error
	switch o.plan(n, m) {
	case StrategyVectorized:
		rowFn = vectorizedRow
	default:
		rowFn = iterativeRow
	}

	// Stage 3: fan out.
	workers := o.workers
	if workers > n {
		workers = n
	}
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		wk := &worker{x: x, out: out, p: o.order}
		start := w
		g.Go(func() error {
			for i := start; i < n; i += workers {
				if err := rowFn(wk, i); err != nil {
					return err
				}
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Validate reports whether Pairwise would accept points under opts,
// without computing anything.
//
// Errors: ErrEmptyPoints, ErrBadOrder, ErrNonFinitePoint.
// Complexity: O(N·M).
func Validate(points matrix.Matrix, opts ...Option) error {
	return NewOptions(opts...).validate(points)
}

func (o Options) validate(points matrix.Matrix) error {
	if points == nil || points.Rows() == 0 || points.Cols() == 0 {
		return ErrEmptyPoints
	}
	if math.IsNaN(o.order) || o.order < 1 {
		return fmt.Errorf("%w: got %v", ErrBadOrder, o.order)
	}
	if err := matrix.ValidateFinite(points); err != nil {
		return fmt.Errorf("%w: %w", ErrNonFinitePoint, err)
	}

	return nil
}

// worker carries per-goroutine state; diff is lazily allocated scratch.
type worker struct {
	x    *matrix.Dense
	out  *matrix.Dense
	p    float64
	diff *mat.Dense
}

// vectorizedRow fills the whole row i of out from the block X − 1·x_iᵀ.
func vectorizedRow(w *worker, i int) error {
	xi, err := w.x.Row(i)
	if err != nil {
		return err
	}
	n, m := w.x.Shape()
	if w.diff == nil {
		w.diff = mat.NewDense(n, m, nil)
	}
	w.diff.Apply(func(_, c int, v float64) float64 { return v - xi[c] }, w.x.Gonum())

	dst, err := w.out.Row(i)
	if err != nil {
		return err
	}
	for j := 0; j < n; j++ {
		dst[j] = floats.Norm(w.diff.RawRowView(j), w.p)
	}

	return nil
}

// iterativeRow fills the strict upper triangle of row i and mirrors it.
// Cell (i,j) and (j,i) for j>i are written only by the owner of row i.
func iterativeRow(w *worker, i int) error {
	xi, err := w.x.Row(i)
	if err != nil {
		return err
	}
	n := w.x.Rows()

	var (
		xj []float64
		d  float64
	)
	for j := i + 1; j < n; j++ {
		if xj, err = w.x.Row(j); err != nil {
			return err
		}
		d = Minkowski(xi, xj, w.p)
		if err = w.out.Set(i, j, d); err != nil {
			return err
		}
		if err = w.out.Set(j, i, d); err != nil {
			return err
		}
	}

	return nil
}

// asDense returns points as *matrix.Dense, copying only when needed.
func asDense(points matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := points.(*matrix.Dense); ok {
		return d, nil
	}
	rows, err := matrix.ToRows(points)
	if err != nil {
		return nil, err
	}

	return matrix.NewDenseFromRows(rows)
}
