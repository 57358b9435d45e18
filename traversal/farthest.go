// SPDX-License-Identifier: MIT

package traversal

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/farthest/distance"
	"github.com/katalvlaran/farthest/matrix"
)

// Result is the outcome of FarthestFirst.
type Result struct {
	// Indices are the selected row indices in acceptance order.
	Indices []int

	// Start is the anchor the traversal began from.
	Start int

	// Mode is the scoring mode that ran.
	Mode Mode

	// Strategy is the distance strategy that ran. It is StrategyAuto when
	// k == N and no table was built.
	Strategy distance.Strategy
}

// Len returns the number of selected indices.
func (r Result) Len() int { return len(r.Indices) }

// Set returns the selection as a set.
func (r Result) Set() map[int]struct{} {
	out := make(map[int]struct{}, len(r.Indices))
	for _, i := range r.Indices {
		out[i] = struct{}{}
	}

	return out
}

// Sorted returns a copy of the selection in ascending order.
func (r Result) Sorted() []int {
	out := slices.Clone(r.Indices)
	slices.Sort(out)

	return out
}

// Bitmap returns the selection as a compressed bitmap, suitable for
// filtering the input rows in their original order.
func (r Result) Bitmap() *roaring.Bitmap {
	bm := roaring.New()
	for _, i := range r.Indices {
		bm.Add(uint32(i))
	}

	return bm
}

// FarthestFirst selects k rows of points that are mutually far apart.
//
// Implementation:
//   - Stage 1: validate points (non-empty, finite, Minkowski order ≥ 1) and k ∈ [1,N].
//   - Stage 2: resolve the start: WithStart, else WithRand, else WithSeed,
//     else a generator seeded from crypto/rand at this call.
//   - Stage 3: k == N returns [0..N) without building the distance table.
//   - Stage 4: build the table with distance.Pairwise and run Select.
//
// Errors:
//   - ErrBadPoints (wrapping the distance sentinel), ErrKOutOfRange,
//     ErrStartOutOfRange, ErrUnknownMode: all ErrInvalidArgument.
//   - ErrNoProgress (ErrInvariantViolation) for degenerate inputs such as
//     duplicated points.
//
// Complexity:
//   - Time O(N²·M + k·N); Space O(N²) for the distance table.
func FarthestFirst(points matrix.Matrix, k int, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	dopts := o.distanceOptions()

	// Stage 1: validation.
	if err := distance.Validate(points, dopts...); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrBadPoints, err)
	}
	n, m := points.Rows(), points.Cols()
	if err := validateK(n, k); err != nil {
		return Result{}, err
	}
	if !o.mode.Valid() {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownMode, int(o.mode))
	}

	// Stage 2: start.
	start, err := o.resolveStart(n)
	if err != nil {
		return Result{}, fmt.Errorf("%w: start=%d, n=%d", err, o.start, n)
	}
	res := Result{Start: start, Mode: o.mode}

	// Stage 3: everything is selected.
	if k == n {
		res.Indices = naturalOrder(n)
		o.logger.Debug("farthest-first: k equals n", "n", n)

		return res, nil
	}

	// Stage 4: distance table, then selection.
	res.Strategy = distance.Plan(n, m, dopts...)
	o.logger.Debug("farthest-first: computing distances",
		"n", n, "m", m, "p", o.minkowski, "strategy", res.Strategy, "workers", o.workers)

	dist, err := distance.Pairwise(points, dopts...)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrBadPoints, err)
	}

	if res.Indices, err = Select(dist, k, start, o.mode); err != nil {
		o.logger.Debug("farthest-first: selection failed", "start", start, "error", err)
		return Result{}, err
	}
	o.logger.Debug("farthest-first: selected",
		"k", k, "start", start, "mode", o.mode, "first", res.Indices[0])

	return res, nil
}

// FarthestFirstRows is FarthestFirst over a slice of equal-length rows.
// Ragged or empty input is reported as ErrBadPoints.
func FarthestFirstRows(rows [][]float64, k int, opts ...Option) (Result, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Result{}, fmt.Errorf("%w: %w", ErrBadPoints, distance.ErrEmptyPoints)
	}
	points, err := matrix.NewDenseFromRows(rows, matrix.WithNoValidateNaNInf())
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrBadPoints, err)
	}

	return FarthestFirst(points, k, opts...)
}
