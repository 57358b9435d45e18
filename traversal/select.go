// SPDX-License-Identifier: MIT

package traversal

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/farthest/matrix"
)

// Select runs farthest-first traversal over a precomputed distance table.
//
// Implementation:
//   - Stage 1: validate dist shape, k ∈ [1,N], start ∈ [0,N) and mode.
//   - Stage 2: k == N short-circuits to [0..N) in natural order, without
//     reading the table.
//   - Stage 3: validate table contents (finite, non-negative, zero diagonal).
//   - Stage 4: at most N iterations; each scans the unvisited indices of the
//     anchor row, accepts the strictly best scorer and makes it the anchor.
//
// Behavior highlights:
//   - Ties go to the lowest index: a later equal score never replaces the best.
//   - A candidate must score strictly above 0. If none does in the first
//     iteration the start itself is accepted; in any later iteration the
//     call fails with ErrNoProgress.
//   - The result is in acceptance order; result[0] is the best scorer from
//     the start. Callers needing a set may ignore the order.
//   - dist is only read.
//
// Errors:
//   - ErrBadDistanceMatrix, ErrKOutOfRange, ErrStartOutOfRange, ErrUnknownMode
//     (all ErrInvalidArgument); ErrNoProgress (ErrInvariantViolation).
//
// Complexity:
//   - Time O(N²) validation + O(k·N) selection; Space O(N/64) membership bits
//     plus O(N) for ModeCoverage.
func Select(dist matrix.Matrix, k, start int, mode Mode) ([]int, error) {
	n, err := validateSelect(dist, k, start, mode)
	if err != nil {
		return nil, err
	}
	if k == n {
		return naturalOrder(n), nil
	}
	if err = matrix.ValidateDistance(dist); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDistanceMatrix, err)
	}

	return traverse(dist, n, k, start, mode)
}

// validateSelect checks everything that does not require reading the table.
func validateSelect(dist matrix.Matrix, k, start int, mode Mode) (int, error) {
	if err := matrix.ValidateSquareNonNil(dist); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadDistanceMatrix, err)
	}
	n := dist.Rows()
	if err := validateK(n, k); err != nil {
		return 0, err
	}
	if start < 0 || start >= n {
		return 0, fmt.Errorf("%w: start=%d, n=%d", ErrStartOutOfRange, start, n)
	}
	if !mode.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	return n, nil
}

func validateK(n, k int) error {
	if k < 1 || k > n {
		return fmt.Errorf("%w: k=%d, n=%d", ErrKOutOfRange, k, n)
	}

	return nil
}

// naturalOrder returns [0, 1, ..., n-1].
func naturalOrder(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// traverse is the selection loop proper. Inputs are already validated.
func traverse(dist matrix.Matrix, n, k, start int, mode Mode) ([]int, error) {
	var (
		selected = bitset.New(uint(n))
		order    = make([]int, 0, k)
		anchor   = start
		cover    []float64 // ModeCoverage: distance to the nearest selected index
		scratch  []float64
		row      []float64
		err      error
	)
	if mode == ModeCoverage {
		cover = make([]float64, n)
		for j := range cover {
			cover[j] = math.Inf(1)
		}
	}

	for i := 0; i < n; i++ {
		if row, err = matrix.ReadRow(dist, anchor, scratch); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadDistanceMatrix, err)
		}
		scratch = row

		// Fold the previous pick into the coverage radius before scoring.
		if mode == ModeCoverage && i > 0 {
			for j, d := range row {
				if d < cover[j] {
					cover[j] = d
				}
			}
		}

		best, bestScore := -1, 0.0
		for j := 0; j < n; j++ {
			if selected.Test(uint(j)) {
				continue
			}
			if s := score(mode, row, cover, i, j); s > bestScore {
				best, bestScore = j, s
			}
		}

		if best < 0 {
			if i > 0 {
				return nil, fmt.Errorf("%w: iteration %d, anchor %d, selected %d of %d",
					ErrNoProgress, i, anchor, len(order), k)
			}
			best = anchor
		}

		selected.Set(uint(best))
		order = append(order, best)
		anchor = best

		if len(order) >= k {
			return order, nil
		}
	}

	// Each iteration accepts a new index and k ≤ n, so the loop returns above.
	return nil, fmt.Errorf("%w: loop bound reached with %d of %d selected", ErrInvariantViolation, len(order), k)
}

// score returns the value candidate j competes with in iteration i.
func score(mode Mode, row, cover []float64, i, j int) float64 {
	switch mode {
	case ModeEdge:
		return row[j]
	case ModeCoverage:
		if i == 0 {
			return row[j]
		}

		return cover[j]
	default:
		return row[i]
	}
}
