// SPDX-License-Identifier: MIT

// Package distance computes all-pairs Minkowski distance tables.
//
// Given N points in R^M (the rows of a matrix.Matrix) and an order p ≥ 1,
// Pairwise returns the N×N table d[i][j] = ||x_i − x_j||_p with an exactly
// zero diagonal and exact symmetry.
//
// Two strategies trade memory for locality, selected by a threshold on N·N·M
// (the same knob scipy.spatial.distance_matrix exposes):
//
//   - StrategyVectorized (N·N·M ≤ threshold): for every anchor row a gonum
//     difference block X − 1·x_iᵀ is materialised and reduced row by row with
//     floats.Norm. O(N·M) scratch per worker.
//   - StrategyIterative (otherwise): pairs of the strict upper triangle are
//     reduced directly (vek kernels for p=1 and p=2, floats.Distance for any
//     other p) and mirrored. No scratch.
//
// Rows are spread over WithWorkers goroutines (errgroup). The output does not
// depend on the worker count.
//
// Complexity: Time O(N²·M), Space O(N²) for the result.
package distance
