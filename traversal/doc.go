// SPDX-License-Identifier: MIT

// Package traversal implements farthest-first traversal (FFT), the greedy
// 2-approximation for the k-center problem, as a diversity-sampling primitive.
//
// Given N points, FFT picks k of them that are pairwise spread out. The
// package has two layers:
//
//   - Select works on a precomputed N×N distance table. Starting from an
//     anchor row it repeatedly accepts the unvisited index with the strictly
//     largest score (first index wins ties) and makes it the next anchor.
//   - FarthestFirst is the entry point for raw feature vectors: it builds the
//     table with package distance (Minkowski order p, memory threshold),
//     draws a uniformly random start from an injected *rand.Rand (or an
//     entropy-seeded one at this call boundary) and delegates to Select.
//
// Scoring modes:
//
//   - ModeIndex: every candidate is scored by dist[anchor][i], i being the
//     iteration number. This is the historical default (sample_edge=false).
//     All candidates tie within an iteration, so it returns low indices.
//   - ModeEdge: candidate j is scored by dist[anchor][j] (sample_edge=true).
//   - ModeCoverage: candidate j is scored by its distance to the nearest
//     already selected index (textbook Gonzalez k-center).
//
// The start index is only an anchor: it is not part of the result unless the
// traversal selects it. The first returned index is therefore the point with
// the largest score from an arbitrary reference, which in ModeEdge puts it on
// the convex hull of the point set.
//
// Errors: argument problems wrap ErrInvalidArgument and are reported before
// any work; a table with no positive-scoring candidate after the first
// iteration wraps ErrInvariantViolation.
//
// Complexity: Time O(N²·M) for the table plus O(k·N) for the selection;
// Space O(N²).
package traversal
