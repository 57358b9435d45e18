// SPDX-License-Identifier: MIT

// Package farthest is the root of a small library for diversity sampling by
// farthest-first traversal (FFT).
//
// Given N feature vectors, FFT greedily picks k of them that are spread out
// under a Minkowski distance, which makes it a cheap 2-approximation for the
// k-center problem and a common way to pick representative subsets.
//
// Everything is organized under three subpackages and one command:
//
//	matrix/        Matrix interface, row-major Dense, validators, sentinel errors
//	distance/      pairwise Minkowski distance tables (vectorized or iterative)
//	traversal/     Select (precomputed table) and FarthestFirst (raw points)
//	cmd/farthest/  CLI: select rows from CSV/JSON files
//
// Quick start:
//
//	res, err := traversal.FarthestFirstRows(rows, 10,
//		traversal.WithSampleEdge(true), traversal.WithSeed(42))
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Indices)
//
// The library has no global state: randomness comes from an injected
// *rand.Rand or seed, logging from an injected *slog.Logger.
package farthest
