// SPDX-License-Identifier: MIT
// Package traversal - RNG utilities for the random start index.
//
// Goals:
//   - Determinism: an injected *rand.Rand or a fixed seed reproduces the start.
//   - Encapsulation: entropy is read only at the outermost call boundary
//     (FarthestFirst without WithStart/WithRand/WithSeed), never hidden deeper.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     concurrent FarthestFirst calls.

package traversal

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// defaultRNGSeed is the fixed seed used when callers pass WithSeed(0).
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// entropyRNG returns a generator seeded from the operating system's CSPRNG.
func entropyRNG() *rand.Rand {
	var b [8]byte
	_, _ = crand.Read(b[:]) // crypto/rand.Read does not fail on supported platforms
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}

// drawStart returns a uniformly random index in [0, n). n must be > 0.
func drawStart(r *rand.Rand, n int) int {
	return r.Intn(n)
}
