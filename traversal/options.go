// SPDX-License-Identifier: MIT

package traversal

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/farthest/distance"
)

// Defaults (single source of truth).
const (
	// DefaultMinkowski is the Euclidean norm.
	DefaultMinkowski = distance.DefaultOrder

	// DefaultThreshold bounds N·N·M for the vectorized distance strategy.
	DefaultThreshold = distance.DefaultThreshold

	// DefaultMode keeps the historical sample_edge=false scoring.
	DefaultMode = ModeIndex

	// DefaultWorkers computes the distance table on the calling goroutine.
	DefaultWorkers = distance.DefaultWorkers
)

const panicThresholdInvalid = "traversal: WithThreshold: threshold must be >= 0"

// Option configures FarthestFirst.
type Option func(*Options)

// Options holds the resolved configuration of FarthestFirst.
type Options struct {
	minkowski float64
	threshold int
	workers   int
	mode      Mode

	start    int
	hasStart bool
	rng      *rand.Rand
	seed     int64
	hasSeed  bool

	logger *slog.Logger
}

// WithMinkowski sets the Minkowski order p of the distance table (p ≥ 1,
// math.Inf(1) for Chebyshev). Invalid values are reported by FarthestFirst.
func WithMinkowski(p float64) Option {
	return func(o *Options) { o.minkowski = p }
}

// WithThreshold sets the N·N·M bound of the vectorized distance strategy.
// It tunes memory use only; results do not depend on it beyond rounding.
// Panics on negative values (programmer error).
func WithThreshold(t int) Option {
	if t < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithWorkers sets the goroutine count for the distance table (≤ 0: GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithMode selects the scoring mode.
func WithMode(m Mode) Option {
	return func(o *Options) { o.mode = m }
}

// WithSampleEdge is the boolean form of WithMode(SampleEdge(edge)).
func WithSampleEdge(edge bool) Option {
	return WithMode(SampleEdge(edge))
}

// WithStart fixes the starting anchor; no randomness is consumed.
func WithStart(i int) Option {
	return func(o *Options) {
		o.start = i
		o.hasStart = true
	}
}

// WithRand injects the generator used to draw the start index.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.rng = r }
}

// WithSeed draws the start index from a generator seeded with seed
// (0 maps to a fixed default seed). Ignored when WithRand is also given.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.hasSeed = true
	}
}

// WithLogger sets the structured logger; nil restores the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		minkowski: DefaultMinkowski,
		threshold: DefaultThreshold,
		workers:   DefaultWorkers,
		mode:      DefaultMode,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	return o
}

// resolveStart applies the precedence WithStart > WithRand > WithSeed > entropy.
func (o Options) resolveStart(n int) (int, error) {
	switch {
	case o.hasStart:
		if o.start < 0 || o.start >= n {
			return 0, ErrStartOutOfRange
		}
		return o.start, nil
	case o.rng != nil:
		return drawStart(o.rng, n), nil
	case o.hasSeed:
		return drawStart(rngFromSeed(o.seed), n), nil
	default:
		return drawStart(entropyRNG(), n), nil
	}
}

func (o Options) distanceOptions() []distance.Option {
	return []distance.Option{
		distance.WithOrder(o.minkowski),
		distance.WithThreshold(o.threshold),
		distance.WithWorkers(o.workers),
	}
}
