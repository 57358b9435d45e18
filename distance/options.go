// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"runtime"
)

// Strategy selects how Pairwise materialises intermediate values.
type Strategy int

const (
	// StrategyAuto picks StrategyVectorized or StrategyIterative from the threshold.
	StrategyAuto Strategy = iota

	// StrategyVectorized builds a per-anchor difference block (O(N·M) scratch).
	StrategyVectorized

	// StrategyIterative reduces each unordered pair once, without scratch.
	StrategyIterative
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyVectorized:
		return "vectorized"
	case StrategyIterative:
		return "iterative"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Defaults (single source of truth).
const (
	// DefaultOrder is the Euclidean norm.
	DefaultOrder = 2.0

	// DefaultThreshold bounds N·N·M for the vectorized strategy.
	DefaultThreshold = 1_000_000

	// DefaultWorkers computes on the calling goroutine only.
	DefaultWorkers = 1
)

const panicThresholdInvalid = "distance: WithThreshold: threshold must be >= 0"

// Option mutates internal options.
type Option func(*Options)

// Options holds the resolved configuration of Pairwise and Plan.
type Options struct {
	order     float64
	threshold int
	workers   int
	strategy  Strategy
}

// Order returns the effective Minkowski order.
func (o Options) Order() float64 { return o.order }

// Threshold returns the effective N·N·M threshold.
func (o Options) Threshold() int { return o.threshold }

// Workers returns the effective worker count.
func (o Options) Workers() int { return o.workers }

// WithOrder sets the Minkowski order p. Use math.Inf(1) for Chebyshev.
// The value is validated by Pairwise (ErrBadOrder), not here, because it
// usually comes from user input.
func WithOrder(p float64) Option {
	return func(o *Options) { o.order = p }
}

// WithThreshold sets the N·N·M bound below which the vectorized strategy runs.
// Panics on negative values (programmer error).
func WithThreshold(t int) Option {
	if t < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithWorkers sets the number of goroutines computing rows.
// n ≤ 0 means runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithStrategy forces a strategy regardless of the threshold.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.strategy = s }
}

// NewOptions resolves setters against the defaults (last-writer-wins).
func NewOptions(opts ...Option) Options {
	o := Options{
		order:     DefaultOrder,
		threshold: DefaultThreshold,
		workers:   DefaultWorkers,
		strategy:  StrategyAuto,
	}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
