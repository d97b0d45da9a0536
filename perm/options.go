// Package perm: functional configuration for the randomized estimator
// and the adaptive precision controller. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package perm

import (
	"math"
	"math/rand"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRtol is the relative-difference stopping criterion of the
	// adaptive controller.
	DefaultRtol = 1e-5

	// DefaultMinIter is the trial count of the first refinement round.
	DefaultMinIter = 100

	// DefaultMaxIter is the cumulative trial budget across all rounds.
	DefaultMaxIter = 100000

	// DefaultGrowthSteps sets how many geometric growth steps span the
	// minIter→maxIter range: growth = (maxIter/minIter)^(1/steps).
	DefaultGrowthSteps = 5

	// DefaultSeed routes to the fixed internal seed (see rng.go): a
	// zero seed never means "time-based".
	DefaultSeed int64 = 0
)

// Guardrail thresholds of the adaptive controller. Crossing either
// emits a Warning through the diagnostics sink; execution proceeds.
const (
	minSafeGrowth  = 2.0
	minSafeMinIter = 100
)

// panicRtolNaN guards against a nonsensical programmer value; range
// errors on user input are sentinels, NaN is not a configuration.
const panicRtolNaN = "perm: WithRtol: rtol must not be NaN"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly; the last
// writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Unexported fields prevent external mutation; public entry
// points accept ...Option and resolve them via gatherOptions.
type Options struct {
	rtol    float64
	minIter int
	maxIter int
	steps   int

	seed int64
	rng  *rand.Rand

	diag DiagnosticSink
}

// WithRtol sets the relative-difference stopping criterion.
// Negative values are rejected later with ErrBadRtol; NaN panics
// (programmer error). Complexity: O(1).
func WithRtol(rtol float64) Option {
	if math.IsNaN(rtol) {
		panic(panicRtolNaN)
	}

	return func(o *Options) { o.rtol = rtol }
}

// WithMinIter sets the trial count of the first round.
// Values below minSafeMinIter trigger WarnSmallMinIter at run time.
// Complexity: O(1).
func WithMinIter(n int) Option {
	return func(o *Options) { o.minIter = n }
}

// WithMaxIter sets the cumulative trial budget. Complexity: O(1).
func WithMaxIter(n int) Option {
	return func(o *Options) { o.maxIter = n }
}

// WithGrowthSteps sets the number of geometric growth steps spanning
// minIter→maxIter. Fewer steps mean a larger growth factor.
// Complexity: O(1).
func WithGrowthSteps(n int) Option {
	return func(o *Options) { o.steps = n }
}

// WithSeed pins the deterministic seed for the estimator's random ±1
// draws. Seed 0 selects the fixed default stream (never time-based).
// Ignored when WithRand supplies an explicit generator.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRand injects an explicit random source, taking precedence over
// WithSeed. The generator is advanced by the call; do not share it
// across goroutines. Complexity: O(1).
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.rng = rng }
}

// WithDiagnostics injects the sink receiving non-fatal Warnings.
// A nil sink restores the default discard behavior. Complexity: O(1).
func WithDiagnostics(sink DiagnosticSink) Option {
	return func(o *Options) { o.diag = sink }
}

// ---------- Option resolution ----------

// gatherOptions applies user-provided setters on top of the documented
// defaults. Last-writer-wins; stable for a given setter sequence.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		rtol:    DefaultRtol,
		minIter: DefaultMinIter,
		maxIter: DefaultMaxIter,
		steps:   DefaultGrowthSteps,
		seed:    DefaultSeed,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// validate rejects out-of-range budgets with sentinels. Shape-level
// checks stay in validate.go; this covers configuration only.
// Complexity: O(1).
func (o *Options) validate() error {
	if o.rtol < 0 {
		return ErrBadRtol
	}
	if o.minIter < 1 || o.steps < 1 || o.maxIter < o.minIter {
		return ErrBadBudget
	}

	return nil
}

// growth returns the per-round geometric factor
// (maxIter/minIter)^(1/steps). Requires a validated configuration.
// Complexity: O(1).
func (o *Options) growth() float64 {
	return math.Pow(float64(o.maxIter)/float64(o.minIter), 1/float64(o.steps))
}

// emit routes a Warning through the configured sink, if any.
func (o *Options) emit(w Warning) {
	if o.diag != nil {
		o.diag(w)
	}
}

// warnGuardrails raises the controller's configuration diagnostics:
// too-slow growth or too-few initial trials both risk a false-positive
// convergence declaration. Non-fatal.
// Complexity: O(1).
func (o *Options) warnGuardrails() {
	if o.growth() <= minSafeGrowth {
		o.emit(Warning{
			Kind:    WarnSlowGrowth,
			Message: "perm: growth factor <= 2; consecutive estimates may agree by chance",
		})
	}
	if o.minIter < minSafeMinIter {
		o.emit(Warning{
			Kind:    WarnSmallMinIter,
			Message: "perm: minIter below 100; first-round estimate is noisy",
		})
	}
}
