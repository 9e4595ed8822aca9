// Package bq: functional configuration for FromProblem.
// This file defines:
//   - documented defaults (constants),
//   - Option / options (functional options with internal state),
//   - WithX constructors,
//   - gatherOptions helper that applies defaults and validates ranges.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - All validation happens once, at construction; invalid values are
//     configuration errors (ErrInvalidOption), never panics.

package bq

import (
	"fmt"
	"math"
)

// DEFAULTS - single source of truth for unset-option behavior.
const (
	// DefaultBatchSize is the number of nodes acquired per iteration.
	DefaultBatchSize = 1

	// DefaultJitter is the non-negative diagonal regularization added to
	// the Gram matrix before solving the posterior system.
	DefaultJitter = 1e-8

	// DefaultNumCandidates is the candidate-pool size of the us_rand
	// policy.
	DefaultNumCandidates = 100

	// DefaultDesignNodesPerDim scales the warm-start batch: an initial
	// design generates DefaultDesignNodesPerDim × input_dim nodes unless
	// overridden.
	DefaultDesignNodesPerDim = 5

	// DefaultEvalBudget caps the evaluation count of the fallback
	// stopping predicate installed when a policy is present but none of
	// max-evals/var-tol/rel-tol is configured. The loop must terminate
	// even when the caller supplies no explicit bound.
	DefaultEvalBudget = 1000
)

// Option mutates the internal options. Safe to apply repeatedly; the last
// write wins.
type Option func(*options)

// options stores the effective configuration after applying Option
// setters. Unexported: public entry points accept ...Option and resolve
// them via gatherOptions.
type options struct {
	batchSize       int
	jitter          float64
	jitterSet       bool
	scaleEstimation ScaleEstimation
	numCandidates   int
	numDesignNodes  int // 0 ⇒ DefaultDesignNodesPerDim × input_dim
	maxEvals        int
	maxEvalsSet     bool
	varTol          float64
	varTolSet       bool
	relTol          float64
	relTolSet       bool
	predicate       func(*State, *RunInfo) bool
}

// WithBatchSize sets the number of nodes acquired per loop iteration.
// Must be > 0.
func WithBatchSize(n int) Option {
	return func(o *options) { o.batchSize = n }
}

// WithJitter sets the diagonal regularization added to the Gram matrix.
// Must be >= 0 and finite.
func WithJitter(j float64) Option {
	return func(o *options) { o.jitter = j; o.jitterSet = true }
}

// WithScaleEstimation selects the output-scale correction mode.
func WithScaleEstimation(s ScaleEstimation) Option {
	return func(o *options) { o.scaleEstimation = s }
}

// WithNumCandidates sets the candidate-pool size of the us_rand policy.
// Must be > 0 and at least the batch size.
func WithNumCandidates(n int) Option {
	return func(o *options) { o.numCandidates = n }
}

// WithNumDesignNodes sets the warm-start batch size of the initial
// design. Must be > 0.
func WithNumDesignNodes(n int) Option {
	return func(o *options) { o.numDesignNodes = n }
}

// WithMaxEvals installs a max-evaluations stopping bound. Must be > 0.
func WithMaxEvals(n int) Option {
	return func(o *options) { o.maxEvals = n; o.maxEvalsSet = true }
}

// WithVarTol installs an integral-variance stopping tolerance.
// Must be >= 0.
func WithVarTol(tol float64) Option {
	return func(o *options) { o.varTol = tol; o.varTolSet = true }
}

// WithRelTol installs a relative-mean-change stopping tolerance.
// Must be >= 0.
func WithRelTol(tol float64) Option {
	return func(o *options) { o.relTol = tol; o.relTolSet = true }
}

// WithStoppingPredicate installs a caller-extensible stopping predicate.
// It is combined (logical OR) with any numeric bounds also configured.
func WithStoppingPredicate(fn func(state *State, info *RunInfo) bool) Option {
	return func(o *options) { o.predicate = fn }
}

// gatherOptions applies defaults, then setters, then validates ranges.
func gatherOptions(opts []Option) (options, error) {
	o := options{
		batchSize:       DefaultBatchSize,
		jitter:          DefaultJitter,
		scaleEstimation: ScaleFixed,
		numCandidates:   DefaultNumCandidates,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	switch {
	case o.batchSize <= 0:
		return o, wrapOption("batch size must be > 0")
	case o.jitterSet && (!(o.jitter >= 0) || math.IsInf(o.jitter, 0)):
		return o, wrapOption("jitter must be finite and >= 0")
	case o.numCandidates <= 0:
		return o, wrapOption("candidate pool must be > 0")
	case o.numDesignNodes < 0:
		return o, wrapOption("design node count must be > 0")
	case o.maxEvalsSet && o.maxEvals <= 0:
		return o, wrapOption("max evals must be > 0")
	case o.varTolSet && !(o.varTol >= 0):
		return o, wrapOption("variance tolerance must be >= 0")
	case o.relTolSet && !(o.relTol >= 0):
		return o, wrapOption("relative tolerance must be >= 0")
	case o.scaleEstimation != ScaleFixed && o.scaleEstimation != ScaleMLE:
		return o, wrapOption("unknown scale-estimation mode")
	}
	return o, nil
}

// wrapOption attaches a human-readable detail to ErrInvalidOption while
// keeping errors.Is matching intact.
func wrapOption(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvalidOption, detail)
}
