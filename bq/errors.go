// Package bq: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All public entry
// points return these sentinels and tests check them via errors.Is.
// Wrap with fmt.Errorf("ctx: %w", ErrX) only at the outer boundary when
// extra context is essential; errors.Is matching must keep working.

package bq

import "errors"

var (
	// ErrNoMeasure is returned by FromProblem when neither a measure nor
	// a domain is supplied: there is nothing to integrate against.
	ErrNoMeasure = errors.New("bq: neither measure nor domain given")

	// ErrUnknownPolicy is returned for a policy identifier outside
	// {bmc, vdc, us_rand, none}.
	ErrUnknownPolicy = errors.New("bq: unknown policy identifier")

	// ErrUnknownDesign is returned for an initial-design identifier
	// outside {mc, latin, none}.
	ErrUnknownDesign = errors.New("bq: unknown initial-design identifier")

	// ErrDesignWithoutPolicy is returned when an initial design is
	// configured while the policy is none: a warm start is meaningless
	// without subsequent adaptive acquisition.
	ErrDesignWithoutPolicy = errors.New("bq: initial design requires a policy")

	// ErrInvalidOption is returned when an option value is out of range
	// (non-positive batch size, negative jitter, candidate pool smaller
	// than the batch, ...). Raised at construction, never retried.
	ErrInvalidOption = errors.New("bq: invalid option value")

	// ErrUnsupportedDimension is returned when the van der Corput policy
	// is requested for a problem that is not one-dimensional.
	ErrUnsupportedDimension = errors.New("bq: van der Corput policy requires input dimension 1")

	// ErrUnboundedDomain is returned when a component needs a bounded
	// domain (vdc policy, latin design) but the measure is unbounded.
	ErrUnboundedDomain = errors.New("bq: bounded domain required")

	// ErrMissingIntegrand is returned by Integrate when no way to obtain
	// function values exists: a policy is configured but fun is nil, or
	// both fun and fun_evals are absent.
	ErrMissingIntegrand = errors.New("bq: integrand required")

	// ErrMissingNodes is returned by Integrate in no-policy mode when
	// nodes are absent, or when fun_evals are supplied without nodes.
	ErrMissingNodes = errors.New("bq: nodes required")

	// ErrMissingRNG is returned by Integrate when a configured component
	// needs randomness and rng is nil. No global fallback exists.
	ErrMissingRNG = errors.New("bq: random source required")

	// ErrShapeMismatch is returned for nodes whose width differs from the
	// input dimension, for fun_evals whose length differs from the node
	// count, and for integrands returning the wrong number of values.
	ErrShapeMismatch = errors.New("bq: shape mismatch")

	// ErrNonFinite is returned when a node coordinate or function value
	// is NaN or ±Inf.
	ErrNonFinite = errors.New("bq: NaN or Inf encountered")

	// ErrNodeOutOfDomain is returned when a supplied node lies outside
	// the bounded support of the measure.
	ErrNodeOutOfDomain = errors.New("bq: node outside measure domain")

	// ErrIllConditioned is returned when the jitter-regularized Gram
	// matrix is not solvable. No automatic retry with a larger jitter is
	// performed; the prior valid state is preserved.
	ErrIllConditioned = errors.New("bq: regularized Gram matrix not solvable")

	// ErrNilComponent is returned by New when a mandatory collaborator
	// (kernel, measure, belief update, stopping criterion) is nil.
	ErrNilComponent = errors.New("bq: nil component")
)
