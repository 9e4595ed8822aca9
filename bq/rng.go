// Package bq - RNG utilities for reproducible estimation sessions.
//
// This file centralizes deterministic random generation for the solver.
//
// Goals:
//   - Determinism: same seed ⇒ identical acquired nodes across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere in the package.
//   - One stream: the same *rand.Rand is threaded by parameter through
//     every call that needs randomness (policies, initial designs).
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. The loop is single-threaded by
//     contract, so one stream per Integrate call is sufficient.
package bq

import "golang.org/x/exp/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed uint64 = 1

// NewRNG returns a deterministic *rand.Rand for use with Integrate.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise the seed verbatim.
//
// The returned generator is the x/exp/rand flavor because the measures
// sample through gonum's distuv distributions, which consume that source
// type.
func NewRNG(seed uint64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
