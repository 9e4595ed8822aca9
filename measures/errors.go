// Package measures: sentinel error set.
// All constructors and methods return these sentinels; tests match them
// via errors.Is. No function in this package panics on user input.

package measures

import "errors"

var (
	// ErrInvalidDimension indicates a non-positive input dimension.
	ErrInvalidDimension = errors.New("measures: input dimension must be > 0")

	// ErrDimensionMismatch indicates slices whose lengths disagree with the
	// measure's input dimension.
	ErrDimensionMismatch = errors.New("measures: dimension mismatch")

	// ErrInvalidBounds indicates a degenerate or non-finite box: every
	// dimension must satisfy lo < hi with finite endpoints.
	ErrInvalidBounds = errors.New("measures: invalid domain bounds")

	// ErrInvalidVariance indicates a non-positive or non-finite variance
	// entry for a Gaussian measure.
	ErrInvalidVariance = errors.New("measures: variance must be positive and finite")

	// ErrNilRNG indicates that sampling was requested without a random
	// source. Measures never fall back to a global generator.
	ErrNilRNG = errors.New("measures: nil random source")

	// ErrInvalidSampleSize indicates a non-positive sample count.
	ErrInvalidSampleSize = errors.New("measures: sample size must be > 0")
)
