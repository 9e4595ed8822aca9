package randvar

import (
	"errors"
	"math"
)

var (
	// ErrInvalidMean is returned by New when the mean is NaN.
	ErrInvalidMean = errors.New("randvar: mean must not be NaN")

	// ErrInvalidVariance is returned by New when the variance is negative
	// or NaN. +Inf is legal: it encodes a fully uninformed belief.
	ErrInvalidVariance = errors.New("randvar: variance must be non-negative")
)

// Normal is a scalar Gaussian belief: a mean and a non-negative variance.
// The zero value is the degenerate point mass at 0.
type Normal struct {
	// Mean is the expected value of the belief.
	Mean float64

	// Variance is the spread of the belief; 0 means certainty,
	// +Inf means a fully uninformed belief.
	Variance float64
}

// New validates and builds a Normal.
func New(mean, variance float64) (Normal, error) {
	if math.IsNaN(mean) {
		return Normal{}, ErrInvalidMean
	}
	if math.IsNaN(variance) || variance < 0 {
		return Normal{}, ErrInvalidVariance
	}
	return Normal{Mean: mean, Variance: variance}, nil
}

// StdDev returns the standard deviation, sqrt(Variance).
func (n Normal) StdDev() float64 {
	return math.Sqrt(n.Variance)
}
