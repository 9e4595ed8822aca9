// Package kernels: sentinel error set, matched via errors.Is.

package kernels

import "errors"

var (
	// ErrInvalidDimension indicates a non-positive input dimension.
	ErrInvalidDimension = errors.New("kernels: input dimension must be > 0")

	// ErrInvalidLengthscale indicates a non-positive or non-finite
	// lengthscale.
	ErrInvalidLengthscale = errors.New("kernels: lengthscale must be positive and finite")

	// ErrDimensionMismatch indicates that a kernel and a measure (or a
	// point) disagree on the input dimension.
	ErrDimensionMismatch = errors.New("kernels: dimension mismatch")

	// ErrUnsupportedPair indicates that no closed-form embedding exists
	// for the requested kernel–measure combination.
	ErrUnsupportedPair = errors.New("kernels: no embedding for this kernel-measure pair")
)
