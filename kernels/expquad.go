package kernels

import "math"

// Kernel is a symmetric positive-semi-definite covariance function.
//
// Evaluate assumes both points have exactly InputDim coordinates; sizing
// is the caller's responsibility (hot path, validated once upstream).
type Kernel interface {
	// InputDim returns the dimension d of the kernel's input space.
	InputDim() int

	// Evaluate returns k(x, y).
	Evaluate(x, y []float64) float64
}

// ExpQuad is the exponentiated quadratic (RBF) kernel
//
//	k(x, y) = exp(-||x-y||² / (2ℓ²))
//
// with a single scalar lengthscale ℓ shared across dimensions. Its output
// scale is fixed at 1; the solver calibrates an output-scale correction
// separately.
type ExpQuad struct {
	dim int
	ell float64
}

// NewExpQuad builds an ExpQuad kernel for dim-dimensional inputs with the
// given lengthscale.
func NewExpQuad(dim int, lengthscale float64) (*ExpQuad, error) {
	if dim <= 0 {
		return nil, ErrInvalidDimension
	}
	if !(lengthscale > 0) || math.IsInf(lengthscale, 0) {
		return nil, ErrInvalidLengthscale
	}
	return &ExpQuad{dim: dim, ell: lengthscale}, nil
}

// InputDim returns the input dimension.
func (k *ExpQuad) InputDim() int { return k.dim }

// Lengthscale returns ℓ.
func (k *ExpQuad) Lengthscale() float64 { return k.ell }

// Evaluate returns exp(-||x-y||² / (2ℓ²)).
func (k *ExpQuad) Evaluate(x, y []float64) float64 {
	var sq float64
	for i := range x {
		d := x[i] - y[i]
		sq += d * d
	}
	return math.Exp(-sq / (2 * k.ell * k.ell))
}
