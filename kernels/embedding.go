package kernels

import (
	"math"

	"github.com/quadlab/bayesquad/measures"
)

// Embedding is a kernel paired with an integration measure μ. It exposes
// the two integrals the quadrature posterior is built from.
type Embedding interface {
	// Kernel returns the embedded kernel.
	Kernel() Kernel

	// Measure returns the integration measure.
	Measure() measures.Measure

	// KernelMean returns ∫ k(x, y) dμ(y), the kernel mean at x.
	// x must have exactly InputDim coordinates.
	KernelMean(x []float64) float64

	// MeanOfMeans returns ∫∫ k(x, y) dμ(x) dμ(y), the prior variance of
	// the integral under a zero-mean GP with covariance k.
	MeanOfMeans() float64
}

// NewEmbedding resolves the closed-form embedding for a kernel–measure
// pair. Pairs without a closed form fail with ErrUnsupportedPair; kernels
// and measures of different dimension fail with ErrDimensionMismatch.
func NewEmbedding(k Kernel, mu measures.Measure) (Embedding, error) {
	if k == nil || mu == nil {
		return nil, ErrUnsupportedPair
	}
	if k.InputDim() != mu.InputDim() {
		return nil, ErrDimensionMismatch
	}

	eq, ok := k.(*ExpQuad)
	if !ok {
		return nil, ErrUnsupportedPair
	}
	switch m := mu.(type) {
	case *measures.Lebesgue:
		return newExpQuadLebesgue(eq, m), nil
	case *measures.Gaussian:
		return newExpQuadGaussian(eq, m), nil
	default:
		return nil, ErrUnsupportedPair
	}
}

// expQuadLebesgue embeds ExpQuad against (possibly normalized) Lebesgue
// measure on a box. Both integrals factorize over dimensions:
//
//	∫_a^b exp(-(x-y)²/(2ℓ²)) dy = ℓ√(π/2) [erf((b-x)/(ℓ√2)) - erf((a-x)/(ℓ√2))]
//	∫_a^b ∫_a^b k dy dx         = 2ℓ² [√π r erf(r) + exp(-r²) - 1], r = (b-a)/(ℓ√2)
type expQuadLebesgue struct {
	kernel  *ExpQuad
	measure *measures.Lebesgue
	lo      []float64
	hi      []float64
	norm    float64 // density of the measure: 1 or 1/volume
}

func newExpQuadLebesgue(k *ExpQuad, m *measures.Lebesgue) *expQuadLebesgue {
	lo, hi, _ := m.Bounds()
	norm := 1.0
	if m.Normalized() {
		norm = 1 / m.Domain().Volume()
	}
	return &expQuadLebesgue{kernel: k, measure: m, lo: lo, hi: hi, norm: norm}
}

func (e *expQuadLebesgue) Kernel() Kernel            { return e.kernel }
func (e *expQuadLebesgue) Measure() measures.Measure { return e.measure }

func (e *expQuadLebesgue) KernelMean(x []float64) float64 {
	ell := e.kernel.Lengthscale()
	c := ell * math.Sqrt(math.Pi/2)
	out := e.norm
	for j := range x {
		u := (e.hi[j] - x[j]) / (ell * math.Sqrt2)
		v := (e.lo[j] - x[j]) / (ell * math.Sqrt2)
		out *= c * (math.Erf(u) - math.Erf(v))
	}
	return out
}

func (e *expQuadLebesgue) MeanOfMeans() float64 {
	ell := e.kernel.Lengthscale()
	out := e.norm * e.norm
	for j := range e.lo {
		r := (e.hi[j] - e.lo[j]) / (ell * math.Sqrt2)
		out *= 2 * ell * ell * (math.SqrtPi*r*math.Erf(r) + math.Exp(-r*r) - 1)
	}
	return out
}

// expQuadGaussian embeds ExpQuad against a diagonal Gaussian measure.
// Convolving the kernel with N(μ_j, σ_j²) inflates the variance per
// dimension:
//
//	∫ k(x, y) dN(y) = ∏_j √(ℓ²/(ℓ²+σ_j²)) exp(-(x_j-μ_j)²/(2(ℓ²+σ_j²)))
//	∫∫ k dN dN      = ∏_j √(ℓ²/(ℓ²+2σ_j²))
type expQuadGaussian struct {
	kernel  *ExpQuad
	measure *measures.Gaussian
	mean    []float64
	vars    []float64
}

func newExpQuadGaussian(k *ExpQuad, m *measures.Gaussian) *expQuadGaussian {
	return &expQuadGaussian{kernel: k, measure: m, mean: m.Mean(), vars: m.Variances()}
}

func (e *expQuadGaussian) Kernel() Kernel            { return e.kernel }
func (e *expQuadGaussian) Measure() measures.Measure { return e.measure }

func (e *expQuadGaussian) KernelMean(x []float64) float64 {
	ell2 := e.kernel.Lengthscale() * e.kernel.Lengthscale()
	out := 1.0
	for j := range x {
		s := ell2 + e.vars[j]
		d := x[j] - e.mean[j]
		out *= math.Sqrt(ell2/s) * math.Exp(-d*d/(2*s))
	}
	return out
}

func (e *expQuadGaussian) MeanOfMeans() float64 {
	ell2 := e.kernel.Lengthscale() * e.kernel.Lengthscale()
	out := 1.0
	for j := range e.vars {
		out *= math.Sqrt(ell2 / (ell2 + 2*e.vars[j]))
	}
	return out
}
