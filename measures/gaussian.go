package measures

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gaussian is a Gaussian probability measure with diagonal covariance.
// Its support is all of R^d and its mass is 1.
type Gaussian struct {
	mean []float64
	vars []float64
}

// NewGaussian builds a Gaussian measure from a mean vector and a vector
// of per-dimension variances. Variances must be positive and finite.
func NewGaussian(mean, variances []float64) (*Gaussian, error) {
	if len(mean) == 0 || len(mean) != len(variances) {
		return nil, ErrDimensionMismatch
	}
	for i := range mean {
		if !isFinite(mean[i]) {
			return nil, ErrInvalidBounds
		}
		if !isFinite(variances[i]) || variances[i] <= 0 {
			return nil, ErrInvalidVariance
		}
	}
	return &Gaussian{mean: dup(mean), vars: dup(variances)}, nil
}

// NewGaussianIsotropic builds the measure N(mean·1, variance·I) in dim
// dimensions from two scalars.
func NewGaussianIsotropic(mean, variance float64, dim int) (*Gaussian, error) {
	if dim <= 0 {
		return nil, ErrInvalidDimension
	}
	means := make([]float64, dim)
	vars := make([]float64, dim)
	for i := 0; i < dim; i++ {
		means[i] = mean
		vars[i] = variance
	}
	return NewGaussian(means, vars)
}

// InputDim returns the dimension of the measure.
func (g *Gaussian) InputDim() int { return len(g.mean) }

// Mean returns a copy of the mean vector.
func (g *Gaussian) Mean() []float64 { return dup(g.mean) }

// Variances returns a copy of the per-dimension variances.
func (g *Gaussian) Variances() []float64 { return dup(g.vars) }

// Bounds reports an unbounded support.
func (g *Gaussian) Bounds() (lo, hi []float64, bounded bool) {
	return nil, nil, false
}

// Mass returns 1: Gaussian measures are probability measures.
func (g *Gaussian) Mass() float64 { return 1 }

// Sample draws n points from the measure, one per row.
func (g *Gaussian) Sample(n int, rng *rand.Rand) (*mat.Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidSampleSize
	}
	if rng == nil {
		return nil, ErrNilRNG
	}

	dim := len(g.mean)
	dists := make([]distuv.Normal, dim)
	for j := 0; j < dim; j++ {
		dists[j] = distuv.Normal{Mu: g.mean[j], Sigma: math.Sqrt(g.vars[j]), Src: rng}
	}

	out := mat.NewDense(n, dim, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < dim; j++ {
			out.Set(i, j, dists[j].Rand())
		}
	}
	return out, nil
}

// Contains reports whether x has the right dimension; the support is all
// of R^d, so any correctly-sized finite point is inside.
func (g *Gaussian) Contains(x []float64) bool {
	if len(x) != len(g.mean) {
		return false
	}
	for i := range x {
		if math.IsNaN(x[i]) {
			return false
		}
	}
	return true
}
