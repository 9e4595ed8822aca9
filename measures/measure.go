package measures

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// Measure is an integration measure μ over R^d.
//
// Implementations must be deterministic given the same *rand.Rand state:
// Sample must consume randomness only from the supplied source.
type Measure interface {
	// InputDim returns the dimension d of the measure's input space.
	InputDim() int

	// Bounds returns the support box of the measure. bounded reports
	// whether the support is a finite box; when false, lo and hi are nil.
	Bounds() (lo, hi []float64, bounded bool)

	// Mass returns the total mass μ(R^d). It is 1 for probability
	// measures and the box volume for unnormalized Lebesgue.
	Mass() float64

	// Sample draws n i.i.d. points from the measure (after normalization)
	// into an n×d matrix, one point per row. The random source is
	// mandatory; ErrNilRNG is returned when it is absent.
	Sample(n int, rng *rand.Rand) (*mat.Dense, error)

	// Contains reports whether x lies in the measure's support.
	// Point dimension must match InputDim.
	Contains(x []float64) bool
}

// Domain is a bounded axis-aligned box [Lo_i, Hi_i]^d.
// Construct via NewDomain or NewDomainScalar; a zero Domain is invalid.
type Domain struct {
	lo []float64
	hi []float64
}

// NewDomain builds a box from per-dimension bounds. Every dimension must
// satisfy lo < hi with finite endpoints.
func NewDomain(lo, hi []float64) (Domain, error) {
	if len(lo) == 0 || len(lo) != len(hi) {
		return Domain{}, ErrDimensionMismatch
	}
	for i := range lo {
		if !isFinite(lo[i]) || !isFinite(hi[i]) || lo[i] >= hi[i] {
			return Domain{}, ErrInvalidBounds
		}
	}
	return Domain{lo: dup(lo), hi: dup(hi)}, nil
}

// NewDomainScalar builds the box [lo, hi]^dim, broadcasting one scalar
// interval to every dimension (the common domain=(0,1) shortcut).
func NewDomainScalar(lo, hi float64, dim int) (Domain, error) {
	if dim <= 0 {
		return Domain{}, ErrInvalidDimension
	}
	los := make([]float64, dim)
	his := make([]float64, dim)
	for i := 0; i < dim; i++ {
		los[i] = lo
		his[i] = hi
	}
	return NewDomain(los, his)
}

// Dim returns the dimension of the box.
func (d Domain) Dim() int { return len(d.lo) }

// Bounds returns copies of the per-dimension bounds.
func (d Domain) Bounds() (lo, hi []float64) { return dup(d.lo), dup(d.hi) }

// Volume returns the product of side lengths.
func (d Domain) Volume() float64 {
	v := 1.0
	for i := range d.lo {
		v *= d.hi[i] - d.lo[i]
	}
	return v
}

// contains reports whether x lies inside the box (boundary included).
func (d Domain) contains(x []float64) bool {
	if len(x) != len(d.lo) {
		return false
	}
	for i := range x {
		if x[i] < d.lo[i] || x[i] > d.hi[i] {
			return false
		}
	}
	return true
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// dup returns a defensive copy of s.
func dup(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
