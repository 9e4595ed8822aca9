package measures

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Lebesgue is the uniform measure over a bounded box.
//
// Unnormalized (the default), its density is 1 on the box and its mass is
// the box volume. Normalized, the density is 1/volume and the mass is 1.
// Sampling is identical in both cases: uniform draws inside the box.
type Lebesgue struct {
	domain     Domain
	normalized bool
}

// NewLebesgue builds the unnormalized Lebesgue measure over domain.
func NewLebesgue(domain Domain) (*Lebesgue, error) {
	return newLebesgue(domain, false)
}

// NewLebesgueNormalized builds the Lebesgue probability measure over
// domain (density 1/volume, mass 1).
func NewLebesgueNormalized(domain Domain) (*Lebesgue, error) {
	return newLebesgue(domain, true)
}

func newLebesgue(domain Domain, normalized bool) (*Lebesgue, error) {
	if domain.Dim() == 0 {
		return nil, ErrInvalidBounds
	}
	return &Lebesgue{domain: domain, normalized: normalized}, nil
}

// InputDim returns the box dimension.
func (l *Lebesgue) InputDim() int { return l.domain.Dim() }

// Normalized reports whether the measure integrates to 1.
func (l *Lebesgue) Normalized() bool { return l.normalized }

// Domain returns the underlying box.
func (l *Lebesgue) Domain() Domain { return l.domain }

// Bounds returns the box bounds; Lebesgue is always bounded.
func (l *Lebesgue) Bounds() (lo, hi []float64, bounded bool) {
	lo, hi = l.domain.Bounds()
	return lo, hi, true
}

// Mass returns the box volume, or 1 when normalized.
func (l *Lebesgue) Mass() float64 {
	if l.normalized {
		return 1
	}
	return l.domain.Volume()
}

// Sample draws n uniform points inside the box, one per row.
func (l *Lebesgue) Sample(n int, rng *rand.Rand) (*mat.Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidSampleSize
	}
	if rng == nil {
		return nil, ErrNilRNG
	}

	dim := l.domain.Dim()
	dists := make([]distuv.Uniform, dim)
	for j := 0; j < dim; j++ {
		dists[j] = distuv.Uniform{Min: l.domain.lo[j], Max: l.domain.hi[j], Src: rng}
	}

	out := mat.NewDense(n, dim, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < dim; j++ {
			out.Set(i, j, dists[j].Rand())
		}
	}
	return out, nil
}

// Contains reports whether x lies inside the box (boundary included).
func (l *Lebesgue) Contains(x []float64) bool { return l.domain.contains(x) }
