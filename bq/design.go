package bq

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/quadlab/bayesquad/measures"
)

// InitialDesign produces a one-shot warm-start batch of nodes before
// adaptive acquisition begins.
type InitialDesign interface {
	// Generate returns count nodes as a count×d matrix, one per row.
	// Stochastic designs require rng and fail with ErrMissingRNG without
	// one.
	Generate(count int, rng *rand.Rand) (*mat.Dense, error)

	// NumNodes returns the configured warm-start batch size.
	NumNodes() int

	// RequiresRNG reports whether Generate needs a random source.
	RequiresRNG() bool
}

// newInitialDesign resolves a DesignID to a concrete design. The closed
// identifier set is the single dispatch point: adding a variant means
// extending DesignID and this switch.
func newInitialDesign(id DesignID, measure measures.Measure, numNodes int) (InitialDesign, error) {
	switch id {
	case DesignNone, "":
		return nil, nil
	case DesignMC:
		return &MCDesign{measure: measure, numNodes: numNodes}, nil
	case DesignLatin:
		lo, hi, bounded := measure.Bounds()
		if !bounded {
			return nil, ErrUnboundedDomain
		}
		return &LatinDesign{lo: lo, hi: hi, numNodes: numNodes}, nil
	default:
		return nil, ErrUnknownDesign
	}
}

// MCDesign draws the warm-start batch i.i.d. from the measure.
type MCDesign struct {
	measure  measures.Measure
	numNodes int
}

// NumNodes returns the configured batch size.
func (d *MCDesign) NumNodes() int { return d.numNodes }

// RequiresRNG reports true: Monte-Carlo draws are stochastic.
func (d *MCDesign) RequiresRNG() bool { return true }

// Generate draws count nodes from the measure.
func (d *MCDesign) Generate(count int, rng *rand.Rand) (*mat.Dense, error) {
	if count <= 0 {
		return nil, ErrShapeMismatch
	}
	if rng == nil {
		return nil, ErrMissingRNG
	}
	return d.measure.Sample(count, rng)
}

// LatinDesign stratifies the warm-start batch over the bounded domain:
// each dimension is split into count equal strata, one sample per
// stratum, with strata independently permuted per dimension so the batch
// is space-filling rather than gridded.
type LatinDesign struct {
	lo       []float64
	hi       []float64
	numNodes int
}

// NumNodes returns the configured batch size.
func (d *LatinDesign) NumNodes() int { return d.numNodes }

// RequiresRNG reports true: strata permutations and in-stratum offsets
// consume randomness.
func (d *LatinDesign) RequiresRNG() bool { return true }

// Generate returns a count-node Latin hypercube over the domain.
func (d *LatinDesign) Generate(count int, rng *rand.Rand) (*mat.Dense, error) {
	if count <= 0 {
		return nil, ErrShapeMismatch
	}
	if rng == nil {
		return nil, ErrMissingRNG
	}

	dim := len(d.lo)
	out := mat.NewDense(count, dim, nil)
	for j := 0; j < dim; j++ {
		perm := rng.Perm(count)
		width := (d.hi[j] - d.lo[j]) / float64(count)
		for i := 0; i < count; i++ {
			// stratum perm[i], uniform offset inside it
			u := (float64(perm[i]) + rng.Float64()) * width
			out.Set(i, j, d.lo[j]+u)
		}
	}
	return out, nil
}
