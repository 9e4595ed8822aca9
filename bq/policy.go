package bq

import (
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/quadlab/bayesquad/kernels"
	"github.com/quadlab/bayesquad/measures"
)

// Policy proposes the next batch of evaluation nodes.
//
// Acquire receives the current state (nil before the first belief update)
// and must return exactly BatchSize nodes, one per row. Stochastic
// policies consume randomness only from the supplied rng.
type Policy interface {
	Acquire(state *State, rng *rand.Rand) (*mat.Dense, error)
	BatchSize() int
	RequiresRNG() bool
}

// newPolicy resolves a PolicyID to a concrete policy. The closed
// identifier set is the single dispatch point: adding a variant means
// extending PolicyID and this switch.
func newPolicy(id PolicyID, embedding kernels.Embedding, o options) (Policy, error) {
	measure := embedding.Measure()
	switch id {
	case PolicyRandom, "":
		return &RandomPolicy{measure: measure, batchSize: o.batchSize}, nil
	case PolicyVanDerCorput:
		if measure.InputDim() != 1 {
			return nil, ErrUnsupportedDimension
		}
		lo, hi, bounded := measure.Bounds()
		if !bounded {
			return nil, ErrUnboundedDomain
		}
		return &VanDerCorputPolicy{lo: lo[0], hi: hi[0], batchSize: o.batchSize}, nil
	case PolicyRandomMaxAcquisition:
		if o.numCandidates < o.batchSize {
			return nil, wrapOption("candidate pool smaller than batch size")
		}
		return &RandomMaxAcquisitionPolicy{
			measure:       measure,
			kernel:        embedding.Kernel(),
			batchSize:     o.batchSize,
			numCandidates: o.numCandidates,
		}, nil
	case PolicyNone:
		return nil, nil
	default:
		return nil, ErrUnknownPolicy
	}
}

// RandomPolicy ("bmc") draws each batch i.i.d. from the measure:
// Bayesian Monte Carlo. This is the default policy.
type RandomPolicy struct {
	measure   measures.Measure
	batchSize int
}

// BatchSize returns the configured batch size.
func (p *RandomPolicy) BatchSize() int { return p.batchSize }

// RequiresRNG reports true.
func (p *RandomPolicy) RequiresRNG() bool { return true }

// Acquire draws BatchSize nodes from the measure.
func (p *RandomPolicy) Acquire(_ *State, rng *rand.Rand) (*mat.Dense, error) {
	if rng == nil {
		return nil, ErrMissingRNG
	}
	return p.measure.Sample(p.batchSize, rng)
}

// VanDerCorputPolicy ("vdc") walks the deterministic base-2 van der
// Corput sequence scaled to a one-dimensional bounded domain. The
// sequence index continues from the cumulative node count, so successive
// batches extend the same low-discrepancy stream.
type VanDerCorputPolicy struct {
	lo        float64
	hi        float64
	batchSize int
}

// BatchSize returns the configured batch size.
func (p *VanDerCorputPolicy) BatchSize() int { return p.batchSize }

// RequiresRNG reports false: the sequence is deterministic.
func (p *VanDerCorputPolicy) RequiresRNG() bool { return false }

// Acquire returns the next BatchSize sequence points after the state's
// cumulative node count.
func (p *VanDerCorputPolicy) Acquire(state *State, _ *rand.Rand) (*mat.Dense, error) {
	start := state.NumNodes() + 1 // sequence is 1-based; index 0 is the left endpoint
	out := mat.NewDense(p.batchSize, 1, nil)
	for b := 0; b < p.batchSize; b++ {
		out.Set(b, 0, p.lo+vanDerCorput(uint64(start+b))*(p.hi-p.lo))
	}
	return out, nil
}

// vanDerCorput returns the n-th element of the base-2 van der Corput
// sequence: the radical inverse of n.
func vanDerCorput(n uint64) float64 {
	var v float64
	f := 0.5
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			v += f
		}
		f /= 2
	}
	return v
}

// RandomMaxAcquisitionPolicy ("us_rand") implements uncertainty sampling
// over a random candidate pool: it draws numCandidates i.i.d. nodes from
// the measure, scores each by predictive posterior variance under the
// current belief, and keeps the BatchSize highest-scoring candidates
// without replacement.
//
// Scores are frozen over the whole pool (not recomputed per pick) and
// ties keep draw order, so acquisition is deterministic given the rng.
type RandomMaxAcquisitionPolicy struct {
	measure       measures.Measure
	kernel        kernels.Kernel
	batchSize     int
	numCandidates int
}

// BatchSize returns the configured batch size.
func (p *RandomMaxAcquisitionPolicy) BatchSize() int { return p.batchSize }

// RequiresRNG reports true: the candidate pool is random.
func (p *RandomMaxAcquisitionPolicy) RequiresRNG() bool { return true }

// NumCandidates returns the candidate-pool size.
func (p *RandomMaxAcquisitionPolicy) NumCandidates() int { return p.numCandidates }

// Acquire scores a fresh candidate pool and returns the top batch.
func (p *RandomMaxAcquisitionPolicy) Acquire(state *State, rng *rand.Rand) (*mat.Dense, error) {
	if rng == nil {
		return nil, ErrMissingRNG
	}
	cands, err := p.measure.Sample(p.numCandidates, rng)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, p.numCandidates)
	for i := 0; i < p.numCandidates; i++ {
		x := cands.RawRowView(i)
		if state.NumNodes() == 0 {
			// no posterior yet: the prior variance k(x,x) is the score
			scores[i] = p.kernel.Evaluate(x, x)
			continue
		}
		scores[i], err = state.PredictiveVariance(x)
		if err != nil {
			return nil, err
		}
	}

	idx := make([]int, p.numCandidates)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })

	dim := p.measure.InputDim()
	out := mat.NewDense(p.batchSize, dim, nil)
	for b := 0; b < p.batchSize; b++ {
		out.SetRow(b, cands.RawRowView(idx[b]))
	}
	return out, nil
}
