package bq

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/quadlab/bayesquad/kernels"
	"github.com/quadlab/bayesquad/randvar"
)

// BeliefUpdate folds a batch of (node, evaluation) pairs into a State:
// it extends the Gram matrix and kernel-mean vector, solves the
// jitter-regularized system for the GP weights, and recomputes the
// integral posterior and output-scale correction.
//
// Updates are atomic: on any failure the input state is returned
// untouched alongside the error, so the caller always holds a valid
// snapshot.
type BeliefUpdate struct {
	embedding       kernels.Embedding
	jitter          float64
	scaleEstimation ScaleEstimation
}

// NewBeliefUpdate builds a belief update for the given embedding.
// jitter must be finite and non-negative.
func NewBeliefUpdate(embedding kernels.Embedding, jitter float64, scale ScaleEstimation) (*BeliefUpdate, error) {
	if embedding == nil {
		return nil, ErrNilComponent
	}
	if !(jitter >= 0) || math.IsInf(jitter, 0) {
		return nil, wrapOption("jitter must be finite and >= 0")
	}
	if scale != ScaleFixed && scale != ScaleMLE {
		return nil, wrapOption("unknown scale-estimation mode")
	}
	return &BeliefUpdate{embedding: embedding, jitter: jitter, scaleEstimation: scale}, nil
}

// Jitter returns the configured diagonal regularization.
func (bu *BeliefUpdate) Jitter() float64 { return bu.jitter }

// ScaleEstimation returns the configured output-scale mode.
func (bu *BeliefUpdate) ScaleEstimation() ScaleEstimation { return bu.scaleEstimation }

// Update returns a new State with newNodes/newEvals folded in. prior may
// be nil for the first batch of a session.
//
// The belief that held before this update (the uninformed prior
// N(0, ∫∫k dμdμ) when prior is nil) is appended to the history of the
// returned state, so the history length equals the number of updates
// performed.
func (bu *BeliefUpdate) Update(prior *State, newNodes *mat.Dense, newEvals []float64) (*State, error) {
	kern := bu.embedding.Kernel()
	dim := kern.InputDim()
	measure := bu.embedding.Measure()

	if newNodes == nil {
		return prior, ErrMissingNodes
	}
	nNew, cols := newNodes.Dims()
	if nNew == 0 || cols != dim {
		return prior, ErrShapeMismatch
	}
	if len(newEvals) != nNew {
		return prior, ErrShapeMismatch
	}
	_, _, bounded := measure.Bounds()
	for i := 0; i < nNew; i++ {
		row := newNodes.RawRowView(i)
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return prior, ErrNonFinite
			}
		}
		if bounded && !measure.Contains(row) {
			return prior, ErrNodeOutOfDomain
		}
		if math.IsNaN(newEvals[i]) || math.IsInf(newEvals[i], 0) {
			return prior, ErrNonFinite
		}
	}

	nOld := prior.NumNodes()
	n := nOld + nNew

	// Extend nodes and evaluations.
	nodes := mat.NewDense(n, dim, nil)
	evals := mat.NewVecDense(n, nil)
	if nOld > 0 {
		nodes.Slice(0, nOld, 0, dim).(*mat.Dense).Copy(prior.nodes)
		for i := 0; i < nOld; i++ {
			evals.SetVec(i, prior.funEvals.AtVec(i))
		}
	}
	for i := 0; i < nNew; i++ {
		nodes.SetRow(nOld+i, newNodes.RawRowView(i))
		evals.SetVec(nOld+i, newEvals[i])
	}

	// Extend the Gram matrix: keep the old block, add the cross block and
	// the new-vs-new block.
	gram := mat.NewSymDense(n, nil)
	if nOld > 0 {
		for i := 0; i < nOld; i++ {
			for j := i; j < nOld; j++ {
				gram.SetSym(i, j, prior.gram.At(i, j))
			}
		}
	}
	for i := nOld; i < n; i++ {
		xi := nodes.RawRowView(i)
		for j := 0; j <= i; j++ {
			gram.SetSym(j, i, kern.Evaluate(nodes.RawRowView(j), xi))
		}
	}

	// Extend the kernel-mean vector.
	kernelMeans := mat.NewVecDense(n, nil)
	if nOld > 0 {
		for i := 0; i < nOld; i++ {
			kernelMeans.SetVec(i, prior.kernelMeans.AtVec(i))
		}
	}
	for i := nOld; i < n; i++ {
		kernelMeans.SetVec(i, bu.embedding.KernelMean(nodes.RawRowView(i)))
	}

	// Regularize and factorize. No jitter escalation on failure.
	regularized := mat.NewSymDense(n, nil)
	regularized.CopySym(gram)
	for i := 0; i < n; i++ {
		regularized.SetSym(i, i, regularized.At(i, i)+bu.jitter)
	}
	chol := &mat.Cholesky{}
	if ok := chol.Factorize(regularized); !ok {
		return prior, ErrIllConditioned
	}

	// GP weights and posterior over the integral.
	var weights mat.VecDense
	if err := chol.SolveVecTo(&weights, evals); err != nil {
		return prior, ErrIllConditioned
	}
	mean := mat.Dot(kernelMeans, &weights)

	var kmSolved mat.VecDense
	if err := chol.SolveVecTo(&kmSolved, kernelMeans); err != nil {
		return prior, ErrIllConditioned
	}
	variance := bu.embedding.MeanOfMeans() - mat.Dot(kernelMeans, &kmSolved)
	if variance < 0 {
		// cancellation in the quadratic form
		variance = 0
	}

	scaleSq := 1.0
	if bu.scaleEstimation == ScaleMLE {
		// MLE residual correction fᵀG⁻¹f / n; a degenerate all-zero
		// observation vector keeps the neutral scale.
		if est := mat.Dot(evals, &weights) / float64(n); est > 0 {
			scaleSq = est
		}
	}
	variance *= scaleSq

	// Push the pre-update belief onto the history.
	var history []randvar.Normal
	if prior == nil {
		history = []randvar.Normal{{Mean: 0, Variance: bu.embedding.MeanOfMeans()}}
	} else {
		history = make([]randvar.Normal, len(prior.prevBeliefs), len(prior.prevBeliefs)+1)
		copy(history, prior.prevBeliefs)
		history = append(history, prior.belief)
	}

	return &State{
		nodes:       nodes,
		funEvals:    evals,
		gram:        gram,
		kernelMeans: kernelMeans,
		chol:        chol,
		embedding:   bu.embedding,
		belief:      randvar.Normal{Mean: mean, Variance: variance},
		scaleSq:     scaleSq,
		prevBeliefs: history,
	}, nil
}
