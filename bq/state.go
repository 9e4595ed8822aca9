package bq

import (
	"gonum.org/v1/gonum/mat"

	"github.com/quadlab/bayesquad/kernels"
	"github.com/quadlab/bayesquad/randvar"
)

// State is the per-iteration snapshot of an estimation session. A belief
// update never mutates its input state; it returns a fresh snapshot, so
// invariants are never observable mid-update and history entries never
// alias the current state.
//
// Invariants (established by the belief update):
//
//	NumNodes() == len(fun evals) == Gram rows == Gram cols == len(kernel means)
//	Gram is symmetric and, after jitter regularization, positive definite
//	ScaleSq() > 0
//	every node lies in the measure's support when the support is bounded
type State struct {
	nodes       *mat.Dense    // n×d accumulated nodes, append-only
	funEvals    *mat.VecDense // n parallel integrand values
	gram        *mat.SymDense // n×n kernel evaluations (no jitter)
	kernelMeans *mat.VecDense // n kernel means, one per node
	chol        *mat.Cholesky // factorization of gram + jitter·I
	embedding   kernels.Embedding
	belief      randvar.Normal
	scaleSq     float64
	prevBeliefs []randvar.Normal
}

// NumNodes returns the number of accumulated nodes.
func (s *State) NumNodes() int {
	if s == nil || s.nodes == nil {
		return 0
	}
	r, _ := s.nodes.Dims()
	return r
}

// InputDim returns the node dimension.
func (s *State) InputDim() int {
	return s.embedding.Kernel().InputDim()
}

// Nodes returns a copy of the accumulated nodes, one per row.
func (s *State) Nodes() *mat.Dense {
	return mat.DenseCopyOf(s.nodes)
}

// FunEvals returns a copy of the accumulated integrand values.
func (s *State) FunEvals() []float64 {
	out := make([]float64, s.funEvals.Len())
	copy(out, s.funEvals.RawVector().Data)
	return out
}

// Gram returns a copy of the (unregularized) Gram matrix.
func (s *State) Gram() *mat.SymDense {
	out := mat.NewSymDense(s.gram.SymmetricDim(), nil)
	out.CopySym(s.gram)
	return out
}

// KernelMeans returns a copy of the kernel-mean vector.
func (s *State) KernelMeans() []float64 {
	out := make([]float64, s.kernelMeans.Len())
	copy(out, s.kernelMeans.RawVector().Data)
	return out
}

// IntegralBelief returns the current posterior belief over the integral.
func (s *State) IntegralBelief() randvar.Normal { return s.belief }

// ScaleSq returns the current output-scale correction factor.
func (s *State) ScaleSq() float64 { return s.scaleSq }

// PreviousBeliefs returns a copy of the belief history, oldest first.
// Entry 0 is the uninformed prior N(0, ∫∫k dμdμ) that held before the
// first update; one entry is appended per belief update.
func (s *State) PreviousBeliefs() []randvar.Normal {
	out := make([]randvar.Normal, len(s.prevBeliefs))
	copy(out, s.prevBeliefs)
	return out
}

// PredictiveVariance returns the GP posterior variance of the integrand
// at x, scaled by ScaleSq. x must have InputDim coordinates.
//
// This is the uncertainty-sampling score used by the us_rand policy.
func (s *State) PredictiveVariance(x []float64) (float64, error) {
	k := s.embedding.Kernel()
	if len(x) != k.InputDim() {
		return 0, ErrShapeMismatch
	}

	n := s.NumNodes()
	kx := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		kx.SetVec(i, k.Evaluate(x, s.nodes.RawRowView(i)))
	}

	var solved mat.VecDense
	if err := s.chol.SolveVecTo(&solved, kx); err != nil {
		return 0, ErrIllConditioned
	}
	v := k.Evaluate(x, x) - mat.Dot(kx, &solved)
	if v < 0 {
		// cancellation in the quadratic form
		v = 0
	}
	return s.scaleSq * v, nil
}
