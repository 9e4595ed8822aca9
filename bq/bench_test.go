package bq_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/quadlab/bayesquad/bq"
	"github.com/quadlab/bayesquad/kernels"
	"github.com/quadlab/bayesquad/measures"
)

// benchState builds an n-node state over [0,1] to fold updates into.
func benchState(b *testing.B, n int) (*bq.BeliefUpdate, *bq.State) {
	b.Helper()
	dom, err := measures.NewDomainScalar(0, 1, 1)
	if err != nil {
		b.Fatal(err)
	}
	leb, err := measures.NewLebesgue(dom)
	if err != nil {
		b.Fatal(err)
	}
	kern, err := kernels.NewExpQuad(1, 0.2)
	if err != nil {
		b.Fatal(err)
	}
	emb, err := kernels.NewEmbedding(kern, leb)
	if err != nil {
		b.Fatal(err)
	}
	bu, err := bq.NewBeliefUpdate(emb, 1e-6, bq.ScaleFixed)
	if err != nil {
		b.Fatal(err)
	}

	nodes := mat.NewDense(n, 1, nil)
	evals := make([]float64, n)
	for i := 0; i < n; i++ {
		x := (float64(i) + 0.5) / float64(n)
		nodes.Set(i, 0, x)
		evals[i] = x * x
	}
	state, err := bu.Update(nil, nodes, evals)
	if err != nil {
		b.Fatal(err)
	}
	return bu, state
}

// BenchmarkBeliefUpdate measures folding one node into a 50-node state:
// Gram extension plus a fresh Cholesky solve.
func BenchmarkBeliefUpdate(b *testing.B) {
	bu, state := benchState(b, 50)
	node := mat.NewDense(1, 1, []float64{0.123})
	eval := []float64{0.123 * 0.123}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bu.Update(state, node, eval); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPredictiveVariance measures the uncertainty-sampling score on
// a 50-node state.
func BenchmarkPredictiveVariance(b *testing.B) {
	_, state := benchState(b, 50)
	x := []float64{0.777}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := state.PredictiveVariance(x); err != nil {
			b.Fatal(err)
		}
	}
}
