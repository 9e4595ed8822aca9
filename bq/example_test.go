package bq_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/quadlab/bayesquad/bq"
	"github.com/quadlab/bayesquad/measures"
)

// ExampleFromProblem runs a deterministic adaptive session over [0,1]:
// the van der Corput policy needs no randomness, so the whole run is
// reproducible without a seed.
func ExampleFromProblem() {
	domain, err := measures.NewDomainScalar(0, 1, 1)
	if err != nil {
		panic(err)
	}

	b, err := bq.FromProblem(bq.Problem{
		InputDim: 1,
		Domain:   &domain,
		Policy:   bq.PolicyVanDerCorput,
	}, bq.WithMaxEvals(8))
	if err != nil {
		panic(err)
	}

	fun := bq.FromPointFunc(func(x []float64) float64 { return x[0] * x[0] })
	_, state, info, err := b.Integrate(fun, nil, nil, nil)
	if err != nil {
		panic(err)
	}

	fmt.Printf("evals: %d\n", info.NumEvals)
	fmt.Printf("stop: %s\n", info.StopReason)
	fmt.Printf("updates: %d\n", len(state.PreviousBeliefs()))
	// Output:
	// evals: 8
	// stop: max_evals
	// updates: 8
}

// ExampleBayesianQuadrature_Integrate shows the fixed-dataset path: all
// nodes and values are supplied up front and exactly one belief update
// runs.
func ExampleBayesianQuadrature_Integrate() {
	domain, err := measures.NewDomainScalar(0, 1, 1)
	if err != nil {
		panic(err)
	}

	b, err := bq.FromProblem(bq.Problem{
		InputDim: 1,
		Domain:   &domain,
		Policy:   bq.PolicyNone,
	})
	if err != nil {
		panic(err)
	}

	nodes := mat.NewDense(3, 1, []float64{0.25, 0.5, 0.75})
	values := []float64{0.0625, 0.25, 0.5625}

	_, state, info, err := b.Integrate(nil, nodes, values, nil)
	if err != nil {
		panic(err)
	}

	fmt.Printf("nodes: %d\n", state.NumNodes())
	fmt.Printf("stop: %s\n", info.StopReason)
	// Output:
	// nodes: 3
	// stop: immediate
}
