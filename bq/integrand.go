package bq

import (
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// FromPointFunc adapts a scalar point function f(x) into an Integrand
// that evaluates a batch row by row, in order.
func FromPointFunc(f func(x []float64) float64) Integrand {
	return func(nodes *mat.Dense) ([]float64, error) {
		rows, _ := nodes.Dims()
		out := make([]float64, rows)
		for i := 0; i < rows; i++ {
			out[i] = f(nodes.RawRowView(i))
		}
		return out, nil
	}
}

// FromPointFuncParallel adapts a scalar point function into an Integrand
// that evaluates the rows of a batch concurrently, at most workers at a
// time. Results are written back by row index, so order is preserved and
// each value stays associated with its originating node.
//
// f must be safe for concurrent calls (the integrand contract already
// assumes it is deterministic and side-effect-free). workers <= 0 means
// one goroutine per row.
func FromPointFuncParallel(f func(x []float64) float64, workers int) Integrand {
	return func(nodes *mat.Dense) ([]float64, error) {
		rows, _ := nodes.Dims()
		out := make([]float64, rows)

		var g errgroup.Group
		if workers > 0 {
			g.SetLimit(workers)
		}
		for i := 0; i < rows; i++ {
			i := i
			g.Go(func() error {
				out[i] = f(nodes.RawRowView(i))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return out, nil
	}
}
