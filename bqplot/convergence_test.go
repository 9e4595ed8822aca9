package bqplot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/quadlab/bayesquad/bq"
	"github.com/quadlab/bayesquad/bqplot"
	"github.com/quadlab/bayesquad/kernels"
	"github.com/quadlab/bayesquad/measures"
)

// historyState runs a short deterministic session and returns its final
// state, which carries a multi-entry belief history.
func historyState(t *testing.T) *bq.State {
	t.Helper()
	dom, err := measures.NewDomainScalar(0, 1, 1)
	require.NoError(t, err)
	b, err := bq.FromProblem(bq.Problem{
		InputDim: 1,
		Domain:   &dom,
		Policy:   bq.PolicyVanDerCorput,
	}, bq.WithMaxEvals(6))
	require.NoError(t, err)

	fun := bq.FromPointFunc(func(x []float64) float64 { return x[0] })
	_, state, _, err := b.Integrate(fun, nil, nil, nil)
	require.NoError(t, err)
	return state
}

// TestConvergencePlot_NoHistory rejects nil and single-entry states.
func TestConvergencePlot_NoHistory(t *testing.T) {
	_, err := bqplot.ConvergencePlot(nil)
	assert.ErrorIs(t, err, bqplot.ErrNoHistory)

	err = bqplot.SaveConvergencePNG(nil, "unused.png")
	assert.ErrorIs(t, err, bqplot.ErrNoHistory)
}

// TestConvergencePlot builds the plot from a real session history.
func TestConvergencePlot(t *testing.T) {
	state := historyState(t)

	p, err := bqplot.ConvergencePlot(state)
	require.NoError(t, err)
	assert.Equal(t, "integral belief convergence", p.Title.Text)
	assert.Equal(t, "belief update", p.X.Label.Text)
}

// TestSaveConvergencePNG renders the plot to disk.
func TestSaveConvergencePNG(t *testing.T) {
	state := historyState(t)
	path := filepath.Join(t.TempDir(), "convergence.png")

	require.NoError(t, bqplot.SaveConvergencePNG(state, path))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(0))
}

// TestConvergencePlot_SingleUpdate keeps working with the minimum
// history: one update plus the current belief.
func TestConvergencePlot_SingleUpdate(t *testing.T) {
	dom, err := measures.NewDomainScalar(0, 1, 1)
	require.NoError(t, err)
	leb, err := measures.NewLebesgue(dom)
	require.NoError(t, err)
	k, err := kernels.NewExpQuad(1, 1)
	require.NoError(t, err)
	emb, err := kernels.NewEmbedding(k, leb)
	require.NoError(t, err)
	bu, err := bq.NewBeliefUpdate(emb, 1e-8, bq.ScaleFixed)
	require.NoError(t, err)

	state, err := bu.Update(nil, mat.NewDense(1, 1, []float64{0.5}), []float64{1})
	require.NoError(t, err)

	_, err = bqplot.ConvergencePlot(state)
	assert.NoError(t, err)
}
