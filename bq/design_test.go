package bq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/quadlab/bayesquad/bq"
	"github.com/quadlab/bayesquad/measures"
)

// designSession builds a session over [0,1]^dim with the default policy
// and the given initial design.
func designSession(t *testing.T, dim int, design bq.DesignID, opts ...bq.Option) *bq.BayesianQuadrature {
	t.Helper()
	b, err := bq.FromProblem(bq.Problem{
		InputDim:      dim,
		Domain:        unitDomain(t, dim),
		Policy:        bq.PolicyRandom,
		InitialDesign: design,
	}, opts...)
	require.NoError(t, err)
	return b
}

// TestNewInitialDesign_Errors exercises the factory's closed identifier
// set and per-design preconditions.
func TestNewInitialDesign_Errors(t *testing.T) {
	_, err := bq.FromProblem(bq.Problem{
		InputDim: 1, Domain: unitDomain(t, 1),
		Policy: bq.PolicyRandom, InitialDesign: "halton",
	})
	assert.ErrorIs(t, err, bq.ErrUnknownDesign)

	gauss, err := measures.NewGaussianIsotropic(0, 1, 2)
	require.NoError(t, err)
	_, err = bq.FromProblem(bq.Problem{
		InputDim: 2, Measure: gauss,
		Policy: bq.PolicyRandom, InitialDesign: bq.DesignLatin,
	})
	assert.ErrorIs(t, err, bq.ErrUnboundedDomain)

	_, err = bq.FromProblem(bq.Problem{
		InputDim: 1, Domain: unitDomain(t, 1),
		Policy: bq.PolicyNone, InitialDesign: bq.DesignMC,
	})
	assert.ErrorIs(t, err, bq.ErrDesignWithoutPolicy)
}

// TestDesign_DefaultNodeCount checks the 5 x input_dim default and its
// override.
func TestDesign_DefaultNodeCount(t *testing.T) {
	b := designSession(t, 3, bq.DesignMC)
	assert.Equal(t, 15, b.InitialDesign().NumNodes())

	b = designSession(t, 3, bq.DesignMC, bq.WithNumDesignNodes(7))
	assert.Equal(t, 7, b.InitialDesign().NumNodes())

	none := designSession(t, 3, bq.DesignNone)
	assert.Nil(t, none.InitialDesign())
}

// TestMCDesign_Generate checks shape, support membership, determinism
// and argument validation.
func TestMCDesign_Generate(t *testing.T) {
	b := designSession(t, 2, bq.DesignMC)
	d := b.InitialDesign()
	require.NotNil(t, d)
	assert.True(t, d.RequiresRNG())

	_, err := d.Generate(5, nil)
	assert.ErrorIs(t, err, bq.ErrMissingRNG)

	_, err = d.Generate(0, bq.NewRNG(1))
	assert.ErrorIs(t, err, bq.ErrShapeMismatch)

	x, err := d.Generate(6, bq.NewRNG(9))
	require.NoError(t, err)
	r, c := x.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 2, c)
	for i := 0; i < r; i++ {
		assert.True(t, b.Measure().Contains(x.RawRowView(i)))
	}

	y, err := d.Generate(6, bq.NewRNG(9))
	require.NoError(t, err)
	assert.True(t, mat.Equal(x, y), "same seed must give same design")
}

// TestLatinDesign_Stratifies checks the defining Latin-hypercube
// property: per dimension, exactly one sample per stratum.
func TestLatinDesign_Stratifies(t *testing.T) {
	const count = 8
	b := designSession(t, 2, bq.DesignLatin, bq.WithNumDesignNodes(count))
	d := b.InitialDesign()
	require.NotNil(t, d)
	assert.True(t, d.RequiresRNG())

	x, err := d.Generate(count, bq.NewRNG(4))
	require.NoError(t, err)
	r, c := x.Dims()
	assert.Equal(t, count, r)
	assert.Equal(t, 2, c)

	width := 1.0 / count
	for j := 0; j < c; j++ {
		seen := make(map[int]bool, count)
		for i := 0; i < r; i++ {
			v := x.At(i, j)
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 1.0)
			stratum := int(v / width)
			if stratum == count {
				stratum--
			}
			assert.False(t, seen[stratum], "dimension %d: stratum %d hit twice", j, stratum)
			seen[stratum] = true
		}
		assert.Len(t, seen, count, "dimension %d must cover every stratum", j)
	}
}
