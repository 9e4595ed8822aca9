package bq_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadlab/bayesquad/bq"
)

// TestOptions_Validation checks that every out-of-range option value is
// rejected at construction with ErrInvalidOption.
func TestOptions_Validation(t *testing.T) {
	dom := unitDomain(t, 1)
	problem := bq.Problem{InputDim: 1, Domain: dom}

	cases := []struct {
		name string
		opt  bq.Option
	}{
		{"zero batch size", bq.WithBatchSize(0)},
		{"negative batch size", bq.WithBatchSize(-3)},
		{"negative jitter", bq.WithJitter(-1e-9)},
		{"infinite jitter", bq.WithJitter(math.Inf(1))},
		{"NaN jitter", bq.WithJitter(math.NaN())},
		{"zero candidate pool", bq.WithNumCandidates(0)},
		{"negative design nodes", bq.WithNumDesignNodes(-1)},
		{"zero max evals", bq.WithMaxEvals(0)},
		{"negative variance tolerance", bq.WithVarTol(-1)},
		{"NaN variance tolerance", bq.WithVarTol(math.NaN())},
		{"negative relative tolerance", bq.WithRelTol(-1)},
		{"unknown scale mode", bq.WithScaleEstimation(bq.ScaleEstimation(7))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bq.FromProblem(problem, tc.opt)
			assert.ErrorIs(t, err, bq.ErrInvalidOption)
		})
	}
}

// TestOptions_Defaults checks the documented unset-option behavior.
func TestOptions_Defaults(t *testing.T) {
	b, err := bq.FromProblem(bq.Problem{InputDim: 1, Domain: unitDomain(t, 1)})
	require.NoError(t, err)

	p, ok := b.Policy().(*bq.RandomPolicy)
	require.True(t, ok, "empty policy identifier must resolve to bmc")
	assert.Equal(t, bq.DefaultBatchSize, p.BatchSize())
	assert.Equal(t, bq.DefaultJitter, b.BeliefUpdate().Jitter())
	assert.Equal(t, bq.ScaleFixed, b.BeliefUpdate().ScaleEstimation())

	us, err := bq.FromProblem(bq.Problem{
		InputDim: 1, Domain: unitDomain(t, 1), Policy: bq.PolicyRandomMaxAcquisition,
	})
	require.NoError(t, err)
	pool, ok := us.Policy().(*bq.RandomMaxAcquisitionPolicy)
	require.True(t, ok)
	assert.Equal(t, bq.DefaultNumCandidates, pool.NumCandidates())
}

// TestOptions_Overrides checks that set values reach the components.
func TestOptions_Overrides(t *testing.T) {
	b, err := bq.FromProblem(bq.Problem{InputDim: 1, Domain: unitDomain(t, 1)},
		bq.WithBatchSize(3),
		bq.WithJitter(1e-5),
		bq.WithScaleEstimation(bq.ScaleMLE),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Policy().BatchSize())
	assert.Equal(t, 1e-5, b.BeliefUpdate().Jitter())
	assert.Equal(t, bq.ScaleMLE, b.BeliefUpdate().ScaleEstimation())
}

// TestNewRNG checks the zero-seed convention and stream determinism.
func TestNewRNG(t *testing.T) {
	a, b := bq.NewRNG(0), bq.NewRNG(1)
	for i := 0; i < 8; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64(), "seed 0 must alias the default seed")
	}

	c, d := bq.NewRNG(42), bq.NewRNG(42)
	for i := 0; i < 8; i++ {
		assert.Equal(t, c.Uint64(), d.Uint64())
	}
}
