package kernels_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadlab/bayesquad/kernels"
	"github.com/quadlab/bayesquad/measures"
)

// simpson integrates f over [a,b] with n panels (n even) - accurate far
// beyond the tolerances used below for the smooth integrands here.
func simpson(f func(float64) float64, a, b float64, n int) float64 {
	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += 4 * f(x)
		} else {
			sum += 2 * f(x)
		}
	}
	return sum * h / 3
}

// TestNewExpQuad_Validation exercises constructor checks.
func TestNewExpQuad_Validation(t *testing.T) {
	_, err := kernels.NewExpQuad(0, 1)
	assert.ErrorIs(t, err, kernels.ErrInvalidDimension)

	_, err = kernels.NewExpQuad(2, 0)
	assert.ErrorIs(t, err, kernels.ErrInvalidLengthscale)

	_, err = kernels.NewExpQuad(2, math.Inf(1))
	assert.ErrorIs(t, err, kernels.ErrInvalidLengthscale)

	k, err := kernels.NewExpQuad(2, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 2, k.InputDim())
	assert.Equal(t, 0.5, k.Lengthscale())
}

// TestExpQuad_Evaluate checks the defining properties of the kernel:
// unit diagonal, symmetry, monotone decay with distance.
func TestExpQuad_Evaluate(t *testing.T) {
	k, err := kernels.NewExpQuad(2, 0.8)
	require.NoError(t, err)

	x := []float64{0.1, -0.3}
	y := []float64{0.7, 0.2}

	assert.Equal(t, 1.0, k.Evaluate(x, x), "k(x,x) must be 1")
	assert.Equal(t, k.Evaluate(x, y), k.Evaluate(y, x), "kernel must be symmetric")

	near := k.Evaluate(x, []float64{0.2, -0.3})
	far := k.Evaluate(x, []float64{2.0, -0.3})
	assert.Greater(t, near, far, "closer points must have larger kernel value")

	// closed form at one known point: ||x-y||² = 0.36+0.25 = 0.61
	want := math.Exp(-0.61 / (2 * 0.8 * 0.8))
	assert.InDelta(t, want, k.Evaluate(x, y), 1e-15)
}

// stubKernel is a Kernel the embedding dispatch does not know.
type stubKernel struct{ dim int }

func (s stubKernel) InputDim() int                   { return s.dim }
func (s stubKernel) Evaluate(x, y []float64) float64 { return 0 }

// TestNewEmbedding_Dispatch exercises the closed dispatch table.
func TestNewEmbedding_Dispatch(t *testing.T) {
	dom, err := measures.NewDomainScalar(0, 1, 2)
	require.NoError(t, err)
	leb, err := measures.NewLebesgue(dom)
	require.NoError(t, err)
	gauss, err := measures.NewGaussianIsotropic(0, 1, 2)
	require.NoError(t, err)
	k2, err := kernels.NewExpQuad(2, 1)
	require.NoError(t, err)
	k3, err := kernels.NewExpQuad(3, 1)
	require.NoError(t, err)

	_, err = kernels.NewEmbedding(k2, leb)
	assert.NoError(t, err, "ExpQuad x Lebesgue is supported")

	_, err = kernels.NewEmbedding(k2, gauss)
	assert.NoError(t, err, "ExpQuad x Gaussian is supported")

	_, err = kernels.NewEmbedding(k3, leb)
	assert.ErrorIs(t, err, kernels.ErrDimensionMismatch)

	_, err = kernels.NewEmbedding(stubKernel{dim: 2}, leb)
	assert.ErrorIs(t, err, kernels.ErrUnsupportedPair)
}

// TestEmbedding_LebesgueKernelMean validates the erf closed form against
// brute-force numeric integration in one dimension.
func TestEmbedding_LebesgueKernelMean(t *testing.T) {
	dom, err := measures.NewDomain([]float64{-0.5}, []float64{1.5})
	require.NoError(t, err)
	leb, err := measures.NewLebesgue(dom)
	require.NoError(t, err)
	k, err := kernels.NewExpQuad(1, 0.7)
	require.NoError(t, err)
	emb, err := kernels.NewEmbedding(k, leb)
	require.NoError(t, err)

	for _, x := range []float64{-0.5, 0.0, 0.33, 1.1, 1.5} {
		want := simpson(func(y float64) float64 {
			return k.Evaluate([]float64{x}, []float64{y})
		}, -0.5, 1.5, 2000)
		assert.InDelta(t, want, emb.KernelMean([]float64{x}), 1e-9, "kernel mean at x=%v", x)
	}
}

// TestEmbedding_LebesgueMeanOfMeans validates the double-integral closed
// form against a numeric double integral.
func TestEmbedding_LebesgueMeanOfMeans(t *testing.T) {
	dom, err := measures.NewDomain([]float64{0}, []float64{2})
	require.NoError(t, err)
	leb, err := measures.NewLebesgue(dom)
	require.NoError(t, err)
	k, err := kernels.NewExpQuad(1, 0.6)
	require.NoError(t, err)
	emb, err := kernels.NewEmbedding(k, leb)
	require.NoError(t, err)

	want := simpson(func(x float64) float64 {
		return simpson(func(y float64) float64 {
			return k.Evaluate([]float64{x}, []float64{y})
		}, 0, 2, 800)
	}, 0, 2, 800)
	assert.InDelta(t, want, emb.MeanOfMeans(), 1e-7)
}

// TestEmbedding_LebesgueFactorizes checks that the multi-dimensional
// embedding is the product of per-dimension one-dimensional embeddings.
func TestEmbedding_LebesgueFactorizes(t *testing.T) {
	const ell = 0.9

	dom2, err := measures.NewDomain([]float64{0, -1}, []float64{1, 2})
	require.NoError(t, err)
	leb2, err := measures.NewLebesgue(dom2)
	require.NoError(t, err)
	k2, err := kernels.NewExpQuad(2, ell)
	require.NoError(t, err)
	emb2, err := kernels.NewEmbedding(k2, leb2)
	require.NoError(t, err)

	oneDim := func(lo, hi, x float64) float64 {
		d, err := measures.NewDomain([]float64{lo}, []float64{hi})
		require.NoError(t, err)
		l, err := measures.NewLebesgue(d)
		require.NoError(t, err)
		k, err := kernels.NewExpQuad(1, ell)
		require.NoError(t, err)
		e, err := kernels.NewEmbedding(k, l)
		require.NoError(t, err)
		return e.KernelMean([]float64{x})
	}

	x := []float64{0.4, 0.7}
	want := oneDim(0, 1, x[0]) * oneDim(-1, 2, x[1])
	assert.InDelta(t, want, emb2.KernelMean(x), 1e-12)
}

// TestEmbedding_NormalizedLebesgue checks the 1/volume scaling of the
// normalized variant.
func TestEmbedding_NormalizedLebesgue(t *testing.T) {
	dom, err := measures.NewDomainScalar(0, 2, 2) // volume 4
	require.NoError(t, err)
	leb, err := measures.NewLebesgue(dom)
	require.NoError(t, err)
	lebN, err := measures.NewLebesgueNormalized(dom)
	require.NoError(t, err)
	k, err := kernels.NewExpQuad(2, 1)
	require.NoError(t, err)

	emb, err := kernels.NewEmbedding(k, leb)
	require.NoError(t, err)
	embN, err := kernels.NewEmbedding(k, lebN)
	require.NoError(t, err)

	x := []float64{0.5, 1.5}
	assert.InDelta(t, emb.KernelMean(x)/4, embN.KernelMean(x), 1e-12)
	assert.InDelta(t, emb.MeanOfMeans()/16, embN.MeanOfMeans(), 1e-12)
}

// TestEmbedding_Gaussian validates both Gaussian integrals against
// numeric integration over a wide truncation of the density.
func TestEmbedding_Gaussian(t *testing.T) {
	const (
		mu     = 0.3
		sigma2 = 0.25
	)
	g, err := measures.NewGaussian([]float64{mu}, []float64{sigma2})
	require.NoError(t, err)
	k, err := kernels.NewExpQuad(1, 0.8)
	require.NoError(t, err)
	emb, err := kernels.NewEmbedding(k, g)
	require.NoError(t, err)

	sigma := math.Sqrt(sigma2)
	density := func(y float64) float64 {
		d := y - mu
		return math.Exp(-d*d/(2*sigma2)) / (sigma * math.Sqrt(2*math.Pi))
	}
	lo, hi := mu-10*sigma, mu+10*sigma

	numericMean := func(x float64) float64 {
		return simpson(func(y float64) float64 {
			return k.Evaluate([]float64{x}, []float64{y}) * density(y)
		}, lo, hi, 4000)
	}

	for _, x := range []float64{-1, 0.3, 2} {
		assert.InDelta(t, numericMean(x), emb.KernelMean([]float64{x}), 1e-9, "kernel mean at x=%v", x)
	}

	want := simpson(func(x float64) float64 {
		return numericMean(x) * density(x)
	}, lo, hi, 4000)
	assert.InDelta(t, want, emb.MeanOfMeans(), 1e-8)
}
