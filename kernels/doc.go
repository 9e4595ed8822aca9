// Package kernels provides covariance kernels and kernel–measure
// embeddings for Bayesian quadrature.
//
// 🚀 Two layers:
//
//   - Kernel — a symmetric positive-semi-definite function k(x, y) used to
//     model the integrand. Shipped: ExpQuad (exponentiated quadratic,
//     a.k.a. RBF/Gaussian kernel) with a scalar lengthscale.
//
//   - Embedding — a kernel paired with an integration measure μ, exposing
//     the closed-form integrals the posterior needs:
//     KernelMean(x)  = ∫ k(x, y) dμ(y)
//     MeanOfMeans()  = ∫∫ k(x, y) dμ(x) dμ(y)
//
// ✨ Supported pairs (NewEmbedding dispatch):
//
//   - ExpQuad × Lebesgue  — erf-based box integrals, optionally normalized
//   - ExpQuad × Gaussian  — variance-inflated Gaussian forms
//
// Any other pair fails with ErrUnsupportedPair: embeddings must be exact,
// so each pair needs its own closed form.
package kernels
