// Package measures provides the integration measures that Bayesian
// quadrature integrates against, plus the box Domain value they share.
//
// 🚀 What is a measure here?
//
//	A Measure μ fixes the weighting of the integral ∫ f dμ and knows how to:
//	  • report its input dimension, bounds and total mass
//	  • draw n i.i.d. points given an explicit random stream
//	  • test whether a point lies in its support
//
// ✨ Shipped measures:
//
//   - Lebesgue — uniform weighting over a bounded box [lo, hi]^d.
//     Unnormalized by default (mass = volume); optionally normalized
//     to a probability measure (mass = 1).
//   - Gaussian — mean vector with diagonal covariance; mass = 1,
//     unbounded support.
//
// ⚙️ Randomness:
//
//	Sampling threads a *rand.Rand from golang.org/x/exp/rand through every
//	call; there is no hidden global generator. Identical seeds reproduce
//	identical draws, which the solver relies on for reproducible runs.
//
// Sampling is backed by gonum's distuv distributions.
package measures
