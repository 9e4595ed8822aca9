// Package bayesquad estimates integrals of expensive black-box functions
// with Bayesian quadrature: a Gaussian-process belief over the integral,
// actively refined by choosing where to evaluate the integrand next.
//
// 🚀 What is bayesquad?
//
//	A sequential, model-based integration toolkit that brings together:
//		• Integration measures: Lebesgue on a box, Gaussian — with explicit RNG
//		• Kernels & embeddings: ExpQuad with closed-form kernel means
//		• Acquisition policies: random (bmc), van der Corput (vdc),
//		  uncertainty sampling over random candidates (us_rand)
//		• Initial designs: Monte-Carlo and Latin hypercube warm starts
//		• Stopping criteria: evaluation budget, variance tolerance,
//		  relative mean change, OR-combinations, custom predicates
//		• Diagnostics: convergence-band plots of the belief history
//
// ✨ Why choose bayesquad?
//
//   - Sample-efficient – every evaluation updates a posterior over the integral
//   - Reproducible – one explicit random stream, no hidden global generators
//   - Honest uncertainty – you get a mean and a variance, not a point guess
//   - Extensible – plug in your own stopping predicate or integrand adapter
//
// Everything is organized under five subpackages:
//
//	measures/ — integration measures (Lebesgue, Gaussian) and box domains
//	kernels/  — kernels and kernel–measure embeddings (closed-form integrals)
//	randvar/  — the scalar Normal mean/variance container
//	bq/       — the adaptive solver: state, policies, designs, belief update,
//	            stopping criteria and the Integrate driver loop
//	bqplot/   — convergence diagnostics rendered with gonum/plot
//
// Quick sketch of one estimation session:
//
//	seed state ──▶ acquire batch ──▶ evaluate fun ──▶ update belief ──┐
//	     ▲                                                            │
//	     └────────────────── until a stopping criterion fires ◀───────┘
//
// Dive into bq's package documentation for the full driver contract and
// into example_test.go files for runnable sessions.
//
//	go get github.com/quadlab/bayesquad/bq
package bayesquad
