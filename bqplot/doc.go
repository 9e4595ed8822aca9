// Package bqplot renders convergence diagnostics for Bayesian-quadrature
// sessions with gonum/plot.
//
// The one chart that matters for an adaptive estimation run is the belief
// history: the posterior mean per update with a ±2σ credible band around
// it. A healthy session shows the band contracting onto a stable mean; a
// band that refuses to shrink flags a lengthscale or jitter problem long
// before any numeric tolerance does.
//
// Usage:
//
//	belief, state, _, err := bqr.Integrate(fun, nil, nil, rng)
//	...
//	if err := bqplot.SaveConvergencePNG(state, "convergence.png"); err != nil {
//	  ...
//	}
package bqplot
