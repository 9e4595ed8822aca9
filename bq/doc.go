// Package bq implements adaptive Bayesian quadrature: a sequential,
// model-based estimator for integrals of expensive black-box functions.
//
// 🚀 How it works
//
//	The solver keeps a Gaussian-process posterior belief over the integral
//	value and refines it in a strictly sequential loop:
//
//	  1. seed a State from pre-supplied nodes or an initial design
//	  2. ask the acquisition Policy for the next batch of nodes
//	  3. evaluate the integrand on the batch (order preserved)
//	  4. fold the batch into the State via the belief update
//	  5. stop once a StoppingCriterion fires
//
// ✨ Pluggable subsystems
//
//   - Policy — PolicyRandom ("bmc"), PolicyVanDerCorput ("vdc"),
//     PolicyRandomMaxAcquisition ("us_rand"), or PolicyNone for
//     fixed-node runs with a single belief update
//   - InitialDesign — DesignMC ("mc") or DesignLatin ("latin") warm starts
//   - BeliefUpdate — jitter-regularized Cholesky solve of the growing
//     Gram system, optional MLE output-scale estimation
//   - StoppingCriterion — MaxEvals, VarianceTolerance,
//     RelativeMeanChange, OrCombo, PredicateStop, ImmediateStop
//
// ⚙️ Construction & driving
//
//	bqr, err := bq.FromProblem(bq.Problem{
//	  InputDim: 1,
//	  Domain:   &dom,                  // or Measure directly
//	  Policy:   bq.PolicyVanDerCorput, // default is bq.PolicyRandom
//	}, bq.WithMaxEvals(25))
//
//	belief, state, info, err := bqr.Integrate(fun, nil, nil, rng)
//
// Determinism: every stochastic component consumes randomness only from
// the *rand.Rand handed to Integrate. Identical integrand + identical
// seed ⇒ identical node sequence and identical final belief.
//
// Errors: construction problems (unknown identifiers, missing measure,
// design without policy, bad option values) surface from FromProblem/New;
// per-call problems (missing integrand/nodes/rng, shape mismatches,
// non-solvable Gram systems) surface from Integrate. All are sentinel
// errors in errors.go, matched via errors.Is.
package bq
