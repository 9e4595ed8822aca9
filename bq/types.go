package bq

import "gonum.org/v1/gonum/mat"

// PolicyID selects an acquisition policy in FromProblem.
// The zero value resolves to PolicyRandom.
type PolicyID string

const (
	// PolicyRandom ("bmc") draws i.i.d. nodes from the measure.
	// Requires an RNG. This is the default policy.
	PolicyRandom PolicyID = "bmc"

	// PolicyVanDerCorput ("vdc") walks the deterministic base-2 van der
	// Corput sequence over a one-dimensional bounded domain. No RNG.
	PolicyVanDerCorput PolicyID = "vdc"

	// PolicyRandomMaxAcquisition ("us_rand") scores a pool of random
	// candidates by predictive posterior variance and picks the best.
	// Requires an RNG.
	PolicyRandomMaxAcquisition PolicyID = "us_rand"

	// PolicyNone disables acquisition: the caller supplies all nodes and
	// the loop performs at most one belief update.
	PolicyNone PolicyID = "none"
)

// DesignID selects an initial design in FromProblem.
// The zero value resolves to DesignNone.
type DesignID string

const (
	// DesignNone skips the warm-start batch.
	DesignNone DesignID = "none"

	// DesignMC ("mc") draws the warm-start batch i.i.d. from the measure.
	DesignMC DesignID = "mc"

	// DesignLatin ("latin") stratifies the warm-start batch over the
	// bounded domain, one sample per stratum per dimension.
	DesignLatin DesignID = "latin"
)

// ScaleEstimation selects how the output-scale correction scale_sq is
// obtained during belief updates.
type ScaleEstimation int

const (
	// ScaleFixed keeps scale_sq at 1 (the default).
	ScaleFixed ScaleEstimation = iota

	// ScaleMLE re-estimates scale_sq each update via the maximum-
	// likelihood residual correction fᵀG⁻¹f / n.
	ScaleMLE
)

// StopReason names the criterion that terminated the estimation loop.
type StopReason string

const (
	// StopReasonNone indicates the loop has not stopped yet.
	StopReasonNone StopReason = ""
	// StopReasonImmediate indicates the always-true criterion fired.
	StopReasonImmediate StopReason = "immediate"
	// StopReasonMaxEvals indicates the evaluation budget was reached.
	StopReasonMaxEvals StopReason = "max_evals"
	// StopReasonVarianceTolerance indicates the integral variance fell
	// to or below the configured tolerance.
	StopReasonVarianceTolerance StopReason = "var_tol"
	// StopReasonRelativeMeanChange indicates the relative change of the
	// posterior mean fell to or below the configured tolerance.
	StopReasonRelativeMeanChange StopReason = "rel_tol"
	// StopReasonPredicate indicates a caller-supplied (or the default
	// safety-budget) predicate fired.
	StopReasonPredicate StopReason = "predicate"
	// StopReasonNoPolicy indicates the loop ended because no policy can
	// acquire further nodes.
	StopReasonNoPolicy StopReason = "no_policy"
)

// Integrand maps a batch of nodes (n×d, one node per row) to n scalar
// evaluations in the same order. It is assumed deterministic and
// side-effect-free; evaluations inside one batch may be computed
// concurrently by the implementation as long as order is preserved.
type Integrand func(nodes *mat.Dense) ([]float64, error)

// RunInfo carries loop bookkeeping: it is created when Integrate starts,
// mutated once per iteration, and returned alongside the final State.
type RunInfo struct {
	// Iteration counts adaptive loop iterations (seed updates excluded).
	Iteration int

	// NumEvals counts integrand evaluations folded into the state.
	NumEvals int

	// StopReason names the criterion that ended the loop.
	StopReason StopReason

	// Warnings collects non-fatal conditions (e.g. a redundant integrand
	// ignored in no-policy mode). Execution continues past them.
	Warnings []string
}
