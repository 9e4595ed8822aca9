package bq

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/quadlab/bayesquad/kernels"
	"github.com/quadlab/bayesquad/measures"
	"github.com/quadlab/bayesquad/randvar"
)

// BayesianQuadrature is one in-process, single-caller estimation session
// factory: it bundles the kernel, measure, policy, initial design, belief
// update and stopping criterion, and drives the adaptive loop in
// Integrate.
type BayesianQuadrature struct {
	kernel        kernels.Kernel
	measure       measures.Measure
	embedding     kernels.Embedding
	policy        Policy        // nil ⇒ no acquisition, at most one update
	initialDesign InitialDesign // nil ⇒ no warm start
	beliefUpdate  *BeliefUpdate
	stopping      StoppingCriterion
}

// Problem describes the integration problem handed to FromProblem.
// Exactly one of Measure and Domain must be set (Measure wins when both
// are); Kernel defaults to ExpQuad with unit lengthscale.
type Problem struct {
	// InputDim is the dimension of the integration domain. Required.
	InputDim int

	// Domain builds an unnormalized Lebesgue measure when Measure is nil.
	Domain *measures.Domain

	// Measure is the integration measure; overrides Domain.
	Measure measures.Measure

	// Kernel models the integrand; nil ⇒ ExpQuad(InputDim, 1).
	Kernel kernels.Kernel

	// Policy selects the acquisition policy; "" ⇒ PolicyRandom.
	Policy PolicyID

	// InitialDesign selects the warm-start design; "" ⇒ DesignNone.
	InitialDesign DesignID
}

// New wires a session from explicit components. policy and initialDesign
// may be nil; everything else is mandatory. An initial design without a
// policy is rejected: a warm start is meaningless when no adaptive
// acquisition follows.
func New(
	kernel kernels.Kernel,
	measure measures.Measure,
	policy Policy,
	initialDesign InitialDesign,
	beliefUpdate *BeliefUpdate,
	stopping StoppingCriterion,
) (*BayesianQuadrature, error) {
	if kernel == nil || measure == nil || beliefUpdate == nil || stopping == nil {
		return nil, ErrNilComponent
	}
	if initialDesign != nil && policy == nil {
		return nil, ErrDesignWithoutPolicy
	}
	embedding, err := kernels.NewEmbedding(kernel, measure)
	if err != nil {
		return nil, err
	}
	return &BayesianQuadrature{
		kernel:        kernel,
		measure:       measure,
		embedding:     embedding,
		policy:        policy,
		initialDesign: initialDesign,
		beliefUpdate:  beliefUpdate,
		stopping:      stopping,
	}, nil
}

// FromProblem resolves string identifiers and options into a wired
// session. Configuration errors (missing measure and domain, unknown
// identifiers, design without policy, out-of-range options) are fatal
// and never retried.
func FromProblem(p Problem, opts ...Option) (*BayesianQuadrature, error) {
	if p.InputDim <= 0 {
		return nil, wrapOption("input dimension must be > 0")
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	measure := p.Measure
	if measure == nil {
		if p.Domain == nil {
			return nil, ErrNoMeasure
		}
		if p.Domain.Dim() != p.InputDim {
			return nil, ErrShapeMismatch
		}
		if measure, err = measures.NewLebesgue(*p.Domain); err != nil {
			return nil, err
		}
	}
	if measure.InputDim() != p.InputDim {
		return nil, ErrShapeMismatch
	}

	kernel := p.Kernel
	if kernel == nil {
		if kernel, err = kernels.NewExpQuad(p.InputDim, 1); err != nil {
			return nil, err
		}
	}
	embedding, err := kernels.NewEmbedding(kernel, measure)
	if err != nil {
		return nil, err
	}

	policy, err := newPolicy(p.Policy, embedding, o)
	if err != nil {
		return nil, err
	}

	numDesignNodes := o.numDesignNodes
	if numDesignNodes == 0 {
		numDesignNodes = DefaultDesignNodesPerDim * p.InputDim
	}
	design, err := newInitialDesign(p.InitialDesign, measure, numDesignNodes)
	if err != nil {
		return nil, err
	}
	if design != nil && policy == nil {
		return nil, ErrDesignWithoutPolicy
	}

	update, err := NewBeliefUpdate(embedding, o.jitter, o.scaleEstimation)
	if err != nil {
		return nil, err
	}

	stopping, err := buildStopping(policy, o)
	if err != nil {
		return nil, err
	}

	return &BayesianQuadrature{
		kernel:        kernel,
		measure:       measure,
		embedding:     embedding,
		policy:        policy,
		initialDesign: design,
		beliefUpdate:  update,
		stopping:      stopping,
	}, nil
}

// buildStopping assembles the stopping criterion from the configured
// bounds and the policy presence:
//
//   - no policy        ⇒ ImmediateStop (nothing more can be acquired)
//   - exactly one bound ⇒ that criterion
//   - several bounds    ⇒ OR-combination
//   - no bound          ⇒ PredicateStop over the caller's predicate, or
//     the DefaultEvalBudget safety net when none was supplied
func buildStopping(policy Policy, o options) (StoppingCriterion, error) {
	if policy == nil {
		return ImmediateStop{}, nil
	}

	var members []StoppingCriterion
	if o.maxEvalsSet {
		c, err := NewMaxEvals(o.maxEvals)
		if err != nil {
			return nil, err
		}
		members = append(members, c)
	}
	if o.varTolSet {
		c, err := NewVarianceTolerance(o.varTol)
		if err != nil {
			return nil, err
		}
		members = append(members, c)
	}
	if o.relTolSet {
		c, err := NewRelativeMeanChange(o.relTol)
		if err != nil {
			return nil, err
		}
		members = append(members, c)
	}
	if o.predicate != nil {
		c, err := NewPredicateStop(o.predicate)
		if err != nil {
			return nil, err
		}
		members = append(members, c)
	}

	switch len(members) {
	case 0:
		return NewPredicateStop(func(_ *State, info *RunInfo) bool {
			return info.NumEvals >= DefaultEvalBudget
		})
	case 1:
		return members[0], nil
	default:
		return NewOrCombo(members...)
	}
}

// Kernel returns the session kernel.
func (b *BayesianQuadrature) Kernel() kernels.Kernel { return b.kernel }

// Measure returns the session measure.
func (b *BayesianQuadrature) Measure() measures.Measure { return b.measure }

// Policy returns the acquisition policy, nil when none is configured.
func (b *BayesianQuadrature) Policy() Policy { return b.policy }

// InitialDesign returns the warm-start design, nil when none is
// configured.
func (b *BayesianQuadrature) InitialDesign() InitialDesign { return b.initialDesign }

// BeliefUpdate returns the belief update.
func (b *BayesianQuadrature) BeliefUpdate() *BeliefUpdate { return b.beliefUpdate }

// StoppingCriterion returns the assembled stopping criterion.
func (b *BayesianQuadrature) StoppingCriterion() StoppingCriterion { return b.stopping }

// Integrate runs one estimation session and returns the final posterior
// belief, the final state snapshot, and the run bookkeeping.
//
// Input contract:
//
//   - with a policy, fun is mandatory (future acquisitions need it)
//   - without a policy, nodes are mandatory and the loop performs at
//     most one belief update; if fun_evals already cover the nodes, a
//     supplied fun is ignored with a warning on RunInfo
//   - rng is mandatory whenever a configured component is stochastic
//   - nodes are count×InputDim; funEvals, when given, must match count
//
// All fatal conditions surface immediately; no partial state escapes a
// failed update.
func (b *BayesianQuadrature) Integrate(
	fun Integrand,
	nodes *mat.Dense,
	funEvals []float64,
	rng *rand.Rand,
) (randvar.Normal, *State, *RunInfo, error) {
	info := &RunInfo{StopReason: StopReasonNone}

	if err := b.validateInputs(fun, nodes, funEvals, rng, info); err != nil {
		return randvar.Normal{}, nil, nil, err
	}

	state, err := b.seedState(fun, nodes, funEvals, rng, info)
	if err != nil {
		return randvar.Normal{}, nil, nil, err
	}

	for {
		if b.stopping.ShouldStop(state, info) {
			info.StopReason = b.stopping.Reason()
			break
		}
		if b.policy == nil {
			info.StopReason = StopReasonNoPolicy
			break
		}

		batch, err := b.policy.Acquire(state, rng)
		if err != nil {
			return randvar.Normal{}, state, info, err
		}
		evals, err := evaluate(fun, batch)
		if err != nil {
			return randvar.Normal{}, state, info, err
		}
		state, err = b.beliefUpdate.Update(state, batch, evals)
		if err != nil {
			return randvar.Normal{}, state, info, err
		}

		info.Iteration++
		rows, _ := batch.Dims()
		info.NumEvals += rows
	}

	if state == nil {
		// Nothing was ever folded in (immediate stop on an empty
		// session): report the uninformed prior.
		prior := randvar.Normal{Mean: 0, Variance: b.embedding.MeanOfMeans()}
		return prior, nil, info, nil
	}
	return state.IntegralBelief(), state, info, nil
}

// validateInputs enforces the combinatorial input contract of Integrate.
func (b *BayesianQuadrature) validateInputs(
	fun Integrand,
	nodes *mat.Dense,
	funEvals []float64,
	rng *rand.Rand,
	info *RunInfo,
) error {
	// A policy always needs fun, even when fun_evals are supplied: the
	// values cover only the pre-supplied nodes, not future acquisitions.
	if b.policy != nil && fun == nil {
		return fmt.Errorf("policy needs fun for future acquisitions: %w", ErrMissingIntegrand)
	}
	if fun == nil && funEvals == nil {
		return ErrMissingIntegrand
	}
	if b.policy == nil && nodes == nil {
		return ErrMissingNodes
	}
	if nodes == nil && funEvals != nil {
		return fmt.Errorf("fun_evals without nodes: %w", ErrMissingNodes)
	}

	// A configured stochastic component needs the explicit random stream.
	// The initial design only runs when no nodes are pre-supplied.
	if rng == nil && b.policy != nil {
		needs := b.policy.RequiresRNG()
		if b.initialDesign != nil && nodes == nil {
			needs = needs || b.initialDesign.RequiresRNG()
		}
		if needs {
			return ErrMissingRNG
		}
	}

	if nodes != nil {
		rows, cols := nodes.Dims()
		if rows == 0 || cols != b.kernel.InputDim() {
			return ErrShapeMismatch
		}
		if funEvals != nil && len(funEvals) != rows {
			return ErrShapeMismatch
		}
		if b.policy == nil && fun != nil && funEvals != nil {
			info.Warnings = append(info.Warnings,
				"fun is ignored: fun_evals already cover all supplied nodes and no policy will acquire more")
		}
	}
	return nil
}

// seedState folds the first batch into a fresh state: pre-supplied nodes
// win over the initial design; with neither, the loop starts empty.
func (b *BayesianQuadrature) seedState(
	fun Integrand,
	nodes *mat.Dense,
	funEvals []float64,
	rng *rand.Rand,
	info *RunInfo,
) (*State, error) {
	var batch *mat.Dense
	switch {
	case nodes != nil:
		batch = nodes
	case b.initialDesign != nil:
		generated, err := b.initialDesign.Generate(b.initialDesign.NumNodes(), rng)
		if err != nil {
			return nil, err
		}
		batch = generated
		funEvals = nil
	default:
		return nil, nil
	}

	evals := funEvals
	if evals == nil {
		var err error
		if evals, err = evaluate(fun, batch); err != nil {
			return nil, err
		}
	}
	state, err := b.beliefUpdate.Update(nil, batch, evals)
	if err != nil {
		return nil, err
	}
	rows, _ := batch.Dims()
	info.NumEvals += rows
	return state, nil
}

// evaluate applies fun to a batch and checks the output length.
func evaluate(fun Integrand, batch *mat.Dense) ([]float64, error) {
	out, err := fun(batch)
	if err != nil {
		return nil, fmt.Errorf("integrand failed: %w", err)
	}
	rows, _ := batch.Dims()
	if len(out) != rows {
		return nil, fmt.Errorf("integrand returned %d values for %d nodes: %w",
			len(out), rows, ErrShapeMismatch)
	}
	return out, nil
}
