package bq

import "math"

// StoppingCriterion decides when the estimation loop terminates. state
// may be nil before the first belief update; criteria must treat a nil
// state as "not enough evidence to stop" (ImmediateStop excepted).
//
// Criteria are evaluated only at iteration boundaries and only by the
// single driving goroutine; they need not be goroutine-safe.
type StoppingCriterion interface {
	ShouldStop(state *State, info *RunInfo) bool
	Reason() StopReason
}

// ImmediateStop always stops. It is the default criterion when no policy
// is configured, since no further acquisition is possible.
type ImmediateStop struct{}

// ShouldStop reports true.
func (ImmediateStop) ShouldStop(*State, *RunInfo) bool { return true }

// Reason returns StopReasonImmediate.
func (ImmediateStop) Reason() StopReason { return StopReasonImmediate }

// MaxEvals stops once the accumulated node count reaches the budget.
type MaxEvals struct {
	max int
}

// NewMaxEvals builds the criterion; max must be > 0.
func NewMaxEvals(max int) (*MaxEvals, error) {
	if max <= 0 {
		return nil, wrapOption("max evals must be > 0")
	}
	return &MaxEvals{max: max}, nil
}

// Max returns the configured budget.
func (c *MaxEvals) Max() int { return c.max }

// ShouldStop reports whether the node count reached the budget.
func (c *MaxEvals) ShouldStop(state *State, info *RunInfo) bool {
	n := info.NumEvals
	if state != nil {
		n = state.NumNodes()
	}
	return n >= c.max
}

// Reason returns StopReasonMaxEvals.
func (c *MaxEvals) Reason() StopReason { return StopReasonMaxEvals }

// VarianceTolerance stops once the posterior integral variance falls to
// or below the tolerance.
type VarianceTolerance struct {
	tol float64
}

// NewVarianceTolerance builds the criterion; tol must be >= 0.
func NewVarianceTolerance(tol float64) (*VarianceTolerance, error) {
	if !(tol >= 0) {
		return nil, wrapOption("variance tolerance must be >= 0")
	}
	return &VarianceTolerance{tol: tol}, nil
}

// Tol returns the configured tolerance.
func (c *VarianceTolerance) Tol() float64 { return c.tol }

// ShouldStop reports whether the current belief variance is within tol.
func (c *VarianceTolerance) ShouldStop(state *State, _ *RunInfo) bool {
	return state != nil && state.IntegralBelief().Variance <= c.tol
}

// Reason returns StopReasonVarianceTolerance.
func (c *VarianceTolerance) Reason() StopReason { return StopReasonVarianceTolerance }

// RelativeMeanChange stops once the relative change between the two most
// recent posterior means falls to or below the tolerance. With fewer than
// two history entries there is nothing to compare yet and the criterion
// reports false.
type RelativeMeanChange struct {
	tol float64
}

// NewRelativeMeanChange builds the criterion; tol must be >= 0.
func NewRelativeMeanChange(tol float64) (*RelativeMeanChange, error) {
	if !(tol >= 0) {
		return nil, wrapOption("relative tolerance must be >= 0")
	}
	return &RelativeMeanChange{tol: tol}, nil
}

// Tol returns the configured tolerance.
func (c *RelativeMeanChange) Tol() float64 { return c.tol }

// ShouldStop compares the current mean against the most recent history
// entry: |cur - prev| / |cur| <= tol.
func (c *RelativeMeanChange) ShouldStop(state *State, _ *RunInfo) bool {
	if state == nil || len(state.prevBeliefs) < 2 {
		return false
	}
	cur := state.belief.Mean
	prev := state.prevBeliefs[len(state.prevBeliefs)-1].Mean
	diff := math.Abs(cur - prev)
	if cur == 0 {
		return diff == 0
	}
	return diff/math.Abs(cur) <= c.tol
}

// Reason returns StopReasonRelativeMeanChange.
func (c *RelativeMeanChange) Reason() StopReason { return StopReasonRelativeMeanChange }

// PredicateStop wraps a caller-extensible predicate over state and loop
// info. FromProblem installs it with a safety-budget predicate when a
// policy is configured but no explicit bound is given: an unconfigured
// loop must still terminate.
type PredicateStop struct {
	fn func(*State, *RunInfo) bool
}

// NewPredicateStop builds the criterion; fn must be non-nil.
func NewPredicateStop(fn func(state *State, info *RunInfo) bool) (*PredicateStop, error) {
	if fn == nil {
		return nil, wrapOption("nil stopping predicate")
	}
	return &PredicateStop{fn: fn}, nil
}

// ShouldStop delegates to the predicate.
func (c *PredicateStop) ShouldStop(state *State, info *RunInfo) bool {
	return c.fn(state, info)
}

// Reason returns StopReasonPredicate.
func (c *PredicateStop) Reason() StopReason { return StopReasonPredicate }

// OrCombo stops as soon as any member criterion stops. Members are
// evaluated in order; the first that fires supplies the reason.
type OrCombo struct {
	members []StoppingCriterion
	fired   StopReason
}

// NewOrCombo builds the combinator over one or more member criteria.
func NewOrCombo(members ...StoppingCriterion) (*OrCombo, error) {
	if len(members) == 0 {
		return nil, wrapOption("empty stopping combination")
	}
	for _, m := range members {
		if m == nil {
			return nil, wrapOption("nil member criterion")
		}
	}
	return &OrCombo{members: members, fired: StopReasonNone}, nil
}

// Members returns the member criteria in evaluation order.
func (c *OrCombo) Members() []StoppingCriterion {
	out := make([]StoppingCriterion, len(c.members))
	copy(out, c.members)
	return out
}

// ShouldStop evaluates members in order and records the first that fires.
func (c *OrCombo) ShouldStop(state *State, info *RunInfo) bool {
	for _, m := range c.members {
		if m.ShouldStop(state, info) {
			c.fired = m.Reason()
			return true
		}
	}
	return false
}

// Reason returns the reason of the member that fired last, or
// StopReasonNone if none fired yet.
func (c *OrCombo) Reason() StopReason { return c.fired }
