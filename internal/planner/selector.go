package planner

import (
	"errors"
	"fmt"

	"github.com/dkoester/paideia/internal/catalog"
	"github.com/dkoester/paideia/internal/domain"
)

// OrderValidator filters candidate orderings before simulation.
type OrderValidator interface {
	IsOrderValid(ordering []string) bool
}

// Request describes one best-plan search.
type Request struct {
	Modules             []string
	Options             Options
	IgnorePrerequisites bool
	PreferredFirst      string
	Weights             Weights // zero value means DefaultWeights
}

// Evaluation pairs one surviving ordering with its simulation result
// and composite score.
type Evaluation struct {
	Ordering []string
	Result   *Result
	Score    float64
}

// Selection is the outcome of a best-plan search.
type Selection struct {
	Best      *Evaluation
	Simulated int // orderings that passed the prerequisite filter
	Feasible  int // orderings that produced a complete plan
}

// InfeasibleError is returned when every ordering fails simulation.
// LastFailure is the most recently observed per-ordering failure; it is
// a best-effort hint, not an authoritative diagnosis.
type InfeasibleError struct {
	LastFailure error
}

func (e *InfeasibleError) Error() string {
	if e.LastFailure != nil {
		return fmt.Sprintf("no feasible schedule for any ordering (last failure: %v)", e.LastFailure)
	}
	return "no feasible schedule for any ordering"
}

func (e *InfeasibleError) Unwrap() error { return e.LastFailure }

// SelectBest simulates every prerequisite-valid permutation of the
// requested modules and returns the minimum-cost evaluation. Ties keep
// the first ordering encountered, so results are deterministic for a
// given request.
func SelectBest(idx *catalog.Index, rs *domain.Ruleset, validator OrderValidator, req Request) (*Selection, error) {
	if len(req.Modules) == 0 {
		return nil, errors.New("no modules requested")
	}
	if len(req.Modules) > MaxModules {
		return nil, &ErrTooManyModules{Requested: len(req.Modules)}
	}

	weights := req.Weights
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}

	sel := &Selection{}
	var lastFailure error

	forEachPermutation(req.Modules, func(ordering []string) {
		if !req.IgnorePrerequisites && !validator.IsOrderValid(ordering) {
			return
		}
		sel.Simulated++

		res, err := Simulate(idx, rs, ordering, req.Options)
		if err != nil {
			lastFailure = err
			return
		}
		sel.Feasible++

		res.Switches = CountSwitches(res.Plan)
		score := Score(res, rs, req.PreferredFirst, weights)
		if sel.Best == nil || score < sel.Best.Score {
			kept := make([]string, len(ordering))
			copy(kept, ordering)
			sel.Best = &Evaluation{Ordering: kept, Result: res, Score: score}
		}
	})

	if sel.Best == nil {
		return nil, &InfeasibleError{LastFailure: lastFailure}
	}
	return sel, nil
}
