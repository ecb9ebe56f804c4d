package planner

import "fmt"

// MaxModules bounds the requested-module count. The search brute-forces
// all n! orderings, so 9 modules already means 362880 simulations;
// anything larger is rejected up front rather than left to burn CPU.
const MaxModules = 9

// ErrTooManyModules is returned when a request exceeds MaxModules.
type ErrTooManyModules struct {
	Requested int
}

func (e *ErrTooManyModules) Error() string {
	return fmt.Sprintf("%d modules requested, at most %d are supported (orderings grow factorially)",
		e.Requested, MaxModules)
}

// forEachPermutation calls fn with every permutation of items, in a
// deterministic order. The slice passed to fn is reused between calls;
// fn must copy it if it wants to keep it.
func forEachPermutation(items []string, fn func([]string)) {
	work := make([]string, len(items))
	copy(work, items)
	permute(work, 0, fn)
}

func permute(work []string, k int, fn func([]string)) {
	if k == len(work) {
		fn(work)
		return
	}
	for i := k; i < len(work); i++ {
		work[k], work[i] = work[i], work[k]
		permute(work, k+1, fn)
		work[k], work[i] = work[i], work[k]
	}
}
