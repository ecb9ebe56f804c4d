package planner

import "github.com/dkoester/paideia/internal/domain"

// CountSwitches counts category changes between adjacent real modules
// in a finished plan. Synthetic blocks are invisible to the count and
// the first real block never counts as a switch.
func CountSwitches(plan domain.Plan) int {
	switches := 0
	last := ""
	for _, b := range plan.Blocks {
		if b.Synthetic() {
			continue
		}
		if last != "" && b.Category != last {
			switches++
		}
		last = b.Category
	}
	return switches
}
