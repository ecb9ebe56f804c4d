package domain

import (
	"strings"
	"time"
)

// Synthetic module codes injected by the simulator. They never come from
// the catalog and are excluded from category-switch counting.
const (
	CodeOnboarding  = "ONBOARDING"
	CodeSelfStudy   = "SELBSTLERN"
	CodeBankedStudy = "LERNZEIT"
)

// CategoryFiller is the category assigned to all synthetic blocks.
const CategoryFiller = "Lückenfüller"

// IsSyntheticCode reports whether code identifies a simulator-injected
// block rather than a catalog module.
func IsSyntheticCode(code string) bool {
	switch code {
	case CodeOnboarding, CodeSelfStudy, CodeBankedStudy:
		return true
	}
	return false
}

// ScheduleBlock is one contiguous calendar-dated entry in a plan: a real
// module offering, the onboarding event, or a filler/banked-study
// placeholder.
type ScheduleBlock struct {
	DisplayName   string
	ModuleCode    string
	StartDate     time.Time
	EndDate       time.Time
	GapDaysBefore int // residual idle days left unfilled before this block
	Category      string
}

// Synthetic reports whether the block was injected by the simulator.
func (b ScheduleBlock) Synthetic() bool {
	return IsSyntheticCode(b.ModuleCode)
}

// Plan is an ordered sequence of schedule blocks. Blocks are in
// non-decreasing start-date order and real-module blocks never overlap.
type Plan struct {
	Blocks []ScheduleBlock
}

// RealModules returns the catalog module codes in placement order,
// skipping synthetic blocks.
func (p Plan) RealModules() []string {
	var codes []string
	for _, b := range p.Blocks {
		if !b.Synthetic() {
			codes = append(codes, b.ModuleCode)
		}
	}
	return codes
}

// CompactOrdering renders the real-module sequence as a single line
// ("PSM1 -> PSM2 -> AKI") for pasting into mail or documents.
func (p Plan) CompactOrdering() string {
	return strings.Join(p.RealModules(), " -> ")
}
