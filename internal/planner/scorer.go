package planner

import (
	"strings"

	"github.com/dkoester/paideia/internal/domain"
)

// Weights is the composite ranking key. Gap cost dominates, category
// switches come second, and the soft preferences are fractional so they
// can only ever break ties between otherwise equal plans.
type Weights struct {
	GapEvent       float64
	GapWeek        float64
	CategorySwitch float64

	// Soft preferences, each strictly smaller than one gap week.
	FirstModuleMismatch float64 // preferred first module not placed first
	EarlyPAL            float64 // per PAL module placed before the practice module
	PracticePosition    float64 // per index the practice module moves later (subtracted)
}

// DefaultWeights returns the canonical weighting: one scattered gap
// event costs as much as fifteen idle weeks in one piece, so a single
// short gap beats scattered gaps at equal total idle time.
func DefaultWeights() Weights {
	return Weights{
		GapEvent:            15,
		GapWeek:             1,
		CategorySwitch:      10,
		FirstModuleMismatch: 0.75,
		EarlyPAL:            0.25,
		PracticePosition:    0.05,
	}
}

// scoreContext carries everything the scoring factors look at.
type scoreContext struct {
	result         *Result
	realModules    []string
	practiceModule string
	preferredFirst string
	weights        Weights
}

// Score reduces a simulation result to a single ascending cost. Lower
// is better.
func Score(res *Result, rs *domain.Ruleset, preferredFirst string, w Weights) float64 {
	ctx := scoreContext{
		result:         res,
		realModules:    res.Plan.RealModules(),
		practiceModule: rs.PracticeModule,
		preferredFirst: preferredFirst,
		weights:        w,
	}

	score := 0.0
	factors := []func(scoreContext) float64{
		scoreGapCost,
		scoreSwitchCost,
		scorePreferredFirst,
		scorePracticePlacement,
	}
	for _, f := range factors {
		score += f(ctx)
	}
	return score
}

func scoreGapCost(ctx scoreContext) float64 {
	return float64(ctx.result.GapEvents)*ctx.weights.GapEvent +
		float64(ctx.result.GapWeeks)*ctx.weights.GapWeek
}

func scoreSwitchCost(ctx scoreContext) float64 {
	return float64(ctx.result.Switches) * ctx.weights.CategorySwitch
}

// scorePreferredFirst nudges plans whose first real module is the one
// the advisor asked for. A mismatch is a penalty, not a filter.
func scorePreferredFirst(ctx scoreContext) float64 {
	if ctx.preferredFirst == "" || len(ctx.realModules) == 0 {
		return 0
	}
	if ctx.realModules[0] != ctx.preferredFirst {
		return ctx.weights.FirstModuleMismatch
	}
	return 0
}

// scorePracticePlacement encodes two business preferences around the
// practice module: PAL modules should follow it, and placing it later
// in the ordering is mildly preferred.
func scorePracticePlacement(ctx scoreContext) float64 {
	practiceIdx := -1
	for i, code := range ctx.realModules {
		if code == ctx.practiceModule {
			practiceIdx = i
			break
		}
	}
	if practiceIdx < 0 {
		return 0
	}

	delta := -ctx.weights.PracticePosition * float64(practiceIdx)
	for _, code := range ctx.realModules[:practiceIdx] {
		if strings.HasPrefix(code, "PAL") {
			delta += ctx.weights.EarlyPAL
		}
	}
	return delta
}
