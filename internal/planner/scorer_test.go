package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoester/paideia/internal/domain"
	"github.com/dkoester/paideia/internal/testutil"
)

func resultWithModules(codes ...string) *Result {
	res := &Result{}
	for _, code := range codes {
		res.Plan.Blocks = append(res.Plan.Blocks, domain.ScheduleBlock{ModuleCode: code})
	}
	return res
}

func TestScore_GapCostDominatesSwitches(t *testing.T) {
	rs := testutil.NewRuleset()
	w := DefaultWeights()

	oneSwitch := &Result{Switches: 1}
	oneGapEvent := &Result{GapEvents: 1, GapWeeks: 1}

	// One category switch (10) beats one gap event (15 + 1 week).
	assert.Less(t, Score(oneSwitch, rs, "", w), Score(oneGapEvent, rs, "", w))
}

func TestScore_ScatteredGapsCostMoreThanOneLongGap(t *testing.T) {
	rs := testutil.NewRuleset()
	w := DefaultWeights()

	scattered := &Result{GapEvents: 2, GapWeeks: 2}
	single := &Result{GapEvents: 1, GapWeeks: 2}

	assert.Less(t, Score(single, rs, "", w), Score(scattered, rs, "", w))
}

func TestScore_PreferredFirstModuleIsSoft(t *testing.T) {
	rs := testutil.NewRuleset()
	w := DefaultWeights()

	starts := resultWithModules("A1", "B1")
	doesNot := resultWithModules("B1", "A1")

	assert.Less(t, Score(starts, rs, "A1", w), Score(doesNot, rs, "A1", w))

	// The penalty stays below one gap week, so it can never outweigh a
	// real cost difference.
	diff := Score(doesNot, rs, "A1", w) - Score(starts, rs, "A1", w)
	assert.Less(t, diff, w.GapWeek)
}

func TestScore_PALModulesShouldFollowPractice(t *testing.T) {
	rs := testutil.NewRuleset()
	w := DefaultWeights()

	palFirst := resultWithModules("PAL-X", "PRAC")
	practiceFirst := resultWithModules("PRAC", "PAL-X")

	assert.Less(t, Score(practiceFirst, rs, "", w), Score(palFirst, rs, "", w))
}

func TestScore_LaterPracticePlacementPreferred(t *testing.T) {
	rs := testutil.NewRuleset()
	w := DefaultWeights()

	early := resultWithModules("PRAC", "A1", "B1")
	late := resultWithModules("A1", "B1", "PRAC")

	assert.Less(t, Score(late, rs, "", w), Score(early, rs, "", w))
}

func TestScore_NoPracticeModuleNoNudges(t *testing.T) {
	rs := testutil.NewRuleset()
	w := DefaultWeights()

	res := resultWithModules("A1", "PAL-X")
	assert.Equal(t, 0.0, Score(res, rs, "", w))
}
