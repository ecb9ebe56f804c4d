// Package planner contains the plan-generation engine: a greedy
// week-by-week placement simulator, the permutation search over valid
// module orderings, and the composite-cost ranking that picks the best
// plan. Everything in here is a pure computation over an in-memory
// catalog index; no I/O, no shared state between runs.
package planner

import (
	"fmt"
	"time"

	"github.com/dkoester/paideia/internal/calendar"
	"github.com/dkoester/paideia/internal/catalog"
	"github.com/dkoester/paideia/internal/domain"
)

// Display names for simulator-injected blocks.
const (
	onboardingName  = "Onboarding & Kickoff"
	selfStudyName   = "Indiv. Selbstlernphase"
	bankedStudyName = "Lernzeit (Teilzeit-Guthaben)"
)

const (
	// onboardingWeeks is the fixed duration of the onboarding block.
	onboardingWeeks = 1
	// maxFillerWeeks caps a single full-time self-study block.
	maxFillerWeeks = 2
	// maxForcedPauseWeeks caps a forced part-time study pause.
	maxForcedPauseWeeks = 4
	// forcedPauseAfter is how many modules may run back-to-back in
	// part-time mode before a study pause is forced.
	forcedPauseAfter = 2
	// creditPerModuleWeek is the study-time credit earned per week of
	// placed module in part-time mode.
	creditPerModuleWeek = 0.5
)

// Options configures one simulation run.
type Options struct {
	DesiredStart   time.Time
	Onboarding     bool
	PartTime       bool
	IgnoreCapacity bool
}

// Result is the outcome of simulating one module ordering. Switches is
// filled in by the selector after counting category changes.
type Result struct {
	Plan      domain.Plan
	GapEvents int
	GapWeeks  int
	Switches  int
}

// NoOfferingError reports that a module had no feasible offering on or
// after the simulation cursor. It aborts the whole ordering.
type NoOfferingError struct {
	ModuleCode string
	NotBefore  time.Time
}

func (e *NoOfferingError) Error() string {
	return fmt.Sprintf("no offering for %q on or after %s",
		e.ModuleCode, e.NotBefore.Format("2006-01-02"))
}

// Simulate places the given module ordering onto the calendar. It walks
// the ordering, finds the earliest feasible offering for each module,
// absorbs gaps with self-study blocks (full-time) or banked study time
// (part-time), and accumulates the gap cost counters. A module without
// a feasible offering fails the whole ordering; partial plans are never
// returned.
func Simulate(idx *catalog.Index, rs *domain.Ruleset, ordering []string, opts Options) (*Result, error) {
	sim := &simulation{idx: idx, rules: rs, opts: opts}
	sim.cursor = calendar.NextWeekStart(opts.DesiredStart)

	if opts.Onboarding {
		sim.placeSynthetic(domain.CodeOnboarding, onboardingName, onboardingWeeks)
	}

	practiceRequested := false
	for _, code := range ordering {
		if code == rs.PracticeModule {
			practiceRequested = true
		}
	}
	sim.practicePending = practiceRequested

	for _, code := range ordering {
		if err := sim.placeModule(code); err != nil {
			return nil, err
		}
	}

	// Remaining part-time credit becomes one final study block.
	if opts.PartTime && sim.balance >= 1 {
		sim.placeSynthetic(domain.CodeBankedStudy, bankedStudyName, int(sim.balance))
		sim.balance = 0
	}

	return &sim.result, nil
}

// simulation is the per-run state machine. A fresh value is used for
// every ordering so no counters leak between runs.
type simulation struct {
	idx   *catalog.Index
	rules *domain.Ruleset
	opts  Options

	cursor          time.Time // always week-start aligned
	balance         float64   // banked part-time study weeks
	sinceLastPause  int
	practicePending bool // practice module requested but not yet placed

	result Result
}

// placeModule finds a feasible offering for the module, handling any
// gap before it, and appends the real block. Gap handling may consume
// several iterations: each filler or banked block advances the cursor
// and the offering lookup is retried.
func (s *simulation) placeModule(code string) error {
	for {
		s.cursor = calendar.NextWeekStart(s.cursor)
		offering, ok := s.idx.Lookup(code, s.cursor, s.opts.IgnoreCapacity)
		if !ok {
			return &NoOfferingError{ModuleCode: code, NotBefore: s.cursor}
		}

		gapWeeks := calendar.WeeksBetween(s.cursor, offering.StartDate)
		if s.fillGap(gapWeeks) {
			continue
		}

		s.place(offering, gapWeeks)
		return nil
	}
}

// fillGap tries to absorb (part of) the gap before the next offering.
// It returns true when a block was inserted and the lookup must be
// retried from the advanced cursor.
func (s *simulation) fillGap(gapWeeks int) bool {
	if s.opts.PartTime {
		if gapWeeks >= 1 && s.balance >= 1 {
			weeks := min(gapWeeks, int(s.balance))
			s.placeSynthetic(domain.CodeBankedStudy, bankedStudyName, weeks)
			s.balance -= float64(weeks)
			// A study week is a study week: spending credit on a natural
			// gap restarts the back-to-back counter too, so a forced
			// pause never follows right behind a banked one.
			s.sinceLastPause = 0
			return true
		}
		// No natural gap: after enough back-to-back modules a study
		// pause is forced so banked time does not pile up to the end.
		if gapWeeks == 0 && s.sinceLastPause >= forcedPauseAfter && s.balance >= 1 {
			weeks := min(int(s.balance), maxForcedPauseWeeks)
			s.placeSynthetic(domain.CodeBankedStudy, bankedStudyName, weeks)
			s.balance -= float64(weeks)
			s.sinceLastPause = 0
			return true
		}
		return false
	}

	// Full-time: fill with self-study, but never ahead of a still
	// pending practice module placement.
	if gapWeeks >= 1 && !s.practicePending {
		s.placeSynthetic(domain.CodeSelfStudy, selfStudyName, min(gapWeeks, maxFillerWeeks))
		return true
	}
	return false
}

// place appends the offering as a real block. Any gap still unfilled at
// this point is recorded as a residual gap event.
func (s *simulation) place(offering domain.Offering, residualWeeks int) {
	residualDays := calendar.DaysBetween(s.cursor, offering.StartDate)
	if residualWeeks > 0 {
		s.result.GapEvents++
		s.result.GapWeeks += residualWeeks
	}

	s.result.Plan.Blocks = append(s.result.Plan.Blocks, domain.ScheduleBlock{
		DisplayName:   offering.DisplayName,
		ModuleCode:    offering.ModuleCode,
		StartDate:     offering.StartDate,
		EndDate:       offering.EndDate,
		GapDaysBefore: residualDays,
		Category:      s.rules.Category(offering.ModuleCode),
	})

	if s.opts.PartTime {
		s.balance += creditPerModuleWeek * float64(offering.DurationWeeks())
		s.sinceLastPause++
	}
	if offering.ModuleCode == s.rules.PracticeModule {
		s.practicePending = false
	}
	s.cursor = calendar.FollowingWeekStart(offering.EndDate)
}

// placeSynthetic appends an injected block of the given whole-week
// length at the cursor and advances the cursor past it.
func (s *simulation) placeSynthetic(code, name string, weeks int) {
	end := calendar.WeekEnd(s.cursor, weeks)
	s.result.Plan.Blocks = append(s.result.Plan.Blocks, domain.ScheduleBlock{
		DisplayName: name,
		ModuleCode:  code,
		StartDate:   s.cursor,
		EndDate:     end,
		Category:    domain.CategoryFiller,
	})
	s.cursor = calendar.FollowingWeekStart(end)
}
