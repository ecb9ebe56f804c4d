package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dkoester/paideia/internal/contract"
	"github.com/dkoester/paideia/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFormatPlan_Success(t *testing.T) {
	resp := &contract.PlanResponse{
		Success:          true,
		GapEvents:        1,
		GapWeeks:         2,
		CategorySwitches: 1,
		CompactOrdering:  "PSM1 -> AKI",
		Blocks: []domain.ScheduleBlock{
			{
				DisplayName: "Professional Scrum Master I",
				ModuleCode:  "PSM1",
				StartDate:   day(2026, 2, 9),
				EndDate:     day(2026, 2, 13),
				Category:    "Projektmanagement",
			},
			{
				DisplayName:   "Agiles Arbeiten mit KI",
				ModuleCode:    "AKI",
				StartDate:     day(2026, 3, 2),
				EndDate:       day(2026, 3, 6),
				GapDaysBefore: 14,
				Category:      "KI",
			},
		},
		OrderingsSimulated: 2,
		OrderingsFeasible:  2,
	}

	out := FormatPlan(resp)
	assert.Contains(t, out, "Best schedule found.")
	assert.Contains(t, out, "Professional Scrum Master I")
	assert.Contains(t, out, "09.02.2026")
	assert.Contains(t, out, "14 idle days before")
	assert.Contains(t, out, "PSM1 -> AKI")
	assert.Contains(t, out, "2 orderings simulated, 2 feasible")
}

func TestFormatPlan_Failure(t *testing.T) {
	resp := &contract.PlanResponse{
		Success:       false,
		FailureReason: "no offering of AKI starts on or after 09.02.2026",
	}
	out := FormatPlan(resp)
	assert.Contains(t, out, "No feasible schedule found.")
	assert.Contains(t, out, "no offering of AKI")
	assert.NotContains(t, out, "Ordering:")
}

func TestFormatPlan_SyntheticBlockInfo(t *testing.T) {
	resp := &contract.PlanResponse{
		Success: true,
		Blocks: []domain.ScheduleBlock{
			{
				DisplayName: "Indiv. Selbstlernphase",
				ModuleCode:  domain.CodeSelfStudy,
				StartDate:   day(2026, 2, 9),
				EndDate:     day(2026, 2, 20),
				Category:    domain.CategoryFiller,
			},
		},
	}
	assert.Contains(t, FormatPlan(resp), "self-study")
}

func TestFormatMissingPrerequisites(t *testing.T) {
	out := FormatMissingPrerequisites([]string{`module "PSM2" requires "PSM1"`})
	assert.Contains(t, out, "Missing prerequisites:")
	assert.Contains(t, out, "PSM2")

	ok := FormatMissingPrerequisites(nil)
	assert.Contains(t, ok, "All prerequisites are covered")
}

func TestFormatCatalog(t *testing.T) {
	next := day(2026, 2, 9)
	out := FormatCatalog([]contract.CatalogSummary{
		{Code: "PSM1", DisplayName: "Professional Scrum Master I", Category: "Projektmanagement", OfferingCount: 2, FullCount: 1, NextStart: &next},
		{Code: "SEO", DisplayName: "Suchmaschinenoptimierung", Category: "Marketing", OfferingCount: 1},
	})
	assert.Contains(t, out, "PSM1")
	assert.Contains(t, out, "(1 full)")
	assert.Contains(t, out, "09.02.2026")
	assert.Contains(t, out, "--")
}

func TestFormatNotes_Empty(t *testing.T) {
	assert.Contains(t, FormatNotes(nil), "No notes yet.")
}

func TestFormatSavedPlans(t *testing.T) {
	out := FormatSavedPlans([]*domain.SavedPlan{
		{
			ID:               "3f2a9c1e-aaaa-bbbb-cccc-000000000000",
			Label:            "february intake",
			DesiredStart:     day(2026, 2, 9),
			GapEvents:        1,
			GapWeeks:         2,
			CategorySwitches: 3,
			CreatedAt:        day(2026, 1, 15),
		},
	})
	assert.Contains(t, out, "3f2a9c1e")
	assert.NotContains(t, out, "aaaa-bbbb")
	assert.Contains(t, out, "february intake")
	assert.Contains(t, out, "2w/1e")
}
