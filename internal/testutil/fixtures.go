package testutil

import (
	"time"

	"github.com/dkoester/paideia/internal/domain"
)

// Day builds a UTC calendar date.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// OfferingOption mutates a fixture offering.
type OfferingOption func(*domain.Offering)

// WithEnrollment sets class count and enrolled learners.
func WithEnrollment(classes, enrolled int) OfferingOption {
	return func(o *domain.Offering) {
		o.ClassCount = classes
		o.Enrolled = enrolled
	}
}

// WithDisplayName overrides the display name.
func WithDisplayName(name string) OfferingOption {
	return func(o *domain.Offering) {
		o.DisplayName = name
	}
}

// NewOffering builds a week-aligned offering: start must be a Monday,
// the end date is the Friday concluding the given number of weeks.
func NewOffering(code string, start time.Time, weeks int, opts ...OfferingOption) domain.Offering {
	o := domain.Offering{
		ModuleCode:  code,
		DisplayName: code,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, weeks*7-3),
		ClassCount:  1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewRuleset builds a small synthetic ruleset for planner tests:
// modules A1/A2 in category Alpha (A2 requires A1), B1/B2 in category
// Beta, PRAC as the practice module, and C1 requiring one of A1 or B1.
func NewRuleset() *domain.Ruleset {
	return &domain.Ruleset{
		Prerequisites: map[string]domain.PrereqRule{
			"A2": domain.Requires("A1"),
			"C1": domain.RequiresOneOf("A1", "B1"),
		},
		Categories: map[string]string{
			"A1":   "Alpha",
			"A2":   "Alpha",
			"B1":   "Beta",
			"B2":   "Beta",
			"C1":   "Gamma",
			"PRAC": "Alpha",
		},
		PracticeModule:   "PRAC",
		FallbackCategory: "Sonstiges",
	}
}
