package domain

import "time"

// SeatsPerClass is the number of seats one scheduled class provides.
// An offering with ClassCount = 2 can take 24 learners before it is full.
const SeatsPerClass = 12

// Offering is one scheduled instance of a module with fixed calendar
// dates. Offerings always span Monday through Friday of one or more
// consecutive weeks.
type Offering struct {
	ModuleCode  string
	DisplayName string
	StartDate   time.Time
	EndDate     time.Time
	ClassCount  int // scheduled classes; 0 means unlimited capacity
	Enrolled    int
}

// Full reports whether the offering has no seats left.
func (o Offering) Full() bool {
	if o.ClassCount <= 0 {
		return false
	}
	return o.Enrolled >= o.ClassCount*SeatsPerClass
}

// DurationWeeks returns the offering length in whole weeks, rounding
// partial weeks up. A Monday..Friday offering counts as one week.
func (o Offering) DurationWeeks() int {
	days := int(o.EndDate.Sub(o.StartDate).Hours()/24) + 1
	if days <= 0 {
		return 0
	}
	return (days + 6) / 7
}
