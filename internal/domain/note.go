package domain

import "time"

// Note is a free-text description attached to a module code, maintained
// by advisors alongside the catalog.
type Note struct {
	ModuleCode string
	Text       string
	UpdatedAt  time.Time
}

// SavedPlan is a computed plan persisted for later reference.
type SavedPlan struct {
	ID               string
	Label            string
	DesiredStart     time.Time
	GapEvents        int
	GapWeeks         int
	CategorySwitches int
	Blocks           []ScheduleBlock
	CreatedAt        time.Time
}
