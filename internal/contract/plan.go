// Package contract defines the request and response types exchanged
// between the CLI and the services.
package contract

import (
	"time"

	"github.com/dkoester/paideia/internal/domain"
)

// PlanRequest describes one best-plan computation.
type PlanRequest struct {
	CatalogPath         string
	Modules             []string
	DesiredStart        time.Time
	Onboarding          bool
	PartTime            bool
	IgnorePrerequisites bool
	IgnoreCapacity      bool
	PreferredFirst      string
}

// PlanResponse carries the selected plan and its cost counters.
type PlanResponse struct {
	Success          bool
	FailureReason    string
	Blocks           []domain.ScheduleBlock
	GapEvents        int
	GapWeeks         int
	CategorySwitches int
	CompactOrdering  string

	// Search statistics for the summary line.
	OrderingsSimulated int
	OrderingsFeasible  int
}

// CatalogSummary describes one module of a loaded catalog.
type CatalogSummary struct {
	Code          string
	DisplayName   string
	Category      string
	OfferingCount int
	FullCount     int
	NextStart     *time.Time
}

// PlanErrorCode classifies request-level failures.
type PlanErrorCode string

const (
	ErrMissingPrerequisite PlanErrorCode = "MISSING_PREREQUISITE"
	ErrGlobalInfeasible    PlanErrorCode = "GLOBAL_INFEASIBLE"
	ErrTooManyModules      PlanErrorCode = "TOO_MANY_MODULES"
	ErrBadRequest          PlanErrorCode = "BAD_REQUEST"
)

// PlanError is a classified request-level failure.
type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
