package service

import (
	"context"

	"github.com/dkoester/paideia/internal/contract"
	"github.com/dkoester/paideia/internal/domain"
)

type PlanService interface {
	// BuildPlan loads the catalog and searches all prerequisite-valid
	// orderings for the cheapest plan. A globally infeasible request
	// yields a response with Success=false, not an error.
	BuildPlan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
	// CheckPrerequisites reports prerequisites absent from the
	// requested module set, independent of ordering.
	CheckPrerequisites(ctx context.Context, modules []string) []string
}

type CatalogService interface {
	// Summarize loads a catalog file and describes each module in it.
	Summarize(ctx context.Context, path string) ([]contract.CatalogSummary, error)
}

type NoteService interface {
	Set(ctx context.Context, moduleCode, text string) error
	Get(ctx context.Context, moduleCode string) (*domain.Note, error)
	List(ctx context.Context) ([]*domain.Note, error)
	Remove(ctx context.Context, moduleCode string) error
}

type ArchiveService interface {
	// Save persists a successful plan response under a fresh ID.
	Save(ctx context.Context, label string, req contract.PlanRequest, resp *contract.PlanResponse) (*domain.SavedPlan, error)
	Get(ctx context.Context, id string) (*domain.SavedPlan, error)
	List(ctx context.Context) ([]*domain.SavedPlan, error)
	Delete(ctx context.Context, id string) error
}
