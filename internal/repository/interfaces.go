package repository

import (
	"context"
	"errors"

	"github.com/dkoester/paideia/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// NoteRepo persists free-text module descriptions.
type NoteRepo interface {
	Upsert(ctx context.Context, n *domain.Note) error
	Get(ctx context.Context, moduleCode string) (*domain.Note, error)
	List(ctx context.Context) ([]*domain.Note, error)
	Delete(ctx context.Context, moduleCode string) error
}

// PlanRepo persists computed plans for later reference. Get and Delete
// accept a full ID or a unique prefix of one.
type PlanRepo interface {
	Create(ctx context.Context, p *domain.SavedPlan) error
	Get(ctx context.Context, id string) (*domain.SavedPlan, error)
	List(ctx context.Context) ([]*domain.SavedPlan, error)
	Delete(ctx context.Context, id string) error
}
