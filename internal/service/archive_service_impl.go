package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dkoester/paideia/internal/contract"
	"github.com/dkoester/paideia/internal/domain"
	"github.com/dkoester/paideia/internal/repository"
)

type archiveService struct {
	plans repository.PlanRepo
}

// NewArchiveService builds the saved-plan service.
func NewArchiveService(plans repository.PlanRepo) ArchiveService {
	return &archiveService{plans: plans}
}

func (s *archiveService) Save(ctx context.Context, label string, req contract.PlanRequest, resp *contract.PlanResponse) (*domain.SavedPlan, error) {
	if resp == nil || !resp.Success {
		return nil, errors.New("only successful plans can be saved")
	}
	plan := &domain.SavedPlan{
		ID:               uuid.New().String(),
		Label:            label,
		DesiredStart:     req.DesiredStart,
		GapEvents:        resp.GapEvents,
		GapWeeks:         resp.GapWeeks,
		CategorySwitches: resp.CategorySwitches,
		Blocks:           resp.Blocks,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *archiveService) Get(ctx context.Context, id string) (*domain.SavedPlan, error) {
	return s.plans.Get(ctx, id)
}

func (s *archiveService) List(ctx context.Context) ([]*domain.SavedPlan, error) {
	return s.plans.List(ctx)
}

func (s *archiveService) Delete(ctx context.Context, id string) error {
	return s.plans.Delete(ctx, id)
}
