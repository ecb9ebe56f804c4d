package service

import (
	"context"
	"errors"
	"strings"

	"github.com/dkoester/paideia/internal/catalog"
	"github.com/dkoester/paideia/internal/contract"
	"github.com/dkoester/paideia/internal/domain"
	"github.com/dkoester/paideia/internal/importer"
	"github.com/dkoester/paideia/internal/planner"
	"github.com/dkoester/paideia/internal/rules"
)

type planService struct {
	rules     *domain.Ruleset
	validator *rules.Validator
}

// NewPlanService builds a PlanService for one ruleset. The catalog is
// loaded per request since every request may bring its own export.
func NewPlanService(rs *domain.Ruleset) PlanService {
	return &planService{rules: rs, validator: rules.NewValidator(rs)}
}

func (s *planService) BuildPlan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error) {
	if len(req.Modules) == 0 {
		return nil, &contract.PlanError{Code: contract.ErrBadRequest, Message: "no modules requested"}
	}
	if req.DesiredStart.IsZero() {
		return nil, &contract.PlanError{Code: contract.ErrBadRequest, Message: "desired start date is required"}
	}

	if missing := s.validator.MissingPrerequisites(req.Modules); len(missing) > 0 && !req.IgnorePrerequisites {
		return nil, &contract.PlanError{
			Code: contract.ErrMissingPrerequisite,
			Message: "missing prerequisites: " + strings.Join(missing, "; ") +
				" (re-run with prerequisites ignored to proceed anyway)",
		}
	}

	offerings, err := importer.LoadCatalog(req.CatalogPath)
	if err != nil {
		return nil, err
	}
	idx := catalog.Build(offerings)

	sel, err := planner.SelectBest(idx, s.rules, s.validator, planner.Request{
		Modules: req.Modules,
		Options: planner.Options{
			DesiredStart:   req.DesiredStart,
			Onboarding:     req.Onboarding,
			PartTime:       req.PartTime,
			IgnoreCapacity: req.IgnoreCapacity,
		},
		IgnorePrerequisites: req.IgnorePrerequisites,
		PreferredFirst:      req.PreferredFirst,
	})
	if err != nil {
		var infeasible *planner.InfeasibleError
		if errors.As(err, &infeasible) {
			return &contract.PlanResponse{
				Success:       false,
				FailureReason: infeasible.Error(),
			}, nil
		}
		var tooMany *planner.ErrTooManyModules
		if errors.As(err, &tooMany) {
			return nil, &contract.PlanError{Code: contract.ErrTooManyModules, Message: tooMany.Error()}
		}
		return nil, err
	}

	res := sel.Best.Result
	return &contract.PlanResponse{
		Success:            true,
		Blocks:             res.Plan.Blocks,
		GapEvents:          res.GapEvents,
		GapWeeks:           res.GapWeeks,
		CategorySwitches:   res.Switches,
		CompactOrdering:    res.Plan.CompactOrdering(),
		OrderingsSimulated: sel.Simulated,
		OrderingsFeasible:  sel.Feasible,
	}, nil
}

func (s *planService) CheckPrerequisites(ctx context.Context, modules []string) []string {
	return s.validator.MissingPrerequisites(modules)
}
