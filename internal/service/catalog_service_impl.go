package service

import (
	"context"
	"time"

	"github.com/dkoester/paideia/internal/catalog"
	"github.com/dkoester/paideia/internal/contract"
	"github.com/dkoester/paideia/internal/domain"
	"github.com/dkoester/paideia/internal/importer"
)

type catalogService struct {
	rules *domain.Ruleset
	now   func() time.Time
}

// NewCatalogService builds a CatalogService for one ruleset.
func NewCatalogService(rs *domain.Ruleset) CatalogService {
	return &catalogService{rules: rs, now: time.Now}
}

func (s *catalogService) Summarize(ctx context.Context, path string) ([]contract.CatalogSummary, error) {
	offerings, err := importer.LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	idx := catalog.Build(offerings)

	var summaries []contract.CatalogSummary
	for _, code := range idx.Modules() {
		group := idx.Offerings(code)
		summary := contract.CatalogSummary{
			Code:          code,
			DisplayName:   group[0].DisplayName,
			Category:      s.rules.Category(code),
			OfferingCount: len(group),
		}
		for _, o := range group {
			if o.Full() {
				summary.FullCount++
			}
		}
		// Earliest offering that has not started yet; past offerings
		// remain counted but do not pose as upcoming.
		y, m, d := s.now().Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		for _, o := range group {
			if !o.StartDate.Before(today) {
				next := o.StartDate
				summary.NextStart = &next
				break
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
