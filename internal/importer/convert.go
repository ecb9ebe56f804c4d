package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dkoester/paideia/internal/domain"
)

// Catalog exports write day-first dates; newer exports use ISO dates.
// Both are accepted.
var dateLayouts = []string{"02.01.2006", "2006-01-02"}

// ConvertRecords turns parsed CSV rows into normalized offerings.
// Rows are validated individually; all row errors are collected so a
// broken export reports every problem at once.
func ConvertRecords(records []*CatalogRecord) ([]domain.Offering, []error) {
	var offerings []domain.Offering
	var errs []error

	for i, rec := range records {
		offering, err := convertRecord(rec)
		if err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		offerings = append(offerings, offering)
	}
	return offerings, errs
}

func convertRecord(rec *CatalogRecord) (domain.Offering, error) {
	code := strings.TrimSpace(rec.Code)
	if code == "" {
		return domain.Offering{}, fmt.Errorf("missing module code")
	}

	start, err := parseDate(rec.StartDate)
	if err != nil {
		return domain.Offering{}, fmt.Errorf("start date: %w", err)
	}
	end, err := parseDate(rec.EndDate)
	if err != nil {
		return domain.Offering{}, fmt.Errorf("end date: %w", err)
	}
	if end.Before(start) {
		return domain.Offering{}, fmt.Errorf("end date %s before start date %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	classes, err := parseCount(rec.ClassCount, 1)
	if err != nil {
		return domain.Offering{}, fmt.Errorf("class count: %w", err)
	}
	enrolled, err := parseCount(rec.Enrolled, 0)
	if err != nil {
		return domain.Offering{}, fmt.Errorf("enrolled count: %w", err)
	}

	name := strings.TrimSpace(rec.Name)
	if name == "" {
		name = code
	}

	return domain.Offering{
		ModuleCode:  code,
		DisplayName: name,
		StartDate:   start,
		EndDate:     end,
		ClassCount:  classes,
		Enrolled:    enrolled,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	for _, layout := range dateLayouts {
		if d, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (expected DD.MM.YYYY or YYYY-MM-DD)", s)
}

func parseCount(s string, fallback int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}
