// Package catalog indexes course offerings for feasibility lookups.
package catalog

import (
	"sort"
	"time"

	"github.com/dkoester/paideia/internal/domain"
)

// Index maps a module code to its chronologically sorted offerings.
// Built once per loaded catalog, read-only afterward; an index may be
// shared across concurrent plan requests.
type Index struct {
	byModule map[string][]domain.Offering
}

// Build groups offerings by module code and sorts each group by start
// date ascending.
func Build(offerings []domain.Offering) *Index {
	byModule := make(map[string][]domain.Offering)
	for _, o := range offerings {
		byModule[o.ModuleCode] = append(byModule[o.ModuleCode], o)
	}
	for code := range byModule {
		group := byModule[code]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].StartDate.Before(group[j].StartDate)
		})
	}
	return &Index{byModule: byModule}
}

// Lookup returns the earliest offering of the module starting on or
// after notBefore, skipping full offerings unless ignoreCapacity is
// set. Callers must snap notBefore to the week anchor first. A missing
// offering is not an error; the second return value is false.
func (x *Index) Lookup(code string, notBefore time.Time, ignoreCapacity bool) (domain.Offering, bool) {
	for _, o := range x.byModule[code] {
		if o.StartDate.Before(notBefore) {
			continue
		}
		if !ignoreCapacity && o.Full() {
			continue
		}
		return o, true
	}
	return domain.Offering{}, false
}

// Offerings returns the sorted offerings for a module code.
func (x *Index) Offerings(code string) []domain.Offering {
	return x.byModule[code]
}

// Modules returns all module codes in the catalog, sorted.
func (x *Index) Modules() []string {
	codes := make([]string, 0, len(x.byModule))
	for code := range x.byModule {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of distinct modules in the index.
func (x *Index) Len() int {
	return len(x.byModule)
}
