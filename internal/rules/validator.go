// Package rules validates module orderings against a prerequisite
// ruleset.
package rules

import (
	"fmt"

	"github.com/dkoester/paideia/internal/domain"
)

// Validator answers ordering questions for one ruleset. It holds no
// mutable state and is safe for concurrent use.
type Validator struct {
	rules *domain.Ruleset
}

// NewValidator wraps the given ruleset.
func NewValidator(rs *domain.Ruleset) *Validator {
	return &Validator{rules: rs}
}

// IsOrderValid walks the ordering left to right and checks that every
// prerequisite that is itself part of the ordering appears before its
// dependent. Prerequisites absent from the ordering altogether do not
// reject here; MissingPrerequisites reports those separately.
func (v *Validator) IsOrderValid(ordering []string) bool {
	inOrdering := make(map[string]bool, len(ordering))
	for _, code := range ordering {
		inOrdering[code] = true
	}

	seen := make(map[string]bool, len(ordering))
	for _, code := range ordering {
		rule, ok := v.rules.Rule(code)
		if ok && !v.ruleSatisfied(rule, inOrdering, seen) {
			return false
		}
		seen[code] = true
	}
	return true
}

func (v *Validator) ruleSatisfied(rule domain.PrereqRule, inOrdering, seen map[string]bool) bool {
	switch rule.Kind {
	case domain.PrereqAll:
		required := rule.Modules[0]
		return !inOrdering[required] || seen[required]
	case domain.PrereqAny:
		anyPresent := false
		for _, alt := range rule.Modules {
			if seen[alt] {
				return true
			}
			if inOrdering[alt] {
				anyPresent = true
			}
		}
		// If neither alternative was requested the absence is reported
		// by MissingPrerequisites, not here.
		return !anyPresent
	}
	return true
}

// MissingPrerequisites reports, independent of ordering, which
// prerequisites of the requested modules are absent from the requested
// set entirely. The returned statements are meant for user-facing
// warnings.
func (v *Validator) MissingPrerequisites(requested []string) []string {
	inSet := make(map[string]bool, len(requested))
	for _, code := range requested {
		inSet[code] = true
	}

	var missing []string
	for _, code := range requested {
		rule, ok := v.rules.Rule(code)
		if !ok {
			continue
		}
		switch rule.Kind {
		case domain.PrereqAll:
			if !inSet[rule.Modules[0]] {
				missing = append(missing, fmt.Sprintf("module %q requires %q", code, rule.Modules[0]))
			}
		case domain.PrereqAny:
			if !inSet[rule.Modules[0]] && !inSet[rule.Modules[1]] {
				missing = append(missing, fmt.Sprintf("module %q requires one of %q or %q",
					code, rule.Modules[0], rule.Modules[1]))
			}
		}
	}
	return missing
}
