package domain

// PrereqKind distinguishes the two prerequisite relation shapes.
type PrereqKind string

const (
	// PrereqAll requires the single referenced module.
	PrereqAll PrereqKind = "requires"
	// PrereqAny requires at least one of two alternative modules.
	PrereqAny PrereqKind = "any_of"
)

// PrereqRule is an explicit tagged prerequisite relation. Modules holds
// exactly one code for PrereqAll and exactly two for PrereqAny.
type PrereqRule struct {
	Kind    PrereqKind
	Modules []string
}

// Requires builds a single-prerequisite rule.
func Requires(code string) PrereqRule {
	return PrereqRule{Kind: PrereqAll, Modules: []string{code}}
}

// RequiresOneOf builds an either-of-two prerequisite rule.
func RequiresOneOf(a, b string) PrereqRule {
	return PrereqRule{Kind: PrereqAny, Modules: []string{a, b}}
}

// Ruleset is the injected, read-only planning configuration: the
// prerequisite map, the module-to-category map, and the designated
// practice module. One ruleset serves one catalog deployment.
type Ruleset struct {
	Prerequisites    map[string]PrereqRule
	Categories       map[string]string
	PracticeModule   string
	FallbackCategory string
}

// Category returns the category for a module code. Synthetic codes map
// to the filler category; unknown codes map to the fallback.
func (r *Ruleset) Category(code string) string {
	if IsSyntheticCode(code) {
		return CategoryFiller
	}
	if cat, ok := r.Categories[code]; ok {
		return cat
	}
	return r.FallbackCategory
}

// Rule returns the prerequisite rule for code, if any.
func (r *Ruleset) Rule(code string) (PrereqRule, bool) {
	rule, ok := r.Prerequisites[code]
	return rule, ok
}
