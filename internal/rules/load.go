package rules

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dkoester/paideia/internal/domain"
)

//go:embed default_rules.yaml
var defaultRules []byte

// rulesetFile is the YAML shape of a ruleset. Prerequisite relations
// are spelled out explicitly so the file shape never has to imply the
// rule semantics.
type rulesetFile struct {
	PracticeModule   string                 `yaml:"practice_module"`
	FallbackCategory string                 `yaml:"fallback_category"`
	Categories       map[string][]string    `yaml:"categories"`
	Prerequisites    map[string]prereqEntry `yaml:"prerequisites"`
}

type prereqEntry struct {
	Requires string   `yaml:"requires"`
	AnyOf    []string `yaml:"any_of"`
}

// LoadRuleset reads a ruleset YAML file, or the embedded default
// ruleset when path is empty.
func LoadRuleset(path string) (*domain.Ruleset, error) {
	data := defaultRules
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading ruleset: %w", err)
		}
	}
	return parseRuleset(data)
}

func parseRuleset(data []byte) (*domain.Ruleset, error) {
	var file rulesetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing ruleset: %w", err)
	}

	rs := &domain.Ruleset{
		Prerequisites:    make(map[string]domain.PrereqRule, len(file.Prerequisites)),
		Categories:       make(map[string]string),
		PracticeModule:   file.PracticeModule,
		FallbackCategory: file.FallbackCategory,
	}
	if rs.FallbackCategory == "" {
		rs.FallbackCategory = "Sonstiges"
	}

	for category, codes := range file.Categories {
		for _, code := range codes {
			if prev, dup := rs.Categories[code]; dup && prev != category {
				return nil, fmt.Errorf("module %q listed under both %q and %q", code, prev, category)
			}
			rs.Categories[code] = category
		}
	}

	for code, entry := range file.Prerequisites {
		switch {
		case entry.Requires != "" && len(entry.AnyOf) > 0:
			return nil, fmt.Errorf("prerequisite for %q sets both requires and any_of", code)
		case entry.Requires != "":
			rs.Prerequisites[code] = domain.Requires(entry.Requires)
		case len(entry.AnyOf) == 2:
			rs.Prerequisites[code] = domain.RequiresOneOf(entry.AnyOf[0], entry.AnyOf[1])
		case len(entry.AnyOf) > 0:
			return nil, fmt.Errorf("prerequisite for %q: any_of needs exactly two modules, got %d", code, len(entry.AnyOf))
		default:
			return nil, fmt.Errorf("prerequisite for %q is empty", code)
		}
	}

	return rs, nil
}
