package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoester/paideia/internal/cli/formatter"
)

// paideiaHuhTheme styles huh forms with the same palette the formatter
// uses for tables.
func paideiaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// planFormInput collects the interactive plan request fields.
type planFormInput struct {
	Modules    string
	Start      string
	PartTime   bool
	Onboarding bool
}

// planForm builds the interactive form shown when "plan" is invoked on
// a terminal without --modules.
func planForm(in *planFormInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Modules (comma separated codes)").
				Placeholder("PSM1, AKI, SEO").
				Value(&in.Modules).
				Validate(validateModuleList),
			huh.NewInput().
				Title("Desired start (YYYY-MM-DD, blank for today)").
				Placeholder("2026-02-09").
				Value(&in.Start).
				Validate(validateOptionalDate),
			huh.NewConfirm().
				Title("Part-time schedule?").
				Affirmative("Yes").
				Negative("No").
				Value(&in.PartTime),
			huh.NewConfirm().
				Title("Include onboarding week?").
				Affirmative("Yes").
				Negative("No").
				Value(&in.Onboarding),
		),
	).WithTheme(paideiaHuhTheme()).WithShowHelp(false)
}

// validateModuleList requires at least one non-empty module code.
func validateModuleList(s string) error {
	if len(splitModules(s)) == 0 {
		return fmt.Errorf("enter at least one module code")
	}
	return nil
}

// validateOptionalDate accepts empty or a parseable date.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := parseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD or DD.MM.YYYY format")
	}
	return nil
}

// splitModules turns a comma separated code list into trimmed codes.
func splitModules(s string) []string {
	var codes []string
	for _, part := range strings.Split(s, ",") {
		if code := strings.TrimSpace(part); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// today returns the current calendar date without a time-of-day. The
// scheduling core compares against midnight-anchored offering dates, so
// the default desired start must not carry a clock.
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var dateLayouts = []string{"2006-01-02", "02.01.2006"}

// parseDate accepts ISO and German day-first dates.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
