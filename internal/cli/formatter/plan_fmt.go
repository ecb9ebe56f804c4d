package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoester/paideia/internal/contract"
	"github.com/dkoester/paideia/internal/domain"
)

const dateFormat = "02.01.2006"

// FormatPlan renders a plan response as a styled schedule table plus a
// summary and the compact ordering line.
func FormatPlan(resp *contract.PlanResponse) string {
	var b strings.Builder

	if !resp.Success {
		b.WriteString(StyleRed.Render("No feasible schedule found.") + "\n")
		if resp.FailureReason != "" {
			b.WriteString(Dim("Hint: "+resp.FailureReason) + "\n")
		}
		return b.String()
	}

	headers := []string{"CATEGORY", "FROM", "TO", "MODULE", "INFO"}
	rows := make([][]string, 0, len(resp.Blocks))
	for _, block := range resp.Blocks {
		rows = append(rows, []string{
			Dim(block.Category),
			block.StartDate.Format(dateFormat),
			block.EndDate.Format(dateFormat),
			BlockStyle(block).Render(block.DisplayName),
			blockInfo(block),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  gap events: %s  gap weeks: %s  category switches: %s\n",
		StyleGreen.Render("Best schedule found."),
		costStyle(resp.GapEvents).Render(fmt.Sprintf("%d", resp.GapEvents)),
		costStyle(resp.GapWeeks).Render(fmt.Sprintf("%d", resp.GapWeeks)),
		StyleFg.Render(fmt.Sprintf("%d", resp.CategorySwitches)),
	))
	if resp.OrderingsSimulated > 0 {
		b.WriteString(Dim(fmt.Sprintf("%d orderings simulated, %d feasible",
			resp.OrderingsSimulated, resp.OrderingsFeasible)) + "\n")
	}

	if resp.CompactOrdering != "" {
		b.WriteString("\n" + Bold("Ordering: ") + resp.CompactOrdering + "\n")
	}
	return b.String()
}

func blockInfo(b domain.ScheduleBlock) string {
	switch {
	case b.Synthetic():
		return StyleBlue.Render("self-study")
	case b.GapDaysBefore > 0:
		return StyleYellow.Render(fmt.Sprintf("%d idle days before", b.GapDaysBefore))
	default:
		return ""
	}
}

func costStyle(n int) lipgloss.Style {
	if n > 0 {
		return StyleYellow
	}
	return StyleGreen
}

// FormatMissingPrerequisites renders the upfront prerequisite warnings.
func FormatMissingPrerequisites(missing []string) string {
	if len(missing) == 0 {
		return StyleGreen.Render("All prerequisites are covered by the selection.") + "\n"
	}
	var b strings.Builder
	b.WriteString(StyleYellow.Render("Missing prerequisites:") + "\n")
	for _, m := range missing {
		b.WriteString("  - " + m + "\n")
	}
	return b.String()
}

// FormatCatalog renders the module summaries of a loaded catalog.
func FormatCatalog(summaries []contract.CatalogSummary) string {
	headers := []string{"CODE", "MODULE", "CATEGORY", "OFFERINGS", "NEXT START"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		offerings := fmt.Sprintf("%d", s.OfferingCount)
		if s.FullCount > 0 {
			offerings += StyleRed.Render(fmt.Sprintf(" (%d full)", s.FullCount))
		}
		next := Dim("--")
		if s.NextStart != nil {
			next = s.NextStart.Format(dateFormat)
		}
		rows = append(rows, []string{
			Bold(s.Code),
			s.DisplayName,
			Dim(s.Category),
			offerings,
			next,
		})
	}
	return RenderTable(headers, rows)
}

// FormatNotes renders the module note list.
func FormatNotes(notes []*domain.Note) string {
	if len(notes) == 0 {
		return Dim("No notes yet.") + "\n"
	}
	var b strings.Builder
	for _, n := range notes {
		b.WriteString(Bold(n.ModuleCode) + Dim(" ("+n.UpdatedAt.Format(dateFormat)+")") + "\n")
		b.WriteString("  " + n.Text + "\n")
	}
	return b.String()
}

// FormatSavedPlans renders the saved-plan archive listing.
func FormatSavedPlans(plans []*domain.SavedPlan) string {
	if len(plans) == 0 {
		return Dim("No saved plans.") + "\n"
	}
	headers := []string{"ID", "LABEL", "START", "GAPS", "SWITCHES", "SAVED"}
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			Dim(shortID(p.ID)),
			Bold(p.Label),
			p.DesiredStart.Format(dateFormat),
			fmt.Sprintf("%dw/%de", p.GapWeeks, p.GapEvents),
			fmt.Sprintf("%d", p.CategorySwitches),
			Dim(p.CreatedAt.Format(dateFormat)),
		})
	}
	return RenderTable(headers, rows)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
