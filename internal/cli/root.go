package cli

import (
	"github.com/spf13/cobra"

	"github.com/dkoester/paideia/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plan    service.PlanService
	Catalog service.CatalogService
	Notes   service.NoteService
	Archive service.ArchiveService

	// IsInteractive reports whether stdin is a terminal. The plan
	// command falls back to an interactive form when no modules were
	// given on the command line.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "paideia" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "paideia",
		Short: "Training schedule planner",
	}

	root.AddCommand(
		newPlanCmd(app),
		newCheckCmd(app),
		newCatalogCmd(app),
		newNoteCmd(app),
		newPlansCmd(app),
	)

	return root
}
