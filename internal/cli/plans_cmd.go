package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkoester/paideia/internal/cli/formatter"
	"github.com/dkoester/paideia/internal/contract"
	"github.com/dkoester/paideia/internal/domain"
)

func newPlansCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Browse saved plans",
	}

	cmd.AddCommand(
		newPlansListCmd(app),
		newPlansShowCmd(app),
		newPlansRmCmd(app),
	)

	return cmd
}

func newPlansListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Archive.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSavedPlans(plans))
			return nil
		},
	}
}

func newPlansShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved plan as a schedule table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := app.Archive.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			resp := &contract.PlanResponse{
				Success:          true,
				Blocks:           saved.Blocks,
				GapEvents:        saved.GapEvents,
				GapWeeks:         saved.GapWeeks,
				CategorySwitches: saved.CategorySwitches,
				CompactOrdering:  domain.Plan{Blocks: saved.Blocks}.CompactOrdering(),
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(resp))
			return nil
		},
	}
}

func newPlansRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Archive.Delete(context.Background(), args[0])
		},
	}
}
