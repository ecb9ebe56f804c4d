package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkoester/paideia/internal/cli/formatter"
	"github.com/dkoester/paideia/internal/contract"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		catalogPath    string
		modules        []string
		startStr       string
		partTime       bool
		onboarding     bool
		ignorePrereqs  bool
		ignoreCapacity bool
		preferredFirst string
		saveLabel      string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute the cheapest schedule for a module selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.PlanRequest{
				CatalogPath:         catalogPath,
				Modules:             modules,
				DesiredStart:        today(),
				Onboarding:          onboarding,
				PartTime:            partTime,
				IgnorePrerequisites: ignorePrereqs,
				IgnoreCapacity:      ignoreCapacity,
				PreferredFirst:      preferredFirst,
			}

			if startStr != "" {
				start, err := parseDate(startStr)
				if err != nil {
					return err
				}
				req.DesiredStart = start
			}

			if len(req.Modules) == 0 {
				if !app.interactive() {
					return fmt.Errorf("no modules given, use --modules")
				}
				in := planFormInput{PartTime: partTime, Onboarding: onboarding}
				if err := planForm(&in).Run(); err != nil {
					return err
				}
				req.Modules = splitModules(in.Modules)
				req.PartTime = in.PartTime
				req.Onboarding = in.Onboarding
				if in.Start != "" {
					start, err := parseDate(in.Start)
					if err != nil {
						return err
					}
					req.DesiredStart = start
				}
			}

			ctx := context.Background()
			resp, err := app.Plan.BuildPlan(ctx, req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(resp))

			if saveLabel != "" {
				if !resp.Success {
					return fmt.Errorf("not saving an infeasible plan")
				}
				saved, err := app.Archive.Save(ctx, saveLabel, req, resp)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved as %s.\n", saved.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "catalog.csv", "Path to the offerings CSV")
	cmd.Flags().StringSliceVar(&modules, "modules", nil, "Module codes to schedule")
	cmd.Flags().StringVar(&startStr, "start", "", "Desired start date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&partTime, "part-time", false, "Plan a part-time schedule with banked study weeks")
	cmd.Flags().BoolVar(&onboarding, "onboarding", false, "Prepend a one-week onboarding block")
	cmd.Flags().BoolVar(&ignorePrereqs, "ignore-prereqs", false, "Skip prerequisite ordering checks")
	cmd.Flags().BoolVar(&ignoreCapacity, "ignore-capacity", false, "Consider full offerings bookable")
	cmd.Flags().StringVar(&preferredFirst, "first", "", "Module code to prefer as the opening block")
	cmd.Flags().StringVar(&saveLabel, "save", "", "Save the result under this label")

	return cmd
}
