package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkoester/paideia/internal/cli/formatter"
)

func newCheckCmd(app *App) *cobra.Command {
	var modules []string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a module selection for missing prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(modules) == 0 {
				return fmt.Errorf("no modules given, use --modules")
			}
			missing := app.Plan.CheckPrerequisites(context.Background(), modules)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMissingPrerequisites(missing))
			if len(missing) > 0 {
				return fmt.Errorf("%d prerequisite(s) missing", len(missing))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&modules, "modules", nil, "Module codes to check")

	return cmd
}
