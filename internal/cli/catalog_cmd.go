package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkoester/paideia/internal/cli/formatter"
)

func newCatalogCmd(app *App) *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the modules of an offerings CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := app.Catalog.Summarize(context.Background(), catalogPath)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalog(summaries))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "catalog.csv", "Path to the offerings CSV")

	return cmd
}
