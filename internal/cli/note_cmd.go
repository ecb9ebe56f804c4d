package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkoester/paideia/internal/cli/formatter"
)

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage free-text notes attached to module codes",
	}

	cmd.AddCommand(
		newNoteSetCmd(app),
		newNoteShowCmd(app),
		newNoteListCmd(app),
		newNoteRmCmd(app),
	)

	return cmd
}

func newNoteSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <module> <text...>",
		Short: "Set the note for a module",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Notes.Set(context.Background(), args[0], strings.Join(args[1:], " "))
		},
	}
}

func newNoteShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <module>",
		Short: "Show the note for a module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := app.Notes.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), note.Text)
			return nil
		},
	}
}

func newNoteListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all module notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := app.Notes.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNotes(notes))
			return nil
		},
	}
}

func newNoteRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <module>",
		Short: "Remove the note for a module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Notes.Remove(context.Background(), args[0])
		},
	}
}
