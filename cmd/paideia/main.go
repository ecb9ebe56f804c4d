package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/dkoester/paideia/internal/cli"
	"github.com/dkoester/paideia/internal/db"
	"github.com/dkoester/paideia/internal/repository"
	"github.com/dkoester/paideia/internal/rules"
	"github.com/dkoester/paideia/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.paideia/paideia.db
	dbPath := os.Getenv("PAIDEIA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".paideia", "paideia.db")
	}

	// PAIDEIA_RULES overrides the embedded default ruleset.
	ruleset, err := rules.LoadRuleset(os.Getenv("PAIDEIA_RULES"))
	if err != nil {
		return fmt.Errorf("loading ruleset: %w", err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	app := &cli.App{
		Plan:    service.NewPlanService(ruleset),
		Catalog: service.NewCatalogService(ruleset),
		Notes:   service.NewNoteService(repository.NewSQLiteNoteRepo(database)),
		Archive: service.NewArchiveService(repository.NewSQLitePlanRepo(database)),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
