package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// list can be re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS module_notes (
		module_code TEXT PRIMARY KEY,
		text        TEXT NOT NULL DEFAULT '',
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS saved_plans (
		id                TEXT PRIMARY KEY,
		label             TEXT NOT NULL DEFAULT '',
		desired_start     TEXT NOT NULL,
		gap_events        INTEGER NOT NULL DEFAULT 0,
		gap_weeks         INTEGER NOT NULL DEFAULT 0,
		category_switches INTEGER NOT NULL DEFAULT 0,
		blocks_json       TEXT NOT NULL,
		created_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_saved_plans_created ON saved_plans(created_at)`,
}
