package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS turnarounds (
		id                  TEXT PRIMARY KEY,
		flight_number       TEXT NOT NULL,
		stand               TEXT NOT NULL DEFAULT '',
		scheduled_arrival   TEXT NOT NULL,
		scheduled_departure TEXT NOT NULL,
		status              TEXT NOT NULL DEFAULT 'on_time'
		                    CHECK(status IN ('on_time','delayed','cancelled')),
		cancelled_at        TEXT,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_turnarounds_flight ON turnarounds(flight_number)`,

	`CREATE TABLE IF NOT EXISTS task_completions (
		id            TEXT PRIMARY KEY,
		turnaround_id TEXT NOT NULL REFERENCES turnarounds(id) ON DELETE CASCADE,
		task_id       INTEGER NOT NULL CHECK(task_id >= 0),
		completed_at  TEXT NOT NULL,
		submitted_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_completions_turnaround ON task_completions(turnaround_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_completions_unique
		ON task_completions(turnaround_id, task_id, completed_at)`,
}
