package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
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
	`CREATE TABLE IF NOT EXISTS jobs (
		id                   TEXT PRIMARY KEY,
		service_job_id       TEXT NOT NULL,
		model_path           TEXT NOT NULL,
		model_name           TEXT NOT NULL,
		output_path          TEXT NOT NULL,
		gcode_bytes          INTEGER NOT NULL DEFAULT 0,
		printer_preset       TEXT NOT NULL DEFAULT '',
		filament_preset      TEXT NOT NULL DEFAULT '',
		process_preset       TEXT NOT NULL DEFAULT '',
		estimated_print_time TEXT NOT NULL DEFAULT '',
		filament_mm          REAL NOT NULL DEFAULT 0,
		filament_g           REAL NOT NULL DEFAULT 0,
		cost                 REAL NOT NULL DEFAULT 0,
		created_at           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs(created_at)`,

	`CREATE INDEX IF NOT EXISTS idx_jobs_service_job_id ON jobs(service_job_id)`,
}
