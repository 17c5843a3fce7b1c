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
	if err := seedBusinessRules(db); err != nil {
		return fmt.Errorf("seeding business rules: %w", err)
	}
	return nil
}

// seedBusinessRules inserts the shop defaults once. Later edits are kept.
func seedBusinessRules(db *sql.DB) error {
	_, err := db.Exec(`INSERT OR IGNORE INTO business_rules
		(id, peak_hours, minimum_notice_hours, max_reschedulings, target_utilization, allow_weekends, updated_at)
		VALUES (1, '10:00-12:00,16:00-19:00', 24, 3, 85, 0, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))`)
	return err
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS barbers (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL DEFAULT '',
		work_start  TEXT,
		work_end    TEXT,
		work_days   TEXT NOT NULL DEFAULT '',
		available   INTEGER NOT NULL DEFAULT 1,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS barber_breaks (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		barber_id   TEXT NOT NULL REFERENCES barbers(id) ON DELETE CASCADE,
		start_clock TEXT NOT NULL,
		end_clock   TEXT NOT NULL,
		days        TEXT NOT NULL DEFAULT '',
		on_date     TEXT,
		label       TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_barber_breaks_barber ON barber_breaks(barber_id)`,

	`CREATE TABLE IF NOT EXISTS appointments (
		id                TEXT PRIMARY KEY,
		barber_id         TEXT NOT NULL REFERENCES barbers(id),
		start_time        TEXT NOT NULL,
		duration_min      INTEGER NOT NULL CHECK(duration_min > 0),
		client_id         TEXT NOT NULL DEFAULT '',
		client_name       TEXT NOT NULL,
		service_name      TEXT NOT NULL DEFAULT '',
		status            TEXT NOT NULL DEFAULT 'scheduled'
		                  CHECK(status IN ('scheduled','completed','cancelled','no_show')),
		buffer_before_min INTEGER,
		buffer_after_min  INTEGER,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_barber_start ON appointments(barber_id, start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_status ON appointments(status)`,

	`CREATE TABLE IF NOT EXISTS client_preferences (
		client_id          TEXT PRIMARY KEY,
		preferred_times    TEXT NOT NULL DEFAULT '',
		avoid_times        TEXT NOT NULL DEFAULT '',
		preferred_days     TEXT NOT NULL DEFAULT '',
		flexibility        REAL NOT NULL DEFAULT 0.5 CHECK(flexibility >= 0 AND flexibility <= 1),
		rescheduling_count INTEGER NOT NULL DEFAULT 0 CHECK(rescheduling_count >= 0),
		updated_at         TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS business_rules (
		id                   INTEGER PRIMARY KEY CHECK(id = 1),
		peak_hours           TEXT NOT NULL DEFAULT '',
		minimum_notice_hours INTEGER NOT NULL,
		max_reschedulings    INTEGER NOT NULL,
		target_utilization   REAL NOT NULL,
		allow_weekends       INTEGER NOT NULL DEFAULT 0,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS analysis_runs (
		id             TEXT PRIMARY KEY,
		appointment_id TEXT NOT NULL DEFAULT '',
		barber_id      TEXT NOT NULL,
		start_time     TEXT NOT NULL,
		duration_min   INTEGER NOT NULL,
		risk_score     INTEGER NOT NULL,
		conflict_count INTEGER NOT NULL,
		top_strategy   TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_analysis_runs_created ON analysis_runs(created_at)`,

	// Skill tags and booking priority arrived after the first release.
	`ALTER TABLE barbers ADD COLUMN skills TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE appointments ADD COLUMN priority INTEGER`,
}
