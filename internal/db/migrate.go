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
	if err := seedDefaultSettings(db); err != nil {
		return fmt.Errorf("seeding default settings: %w", err)
	}
	return nil
}

// seedDefaultSettings inserts the single settings row when missing, so a
// fresh database comes up with a valid configuration. Exactly one logical
// settings record exists at all times; the id=1 check constraint enforces
// the single row at the schema level.
func seedDefaultSettings(db *sql.DB) error {
	_, err := db.Exec(`INSERT INTO settings (id, unit_minutes, day_start, units_per_day, wip_limit, created_at, updated_at)
		SELECT 1, 30, '09:00', 20, 100, strftime('%Y-%m-%dT%H:%M:%SZ','now'), strftime('%Y-%m-%dT%H:%M:%SZ','now')
		WHERE NOT EXISTS (SELECT 1 FROM settings WHERE id = 1)`)
	return err
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS lists (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		position   INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sublists (
		id         TEXT PRIMARY KEY,
		list_id    TEXT NOT NULL REFERENCES lists(id) ON DELETE CASCADE,
		title      TEXT NOT NULL,
		position   INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sublists_list ON sublists(list_id)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		list_id      TEXT NOT NULL REFERENCES lists(id) ON DELETE CASCADE,
		sublist_id   TEXT REFERENCES sublists(id) ON DELETE SET NULL,
		duration     TEXT NOT NULL DEFAULT 'S'
		             CHECK(duration IN ('S','M','L')),
		due_date     TEXT NOT NULL,
		start_time   TEXT NOT NULL,
		is_priority  INTEGER NOT NULL DEFAULT 0,
		position     INTEGER NOT NULL DEFAULT 0,
		is_active    INTEGER NOT NULL DEFAULT 1,
		is_completed INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_container ON activities(list_id, sublist_id)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_due ON activities(due_date)`,

	`CREATE TABLE IF NOT EXISTS weekly_goals (
		id         TEXT PRIMARY KEY,
		week_start TEXT NOT NULL UNIQUE,
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id            INTEGER PRIMARY KEY CHECK(id = 1),
		unit_minutes  INTEGER NOT NULL,
		day_start     TEXT NOT NULL,
		units_per_day INTEGER NOT NULL,
		wip_limit     INTEGER NOT NULL,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
}
