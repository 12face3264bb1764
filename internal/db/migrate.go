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
	`CREATE TABLE IF NOT EXISTS profiles (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		age           INTEGER NOT NULL,
		weight_kg     REAL NOT NULL,
		height_cm     INTEGER NOT NULL,
		goals         TEXT NOT NULL DEFAULT '[]',
		equipment     TEXT NOT NULL DEFAULT '[]',
		fitness_level TEXT NOT NULL
		              CHECK(fitness_level IN ('Beginner','Intermediate','Advanced')),
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plans (
		id                   TEXT PRIMARY KEY,
		title                TEXT NOT NULL,
		description          TEXT NOT NULL DEFAULT '',
		duration_min         INTEGER NOT NULL DEFAULT 0,
		difficulty           TEXT NOT NULL DEFAULT '',
		equipment            TEXT NOT NULL DEFAULT '[]',
		target_muscle_groups TEXT NOT NULL DEFAULT '[]',
		created_at           TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plan_exercises (
		plan_id      TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		position     INTEGER NOT NULL,
		name         TEXT NOT NULL,
		day          INTEGER NOT NULL DEFAULT 1,
		sets         INTEGER NOT NULL DEFAULT 0,
		reps         INTEGER NOT NULL DEFAULT 0,
		weight_kg    REAL,
		duration_sec INTEGER,
		rest_sec     INTEGER NOT NULL DEFAULT 0,
		instructions TEXT NOT NULL DEFAULT '',
		muscle_group TEXT NOT NULL DEFAULT '',
		equipment    TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (plan_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_entries (
		id         TEXT PRIMARY KEY,
		plan_id    TEXT NOT NULL,
		plan_title TEXT NOT NULL,
		day        INTEGER NOT NULL,
		start_at   TEXT NOT NULL,
		time_label TEXT NOT NULL,
		source     TEXT NOT NULL CHECK(source IN ('local','calendar')),
		status     TEXT NOT NULL CHECK(status IN ('pending','confirmed')),
		event_id   TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_entries_start
		ON schedule_entries(start_at)`,

	`CREATE TABLE IF NOT EXISTS dialogue_sessions (
		session_id            TEXT PRIMARY KEY,
		stage                 TEXT NOT NULL,
		question_index        INTEGER NOT NULL DEFAULT 0,
		last_plan_id          TEXT NOT NULL DEFAULT '',
		awaiting_confirmation INTEGER NOT NULL DEFAULT 0,
		pending_date          TEXT NOT NULL DEFAULT '',
		pending_time_label    TEXT NOT NULL DEFAULT '',
		updated_at            TEXT NOT NULL
	)`,
}
