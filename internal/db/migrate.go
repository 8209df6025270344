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
		meals_per_day INTEGER NOT NULL DEFAULT 3
		              CHECK(meals_per_day BETWEEN 2 AND 4),
		heuristics    TEXT NOT NULL DEFAULT '[]',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS dishes (
		id            TEXT PRIMARY KEY,
		profile_id    TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		name          TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		meal_types    TEXT NOT NULL DEFAULT '[]',
		food_groups   TEXT NOT NULL DEFAULT '{}',
		freq_mode     TEXT NOT NULL DEFAULT 'days'
		              CHECK(freq_mode IN ('days','ratio')),
		freq_days     TEXT NOT NULL DEFAULT '[]',
		freq_min_days INTEGER NOT NULL DEFAULT 0,
		freq_max_days INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_dishes_profile ON dishes(profile_id)`,

	`CREATE TABLE IF NOT EXISTS selections (
		profile_id TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		date       TEXT NOT NULL,
		meal       TEXT NOT NULL
		           CHECK(meal IN ('breakfast','lunch','dinner','supper')),
		dish_id    TEXT NOT NULL REFERENCES dishes(id) ON DELETE CASCADE,
		created_at TEXT NOT NULL,
		PRIMARY KEY (profile_id, date, meal)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_selections_profile_date ON selections(profile_id, date)`,

	// Free-form notes were added after the initial schema shipped.
	`ALTER TABLE dishes ADD COLUMN notes TEXT NOT NULL DEFAULT ''`,
}
