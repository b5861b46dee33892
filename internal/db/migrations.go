package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS site_limits (
  id INTEGER PRIMARY KEY,
  pattern TEXT NOT NULL,
  visit_limit INTEGER NOT NULL,
  time_interval TEXT NOT NULL,
  visit_count INTEGER NOT NULL DEFAULT 0,
  last_reset TEXT NOT NULL,
  created_at TEXT NOT NULL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: updated_at for popup edits
	ok, err := hasColumn(db, "site_limits", "updated_at")
	if err != nil {
		return fmt.Errorf("check updated_at column: %w", err)
	}
	if !ok {
		if _, err := db.Exec(`ALTER TABLE site_limits ADD COLUMN updated_at TEXT NOT NULL DEFAULT ''`); err != nil {
			return fmt.Errorf("add updated_at column: %w", err)
		}
		if _, err := db.Exec(`UPDATE site_limits SET updated_at = created_at WHERE updated_at = ''`); err != nil {
			return fmt.Errorf("backfill updated_at: %w", err)
		}
	}

	// Migration 2: one row per pattern
	if _, err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_site_limits_pattern ON site_limits(pattern)`); err != nil {
		return fmt.Errorf("create idx_site_limits_pattern: %w", err)
	}

	return nil
}

func hasColumn(db *sql.DB, table string, column string) (bool, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
