package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are applied in order on every open. Statements must stay
// idempotent; ALTER TABLE duplicates are tolerated by Migrate.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS leads (
		id               TEXT PRIMARY KEY,
		first_name       TEXT NOT NULL DEFAULT '',
		last_name        TEXT NOT NULL DEFAULT '',
		phone            TEXT NOT NULL DEFAULT '',
		email            TEXT NOT NULL DEFAULT '',
		source           TEXT NOT NULL DEFAULT '',
		budget           TEXT NOT NULL DEFAULT '',
		urgency_score    INTEGER,
		status           TEXT NOT NULL DEFAULT '',
		property_address TEXT NOT NULL DEFAULT '',
		description      TEXT NOT NULL DEFAULT '',
		timeline         TEXT NOT NULL DEFAULT '',
		created_at       TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status)`,

	`CREATE TABLE IF NOT EXISTS vendors (
		id                  TEXT PRIMARY KEY,
		name                TEXT NOT NULL DEFAULT '',
		company             TEXT NOT NULL DEFAULT '',
		category            TEXT NOT NULL DEFAULT '',
		trust_score         INTEGER NOT NULL DEFAULT 0,
		active_transactions INTEGER NOT NULL DEFAULT 0,
		phone               TEXT NOT NULL DEFAULT '',
		last_used           TEXT,
		specialties         TEXT NOT NULL DEFAULT '[]',
		recent_transactions TEXT NOT NULL DEFAULT '[]'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_vendors_category ON vendors(category)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

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
