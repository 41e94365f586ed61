package database

import (
	"database/sql"
	"fmt"
)

// Migrate creates all required tables and runs the additive column passes.
// Safe to re-run against an already-migrated store; every statement is
// idempotent and nothing is ever dropped.
func Migrate(db *sql.DB) error {
	if err := createUsersTable(db); err != nil {
		return err
	}
	return createQuizResultsTable(db)
}

func createUsersTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		password TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func createQuizResultsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS quiz_results (
		id SERIAL PRIMARY KEY,
		user_id INTEGER UNIQUE NOT NULL REFERENCES users(id),
		skin_type TEXT,
		concerns TEXT,
		allergies TEXT,
		routine_level TEXT,
		recommendations TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("create quiz_results table: %w", err)
	}
	return ensureQuizResultsSchema(db)
}

// ensureQuizResultsSchema upgrades stores created before the notes column
// existed. Additive only; existing rows keep their data.
func ensureQuizResultsSchema(db *sql.DB) error {
	if _, err := db.Exec(`ALTER TABLE quiz_results ADD COLUMN IF NOT EXISTS notes TEXT`); err != nil {
		return fmt.Errorf("ensure quiz_results.notes column: %w", err)
	}
	return nil
}
