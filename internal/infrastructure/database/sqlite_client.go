package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
)

const defaultDBPath = "./data/murilov3d.db"

// ConnectSQLite opens (and migrates) the local database using environment
// variables.
//
// Supported env vars:
//   - DB_PATH (default: ./data/murilov3d.db)
func ConnectSQLite() (*sql.DB, error) {
	return Open(getenvDefault("DB_PATH", defaultDBPath))
}

// Open opens the SQLite database at path, creating parent directories and
// running migrations.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single-user service; one writer avoids SQLITE_BUSY from the driver.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func runMigrations(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS documents (
	key      TEXT PRIMARY KEY,
	document TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS quotes (
	id         TEXT PRIMARY KEY,
	status     TEXT NOT NULL,
	created_at TEXT NOT NULL,
	document   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
