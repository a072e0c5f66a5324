package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens/creates a SQLite DB file and ensures tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// one writer: the recorder; HTTP readers share the same connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec %q: %w", pragma, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

var pragmas = []string{
	"PRAGMA journal_mode = WAL;",
	"PRAGMA busy_timeout = 5000;",
	"PRAGMA synchronous = NORMAL;",
}

const schemaPrinterState = `
CREATE TABLE IF NOT EXISTS printer_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    status TEXT NOT NULL,
    nozzle_c REAL NOT NULL,
    nozzle_target_c REAL NOT NULL,
    bed_c REAL NOT NULL,
    bed_target_c REAL NOT NULL,
    light_on BOOLEAN NOT NULL,
    filament BOOLEAN NOT NULL,
    job_file TEXT,
    job_estimated_s REAL,
    completion REAL NOT NULL,
    print_time_s REAL NOT NULL,
    print_time_left_s REAL NOT NULL,
    link_connected BOOLEAN NOT NULL,
    link_last_seen TIMESTAMP,
    link_error TEXT NOT NULL DEFAULT '',
    link_failures INTEGER NOT NULL DEFAULT 0,
    updated_at TIMESTAMP NOT NULL
);
`

const schemaPrinterEvents = `
CREATE TABLE IF NOT EXISTS printer_events (
    id TEXT PRIMARY KEY,
    occurred_at TIMESTAMP NOT NULL,
    type TEXT NOT NULL,
    message TEXT NOT NULL,
    meta TEXT
);
`

const indexPrinterEventsOccurredAt = `
CREATE INDEX IF NOT EXISTS idx_printer_events_occurred_at ON printer_events (occurred_at);
`

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range []string{
		schemaPrinterState,
		schemaPrinterEvents,
		indexPrinterEventsOccurredAt,
		schemaUsers,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
