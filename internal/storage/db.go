package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const (
	dbFileName = "irodori.db"
)

// DB represents the database connection
type DB struct {
	conn *sql.DB
}

// NewDB creates a new database connection at the default location
func NewDB() (*DB, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get database path: %w", err)
	}

	return OpenDB(dbPath)
}

// OpenDB opens (or creates) a database at the given path
func OpenDB(dbPath string) (*DB, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with performance pragmas
	// WAL mode: Better concurrency for read/write operations
	// Busy timeout: Handles concurrent access gracefully (5 seconds)
	// Synchronous NORMAL: Faster writes while maintaining safety
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_foreign_keys=ON", dbPath)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite benefits from a single writer connection
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	db := &DB{conn: conn}

	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// getDBPath returns the path to the database file
func getDBPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "irodori", dbFileName), nil
}

// initSchema initializes the database schema
func (db *DB) initSchema() error {
	// Create schema version table first
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	// Check current schema version
	var currentVersion int
	err = db.conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	const latestVersion = 2
	if currentVersion >= latestVersion {
		return nil
	}

	if currentVersion < 1 {
		if err := db.applySchemaV1(); err != nil {
			return fmt.Errorf("failed to apply schema v1: %w", err)
		}

		_, err = db.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", 1)
		if err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
	}

	if currentVersion < 2 {
		if err := db.applySchemaV2(); err != nil {
			return fmt.Errorf("failed to apply schema v2: %w", err)
		}

		_, err = db.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", 2)
		if err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
	}

	return nil
}

// applySchemaV1 applies the initial schema (version 1)
func (db *DB) applySchemaV1() error {
	schema := `
	-- Saved palette colors
	CREATE TABLE IF NOT EXISTS palette_colors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		r INTEGER NOT NULL,
		g INTEGER NOT NULL,
		b INTEGER NOT NULL,
		is_builtin BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- Scan runs
	CREATE TABLE IF NOT EXISTS scan_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		root TEXT NOT NULL,
		file_count INTEGER NOT NULL DEFAULT 0,
		match_count INTEGER NOT NULL DEFAULT 0,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- Individual matches found during a scan
	CREATE TABLE IF NOT EXISTS scan_matches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL,
		path TEXT NOT NULL,
		line INTEGER NOT NULL,
		col INTEGER NOT NULL,
		raw TEXT NOT NULL,
		r INTEGER NOT NULL,
		g INTEGER NOT NULL,
		b INTEGER NOT NULL,
		kind TEXT NOT NULL,
		FOREIGN KEY (run_id) REFERENCES scan_runs(id) ON DELETE CASCADE
	);

	-- Indices for better performance
	CREATE INDEX IF NOT EXISTS idx_matches_run ON scan_matches(run_id);
	CREATE INDEX IF NOT EXISTS idx_matches_color ON scan_matches(r, g, b);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON scan_runs(started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_palette_name ON palette_colors(name);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// applySchemaV2 adds notes to palette colors (version 2)
func (db *DB) applySchemaV2() error {
	schema := `
	-- Add note column so saved colors can carry context
	ALTER TABLE palette_colors ADD COLUMN note TEXT DEFAULT '';
	`

	_, err := db.conn.Exec(schema)
	return err
}

// GetConnection returns the underlying database connection
func (db *DB) GetConnection() *sql.DB {
	return db.conn
}

// WithTransaction executes a function within a database transaction
// If the function returns an error, the transaction is rolled back
// Otherwise, the transaction is committed
func (db *DB) WithTransaction(fn func(*sql.Tx) error) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p) // Re-throw panic after rollback
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetSchemaVersion returns the current schema version
func (db *DB) GetSchemaVersion() (int, error) {
	var version int
	err := db.conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}
