package storage

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// NewTestDB creates an in-memory database for testing
func NewTestDB(t *testing.T) *DB {
	conn, err := sql.Open("sqlite3", ":memory:?_foreign_keys=ON")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	db := &DB{conn: conn}

	// Initialize schema
	if err := db.initSchema(); err != nil {
		conn.Close()
		t.Fatalf("Failed to initialize test schema: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})

	return db
}

// NewTestStorage creates storage backed by an in-memory database
func NewTestStorage(t *testing.T) *Storage {
	db := NewTestDB(t)

	s, err := newStorage(db)
	if err != nil {
		t.Fatalf("Failed to create test storage: %v", err)
	}

	return s
}

func TestDB_SchemaVersioning(t *testing.T) {
	db := NewTestDB(t)

	// Verify schema version table exists
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to query schema_version: %v", err)
	}

	if count == 0 {
		t.Error("Expected at least one schema version entry")
	}

	// Verify current version is 2
	version, err := db.GetSchemaVersion()
	if err != nil {
		t.Fatalf("Failed to get schema version: %v", err)
	}

	if version != 2 {
		t.Errorf("Expected schema version 2, got %d", version)
	}
}

func TestDB_SchemaIdempotent(t *testing.T) {
	db := NewTestDB(t)

	// Running the migrations again should be a no-op
	if err := db.initSchema(); err != nil {
		t.Fatalf("Re-running initSchema failed: %v", err)
	}

	version, err := db.GetSchemaVersion()
	if err != nil {
		t.Fatalf("Failed to get schema version: %v", err)
	}

	if version != 2 {
		t.Errorf("Expected schema version 2 after re-init, got %d", version)
	}
}

func TestDB_Tables(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{"palette_colors", "scan_runs", "scan_matches"}
	for _, table := range tables {
		var name string
		err := db.conn.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("Expected table %s to exist: %v", table, err)
		}
	}
}

func TestDB_WithTransaction_Rollback(t *testing.T) {
	db := NewTestDB(t)

	wantErr := sql.ErrConnDone // any sentinel will do
	err := db.WithTransaction(func(tx *sql.Tx) error {
		_, execErr := tx.Exec("INSERT INTO scan_runs (root) VALUES ('/tmp')")
		if execErr != nil {
			t.Fatalf("Insert inside transaction failed: %v", execErr)
		}
		return wantErr
	})

	if err != wantErr {
		t.Fatalf("Expected transaction error to propagate, got %v", err)
	}

	var count int
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM scan_runs").Scan(&count); err != nil {
		t.Fatalf("Failed to count runs: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected rollback to discard insert, found %d rows", count)
	}
}
