package storage

import "fmt"

// Storage bundles the database and its managers
type Storage struct {
	db *DB

	Palettes *PaletteManager
	History  *HistoryManager
}

// NewStorage creates storage at the default database location
func NewStorage() (*Storage, error) {
	db, err := NewDB()
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return newStorage(db)
}

// OpenStorage creates storage backed by a database at the given path
func OpenStorage(dbPath string) (*Storage, error) {
	db, err := OpenDB(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return newStorage(db)
}

func newStorage(db *DB) (*Storage, error) {
	s := &Storage{
		db:       db,
		Palettes: NewPaletteManager(db),
		History:  NewHistoryManager(db),
	}

	// Make sure the built-in palette is always queryable
	if err := s.Palettes.SeedBuiltins(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed palette: %w", err)
	}

	return s, nil
}

// Close closes the underlying database
func (s *Storage) Close() error {
	return s.db.Close()
}

// DB returns the underlying database handle
func (s *Storage) DB() *DB {
	return s.db
}
