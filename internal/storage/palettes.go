package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Justice-Caban/irodori/internal/color"
	"github.com/Justice-Caban/irodori/internal/palette"
)

// SavedColor represents a named color persisted in the database
type SavedColor struct {
	ID        int64
	Name      string
	Color     color.RGB
	IsBuiltin bool
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PaletteManager handles saved color operations
type PaletteManager struct {
	db *DB
}

// NewPaletteManager creates a new palette manager
func NewPaletteManager(db *DB) *PaletteManager {
	return &PaletteManager{db: db}
}

// SeedBuiltins inserts the built-in palette, skipping names that
// already exist so user edits survive reseeding
func (pm *PaletteManager) SeedBuiltins() error {
	return pm.db.WithTransaction(func(tx *sql.Tx) error {
		query := `
			INSERT INTO palette_colors (name, r, g, b, is_builtin)
			VALUES (?, ?, ?, ?, TRUE)
			ON CONFLICT(name) DO NOTHING
		`

		for _, entry := range palette.Builtin() {
			_, err := tx.Exec(query, entry.Name, entry.Color.R, entry.Color.G, entry.Color.B)
			if err != nil {
				return fmt.Errorf("failed to seed color %s: %w", entry.Name, err)
			}
		}

		return nil
	})
}

// SaveColor inserts or updates a named color
func (pm *PaletteManager) SaveColor(name string, c color.RGB, note string) error {
	query := `
		INSERT INTO palette_colors (name, r, g, b, note, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			r = excluded.r,
			g = excluded.g,
			b = excluded.b,
			note = excluded.note,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := pm.db.conn.Exec(query, name, c.R, c.G, c.B, note)
	if err != nil {
		return fmt.Errorf("failed to save color %s: %w", name, err)
	}

	return nil
}

// GetColor retrieves a saved color by name
func (pm *PaletteManager) GetColor(name string) (*SavedColor, error) {
	query := `
		SELECT id, name, r, g, b, is_builtin, note, created_at, updated_at
		FROM palette_colors
		WHERE name = ?
	`

	saved, err := pm.scanColor(pm.db.conn.QueryRow(query, name))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get color %s: %w", name, err)
	}

	return saved, nil
}

// ListColors returns all saved colors ordered by name
func (pm *PaletteManager) ListColors() ([]*SavedColor, error) {
	query := `
		SELECT id, name, r, g, b, is_builtin, note, created_at, updated_at
		FROM palette_colors
		ORDER BY name
	`

	rows, err := pm.db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list colors: %w", err)
	}
	defer rows.Close()

	var colors []*SavedColor
	for rows.Next() {
		saved, err := pm.scanColor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan color: %w", err)
		}
		colors = append(colors, saved)
	}

	return colors, rows.Err()
}

// RenameColor changes the name of a saved color
func (pm *PaletteManager) RenameColor(oldName, newName string) error {
	result, err := pm.db.conn.Exec(
		"UPDATE palette_colors SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE name = ?",
		newName, oldName,
	)
	if err != nil {
		return fmt.Errorf("failed to rename color %s: %w", oldName, err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("color not found: %s", oldName)
	}

	return nil
}

// DeleteColor removes a saved color by name
func (pm *PaletteManager) DeleteColor(name string) error {
	result, err := pm.db.conn.Exec("DELETE FROM palette_colors WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete color %s: %w", name, err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("color not found: %s", name)
	}

	return nil
}

// scanner abstracts sql.Row and sql.Rows for scanColor
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (pm *PaletteManager) scanColor(row rowScanner) (*SavedColor, error) {
	saved := &SavedColor{}
	var r, g, b int
	var note sql.NullString

	err := row.Scan(
		&saved.ID,
		&saved.Name,
		&r, &g, &b,
		&saved.IsBuiltin,
		&note,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	saved.Color = color.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
	saved.Note = note.String

	return saved, nil
}
