package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Justice-Caban/irodori/internal/color"
	"github.com/Justice-Caban/irodori/internal/scanner"
)

// ScanRun represents one recorded scan
type ScanRun struct {
	ID         int64
	Root       string
	FileCount  int
	MatchCount int
	Duration   time.Duration
	StartedAt  time.Time
}

// ColorUsage aggregates how often a color appears across recorded scans
type ColorUsage struct {
	Color color.RGB
	Count int
}

// HistoryManager handles scan run persistence
type HistoryManager struct {
	db *DB
}

// NewHistoryManager creates a new history manager
func NewHistoryManager(db *DB) *HistoryManager {
	return &HistoryManager{db: db}
}

// RecordRun stores a scan run and its matches in one transaction
func (hm *HistoryManager) RecordRun(root string, fileCount int, duration time.Duration, matches []scanner.Match) (int64, error) {
	var runID int64

	err := hm.db.WithTransaction(func(tx *sql.Tx) error {
		result, err := tx.Exec(
			"INSERT INTO scan_runs (root, file_count, match_count, duration_ms) VALUES (?, ?, ?, ?)",
			root, fileCount, len(matches), duration.Milliseconds(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert scan run: %w", err)
		}

		runID, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get run id: %w", err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO scan_matches (run_id, path, line, col, raw, r, g, b, kind)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare match insert: %w", err)
		}
		defer stmt.Close()

		for _, m := range matches {
			_, err := stmt.Exec(runID, m.Path, m.Line, m.Column, m.Raw, m.Color.R, m.Color.G, m.Color.B, string(m.Kind))
			if err != nil {
				return fmt.Errorf("failed to insert match: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return 0, err
	}

	return runID, nil
}

// GetRecentRuns returns the most recent scan runs, newest first
func (hm *HistoryManager) GetRecentRuns(limit int) ([]*ScanRun, error) {
	query := `
		SELECT id, root, file_count, match_count, duration_ms, started_at
		FROM scan_runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`

	rows, err := hm.db.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan runs: %w", err)
	}
	defer rows.Close()

	var runs []*ScanRun
	for rows.Next() {
		run := &ScanRun{}
		var durationMs int64

		err := rows.Scan(&run.ID, &run.Root, &run.FileCount, &run.MatchCount, &durationMs, &run.StartedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		run.Duration = time.Duration(durationMs) * time.Millisecond
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// GetRunMatches returns the matches recorded for a scan run
func (hm *HistoryManager) GetRunMatches(runID int64) ([]scanner.Match, error) {
	query := `
		SELECT path, line, col, raw, r, g, b, kind
		FROM scan_matches
		WHERE run_id = ?
		ORDER BY id
	`

	rows, err := hm.db.conn.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []scanner.Match
	for rows.Next() {
		var m scanner.Match
		var r, g, b int
		var kind string

		err := rows.Scan(&m.Path, &m.Line, &m.Column, &m.Raw, &r, &g, &b, &kind)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}

		m.Color = color.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
		m.Kind = scanner.MatchKind(kind)
		matches = append(matches, m)
	}

	return matches, rows.Err()
}

// GetColorUsage returns the most frequently seen colors across all
// recorded scans, most common first
func (hm *HistoryManager) GetColorUsage(limit int) ([]ColorUsage, error) {
	query := `
		SELECT r, g, b, COUNT(*) as uses
		FROM scan_matches
		GROUP BY r, g, b
		ORDER BY uses DESC, r, g, b
		LIMIT ?
	`

	rows, err := hm.db.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query color usage: %w", err)
	}
	defer rows.Close()

	var usage []ColorUsage
	for rows.Next() {
		var r, g, b, count int

		if err := rows.Scan(&r, &g, &b, &count); err != nil {
			return nil, fmt.Errorf("failed to scan usage: %w", err)
		}

		usage = append(usage, ColorUsage{
			Color: color.RGB{R: uint8(r), G: uint8(g), B: uint8(b)},
			Count: count,
		})
	}

	return usage, rows.Err()
}

// DeleteRun removes a scan run and its matches
func (hm *HistoryManager) DeleteRun(runID int64) error {
	result, err := hm.db.conn.Exec("DELETE FROM scan_runs WHERE id = ?", runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("run not found: %d", runID)
	}

	return nil
}
