package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Justice-Caban/irodori/internal/color"
)

// MatchKind identifies the literal form a color was written in.
type MatchKind string

const (
	KindTriple MatchKind = "triple" // {255, 0, 0}
	KindHex    MatchKind = "hex"    // #ff0000 or #f00
	KindHex0x  MatchKind = "hex0x"  // 0xFF0000
)

// Match is a color literal found in a source file.
type Match struct {
	Path   string
	Line   int // 1-based
	Column int // 1-based, byte offset within the line
	Raw    string
	Color  color.RGB
	Kind   MatchKind
}

var (
	tripleRe = regexp.MustCompile(`\{\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*\}`)
	hexRe    = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)
	hex0xRe  = regexp.MustCompile(`\b0[xX][0-9a-fA-F]{6}\b`)
)

const (
	// Lines longer than this are skipped; color literals in real source
	// do not live on megabyte-long lines (minified bundles do).
	maxLineLength = 4096

	binarySniffLen = 512
)

// ScanLine finds all color literals in a single line of text.
// The line number is recorded on the returned matches.
func ScanLine(path string, lineNo int, line string) []Match {
	if len(line) > maxLineLength {
		return nil
	}

	var matches []Match

	for _, loc := range tripleRe.FindAllStringIndex(line, -1) {
		raw := line[loc[0]:loc[1]]
		c, err := color.ParseTriple(raw)
		if err != nil {
			// Three-element brace lists with out-of-range values are
			// not color literals
			continue
		}
		matches = append(matches, Match{
			Path: path, Line: lineNo, Column: loc[0] + 1,
			Raw: raw, Color: c, Kind: KindTriple,
		})
	}

	for _, loc := range hexRe.FindAllStringIndex(line, -1) {
		raw := line[loc[0]:loc[1]]
		c, err := color.ParseHex(raw)
		if err != nil {
			continue
		}
		matches = append(matches, Match{
			Path: path, Line: lineNo, Column: loc[0] + 1,
			Raw: raw, Color: c, Kind: KindHex,
		})
	}

	for _, loc := range hex0xRe.FindAllStringIndex(line, -1) {
		raw := line[loc[0]:loc[1]]
		c, err := color.ParseHex(raw)
		if err != nil {
			continue
		}
		matches = append(matches, Match{
			Path: path, Line: lineNo, Column: loc[0] + 1,
			Raw: raw, Color: c, Kind: KindHex0x,
		})
	}

	return matches
}

// ScanReader scans a text stream for color literals. path is used only
// for labeling matches. Binary content (NUL in the first 512 bytes)
// yields no matches.
func ScanReader(path string, r io.Reader) ([]Match, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(binarySniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if bytes.IndexByte(head, 0) >= 0 {
		return nil, nil
	}

	var matches []Match
	sc := bufio.NewScanner(br)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		matches = append(matches, ScanLine(path, lineNo, sc.Text())...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}

	return matches, nil
}

// ScanFile scans a single file on disk.
func ScanFile(path string) ([]Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return ScanReader(path, f)
}

// Scanner walks directories and archives looking for color literals.
type Scanner struct {
	extensions      map[string]bool
	maxFileSize     int64
	includeArchives bool
	scanDirs        []string

	// Warn receives non-fatal per-file errors during a walk. Defaults
	// to stderr.
	Warn io.Writer
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithExtensions restricts the walk to files with the given extensions
// (leading dot optional, case-insensitive). Empty means all text files.
func WithExtensions(exts []string) Option {
	return func(s *Scanner) {
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			s.extensions[ext] = true
		}
	}
}

// WithMaxFileSize skips files larger than n bytes. Zero means no limit.
func WithMaxFileSize(n int64) Option {
	return func(s *Scanner) { s.maxFileSize = n }
}

// WithArchives enables scanning inside .zip and .rar files.
func WithArchives(enabled bool) Option {
	return func(s *Scanner) { s.includeArchives = enabled }
}

// NewScanner creates a scanner with the given options.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{
		extensions: make(map[string]bool),
		Warn:       os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddScanDirectory adds a directory to scan.
func (s *Scanner) AddScanDirectory(dir string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	if _, err := os.Stat(absDir); os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist: %s", absDir)
	}

	s.scanDirs = append(s.scanDirs, absDir)
	return nil
}

// Scan walks all configured directories and returns every color literal
// found. Per-file failures are reported to Warn and do not abort the
// walk.
func (s *Scanner) Scan() ([]Match, int, error) {
	var matches []Match
	fileCount := 0

	for _, dir := range s.scanDirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				return nil
			}

			ext := strings.ToLower(filepath.Ext(path))

			if s.includeArchives && (ext == ".zip" || ext == ".rar") {
				archiveMatches, n, err := s.scanArchive(path, ext)
				if err != nil {
					fmt.Fprintf(s.Warn, "Failed to scan archive %s: %v\n", path, err)
					return nil
				}
				matches = append(matches, archiveMatches...)
				fileCount += n
				return nil
			}

			if !s.wantFile(path, info.Size()) {
				return nil
			}

			fileMatches, err := ScanFile(path)
			if err != nil {
				fmt.Fprintf(s.Warn, "Failed to scan %s: %v\n", path, err)
				return nil
			}

			matches = append(matches, fileMatches...)
			fileCount++
			return nil
		})

		if err != nil {
			return nil, fileCount, fmt.Errorf("failed to scan directory %s: %w", dir, err)
		}
	}

	return matches, fileCount, nil
}

// wantFile reports whether a file should be scanned given the extension
// filter and size limit.
func (s *Scanner) wantFile(path string, size int64) bool {
	if s.maxFileSize > 0 && size > s.maxFileSize {
		return false
	}
	if len(s.extensions) == 0 {
		return true
	}
	return s.extensions[strings.ToLower(filepath.Ext(path))]
}
