package scanner

import (
	"archive/zip"
	"fmt"
	"io"
	"os"

	"github.com/nwaples/rardecode/v2"
)

// scanArchive scans the text files inside a .zip or .rar bundle.
// Matches are labeled "archive.zip!inner/file.c". Returns the number of
// entries scanned.
func (s *Scanner) scanArchive(path, ext string) ([]Match, int, error) {
	switch ext {
	case ".zip":
		return s.scanZip(path)
	case ".rar":
		return s.scanRAR(path)
	default:
		return nil, 0, fmt.Errorf("unsupported archive type: %s", ext)
	}
}

func (s *Scanner) scanZip(path string) ([]Match, int, error) {
	zipReader, err := zip.OpenReader(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open ZIP: %w", err)
	}
	defer zipReader.Close()

	var matches []Match
	count := 0

	for _, file := range zipReader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		if !s.wantFile(file.Name, int64(file.UncompressedSize64)) {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			fmt.Fprintf(s.Warn, "Failed to open ZIP entry %s: %v\n", file.Name, err)
			continue
		}

		label := fmt.Sprintf("%s!%s", path, file.Name)
		entryMatches, err := ScanReader(label, rc)
		rc.Close()
		if err != nil {
			fmt.Fprintf(s.Warn, "Failed to scan ZIP entry %s: %v\n", file.Name, err)
			continue
		}

		matches = append(matches, entryMatches...)
		count++
	}

	return matches, count, nil
}

func (s *Scanner) scanRAR(path string) ([]Match, int, error) {
	rarFile, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open RAR: %w", err)
	}
	defer rarFile.Close()

	rarReader, err := rardecode.NewReader(rarFile)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create RAR reader: %w", err)
	}

	var matches []Match
	count := 0

	for {
		header, err := rarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return matches, count, fmt.Errorf("failed to read RAR entry: %w", err)
		}

		if header.IsDir || !s.wantFile(header.Name, header.UnPackedSize) {
			continue
		}

		label := fmt.Sprintf("%s!%s", path, header.Name)
		entryMatches, err := ScanReader(label, rarReader)
		if err != nil {
			fmt.Fprintf(s.Warn, "Failed to scan RAR entry %s: %v\n", header.Name, err)
			continue
		}

		matches = append(matches, entryMatches...)
		count++
	}

	return matches, count, nil
}
