package config

import (
	"fmt"
	"strings"
)

// Validate validates the configuration
func Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}

	// Validate scan settings
	if err := validateScan(&config.Scan); err != nil {
		return fmt.Errorf("invalid scan config: %w", err)
	}

	// Validate preview settings
	if err := validatePreview(&config.Preview); err != nil {
		return fmt.Errorf("invalid preview config: %w", err)
	}

	// Validate preferences
	if err := validatePreferences(&config.Preferences); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}

	// Validate paths
	if err := validatePaths(&config.Paths); err != nil {
		return fmt.Errorf("invalid paths: %w", err)
	}

	return nil
}

// validateScan validates scanner configuration
func validateScan(scan *ScanConfig) error {
	if scan == nil {
		return fmt.Errorf("scan config is nil")
	}

	if scan.MaxFileSizeKB < 0 {
		return fmt.Errorf("max file size must be non-negative, got: %d", scan.MaxFileSizeKB)
	}

	for _, ext := range scan.Extensions {
		if strings.TrimSpace(ext) == "" {
			return fmt.Errorf("extensions cannot be blank")
		}
		if strings.ContainsAny(ext, "/\\") {
			return fmt.Errorf("invalid extension: %s", ext)
		}
	}

	for _, dir := range scan.Dirs {
		if !isValidPath(dir) {
			return fmt.Errorf("invalid scan directory: %s", dir)
		}
	}

	return nil
}

// validatePreview validates preview configuration
func validatePreview(preview *PreviewConfig) error {
	if preview == nil {
		return fmt.Errorf("preview config is nil")
	}

	if preview.SwatchWidth < 1 || preview.SwatchWidth > 40 {
		return fmt.Errorf("swatch width must be between 1 and 40, got: %d", preview.SwatchWidth)
	}

	// Validate color mode
	validModes := map[string]bool{
		"truecolor": true,
		"256":       true,
		"auto":      true,
	}

	if !validModes[preview.ColorMode] {
		return fmt.Errorf("invalid color mode: %s (must be 'truecolor', '256', or 'auto')", preview.ColorMode)
	}

	return nil
}

// validatePreferences validates preferences configuration
func validatePreferences(prefs *PreferencesConfig) error {
	if prefs == nil {
		return fmt.Errorf("preferences is nil")
	}

	// Validate theme
	validThemes := map[string]bool{
		"dark":  true,
		"light": true,
	}

	if !validThemes[prefs.Theme] {
		return fmt.Errorf("invalid theme: %s (must be 'dark' or 'light')", prefs.Theme)
	}

	return nil
}

// validatePaths validates path configuration
func validatePaths(paths *PathsConfig) error {
	if paths == nil {
		return fmt.Errorf("paths is nil")
	}

	// Paths can be empty (will be set to defaults)
	// Just ensure they are valid if set
	if paths.Database != "" {
		if !isValidPath(paths.Database) {
			return fmt.Errorf("invalid database path: %s", paths.Database)
		}
	}

	return nil
}

// isValidPath checks if a path string is valid
func isValidPath(path string) bool {
	// Basic validation - just check it's not empty and doesn't contain null bytes
	if strings.TrimSpace(path) == "" {
		return false
	}

	if strings.Contains(path, "\x00") {
		return false
	}

	return true
}
