package config

// Config represents the application configuration
type Config struct {
	Scan        ScanConfig        `mapstructure:"scan" yaml:"scan"`
	Preview     PreviewConfig     `mapstructure:"preview" yaml:"preview"`
	Preferences PreferencesConfig `mapstructure:"preferences" yaml:"preferences"`
	Paths       PathsConfig       `mapstructure:"paths" yaml:"paths"`
}

// ScanConfig controls which files the scanner visits
type ScanConfig struct {
	Dirs            []string `mapstructure:"dirs" yaml:"dirs"`                           // Directories scanned when none are given on the command line
	Extensions      []string `mapstructure:"extensions" yaml:"extensions"`               // File extensions to scan; empty means everything
	MaxFileSizeKB   int      `mapstructure:"max_file_size_kb" yaml:"max_file_size_kb"`   // Skip files larger than this
	IncludeArchives bool     `mapstructure:"include_archives" yaml:"include_archives"`   // Look inside .zip and .rar bundles
	RecordHistory   bool     `mapstructure:"record_history" yaml:"record_history"`       // Persist scan runs to the database
}

// PreviewConfig controls how matches are rendered
type PreviewConfig struct {
	SwatchWidth int    `mapstructure:"swatch_width" yaml:"swatch_width"`
	ColorMode   string `mapstructure:"color_mode" yaml:"color_mode"` // "truecolor", "256", "auto"
}

// PreferencesConfig represents user preferences
type PreferencesConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"` // "dark", "light"
}

// PathsConfig represents path configurations
type PathsConfig struct {
	Database string `mapstructure:"database" yaml:"database"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Dirs: []string{},
			Extensions: []string{
				".c", ".cc", ".cpp", ".h", ".hpp",
				".go", ".rs", ".js", ".ts", ".py",
				".css", ".scss", ".html", ".svg",
			},
			MaxFileSizeKB:   1024, // Skip anything over 1MB
			IncludeArchives: false,
			RecordHistory:   true,
		},
		Preview: PreviewConfig{
			SwatchWidth: 6,
			ColorMode:   "auto",
		},
		Preferences: PreferencesConfig{
			Theme: "dark",
		},
		Paths: PathsConfig{
			Database: "", // Will be set to default location
		},
	}
}
