package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Justice-Caban/irodori/internal/color"
	"github.com/Justice-Caban/irodori/internal/config"
	"github.com/Justice-Caban/irodori/internal/palette"
	"github.com/Justice-Caban/irodori/internal/preview"
	"github.com/Justice-Caban/irodori/internal/scanner"
	"github.com/Justice-Caban/irodori/internal/storage"
	"github.com/Justice-Caban/irodori/internal/terminal"
	"github.com/Justice-Caban/irodori/internal/tui"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "scan":
			runScanMode(os.Args[2:])
			return
		case "palette":
			runPaletteMode()
			return
		case "apply":
			runApplyMode(os.Args[2:])
			return
		case "demo":
			runDemoMode()
			return
		case "help", "-h", "--help":
			printUsage()
			return
		}
	}

	// Normal TUI mode
	runTUIMode()
}

// runTUIMode runs the main TUI application with alt-screen
func runTUIMode() {
	m := tui.NewAppModel()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running irodori: %v\n", err)
		os.Exit(1)
	}
}

// runScanMode scans directories for color literals and prints matches
func runScanMode(args []string) {
	scanFlags := flag.NewFlagSet("scan", flag.ExitOnError)
	archives := scanFlags.Bool("archives", false, "Scan inside .zip and .rar bundles")
	noHistory := scanFlags.Bool("no-history", false, "Do not record the scan in the database")

	if err := scanFlags.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing scan flags: %v\n", err)
		os.Exit(1)
	}

	cfg := loadConfig()

	dirs := scanFlags.Args()
	if len(dirs) == 0 {
		dirs = cfg.Scan.Dirs
	}
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	s := scanner.NewScanner(
		scanner.WithExtensions(cfg.Scan.Extensions),
		scanner.WithMaxFileSize(int64(cfg.Scan.MaxFileSizeKB)*1024),
		scanner.WithArchives(*archives || cfg.Scan.IncludeArchives),
	)

	for _, dir := range dirs {
		if err := s.AddScanDirectory(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	start := time.Now()
	matches, fileCount, err := s.Scan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	r := preview.NewRenderer(cfg.Preview.SwatchWidth, cfg.Preview.ColorMode)
	if err := r.Matches(os.Stdout, matches); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n%d color literals in %d files (%s)\n", len(matches), fileCount, elapsed.Round(time.Millisecond))

	if cfg.Scan.RecordHistory && !*noHistory {
		recordScan(cfg, scanRoot(dirs), fileCount, elapsed, matches)
	}
}

// scanRoot labels a run with every scanned directory
func scanRoot(dirs []string) string {
	return strings.Join(dirs, ", ")
}

// recordScan persists a scan run; failures are warnings, not fatal
func recordScan(cfg *config.Config, root string, fileCount int, elapsed time.Duration, matches []scanner.Match) {
	st, err := openStorage(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return
	}
	defer st.Close()

	if _, err := st.History.RecordRun(root, fileCount, elapsed, matches); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record scan: %v\n", err)
	}
}

// runPaletteMode prints the saved palette
func runPaletteMode() {
	cfg := loadConfig()

	r := preview.NewRenderer(cfg.Preview.SwatchWidth, cfg.Preview.ColorMode)

	st, err := openStorage(cfg)
	if err != nil {
		// No database; fall back to the built-in palette
		fmt.Print(r.PaletteTable(palette.Builtin()))
		return
	}
	defer st.Close()

	colors, err := st.Palettes.ListColors()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing palette: %v\n", err)
		os.Exit(1)
	}

	entries := make([]palette.Entry, 0, len(colors))
	for _, c := range colors {
		entries = append(entries, palette.Entry{Name: c.Name, Color: c.Color})
	}

	fmt.Print(r.PaletteTable(entries))
}

// runApplyMode sets the terminal's default colors
func runApplyMode(args []string) {
	applyFlags := flag.NewFlagSet("apply", flag.ExitOnError)
	bg := applyFlags.String("bg", "", "Background color (name, hex, or {r, g, b})")
	fg := applyFlags.String("fg", "", "Foreground color (name, hex, or {r, g, b})")
	reset := applyFlags.Bool("reset", false, "Restore the terminal's configured colors")

	if err := applyFlags.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing apply flags: %v\n", err)
		os.Exit(1)
	}

	if *reset {
		if err := terminal.ResetForeground(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := terminal.ResetBackground(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *bg == "" && *fg == "" {
		fmt.Fprintln(os.Stderr, "apply needs -bg, -fg, or -reset")
		os.Exit(1)
	}

	if *bg != "" {
		applyColor(*bg, terminal.SetBackground)
	}
	if *fg != "" {
		applyColor(*fg, terminal.SetForeground)
	}
}

// applyColor parses a color spec and writes the escape sequence
func applyColor(spec string, set func(w io.Writer, c color.RGB) error) {
	c, err := color.Parse(spec, palette.Lookup)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := set(os.Stdout, c); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runDemoMode prints the preview demo and sets a gray background
func runDemoMode() {
	cfg := loadConfig()

	r := preview.NewRenderer(cfg.Preview.SwatchWidth, cfg.Preview.ColorMode)
	if err := r.Demo(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the config, falling back to defaults
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: using default config: %v\n", err)
		cfg = config.DefaultConfig()
	}
	return cfg
}

// openStorage opens the database at the configured path
func openStorage(cfg *config.Config) (*storage.Storage, error) {
	if cfg.Paths.Database != "" {
		return storage.OpenStorage(cfg.Paths.Database)
	}
	return storage.NewStorage()
}

func printUsage() {
	fmt.Println(`irodori - find and preview RGB color literals in source code

Usage:
  irodori              Open the interactive TUI
  irodori scan [dirs]  Scan directories for color literals
      -archives        Also scan inside .zip and .rar bundles
      -no-history      Do not record the scan in the database
  irodori palette      Print the saved palette
  irodori apply        Set the terminal's default colors
      -bg <color>      Background (name, hex, or "{r, g, b}")
      -fg <color>      Foreground (name, hex, or "{r, g, b}")
      -reset           Restore the terminal's configured colors
  irodori demo         Print sample color previews and set a gray background`)
}
