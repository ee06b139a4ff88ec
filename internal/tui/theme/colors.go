package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Justice-Caban/irodori/internal/color"
	"github.com/Justice-Caban/irodori/internal/palette"
)

// The TUI accent scheme is drawn from the same palette the scanner
// recognizes, so the chrome previews the colors the tool is about.
// Apply picks bright corners for dark terminals and the darker names
// (purple, orange) for light ones, where yellow and magenta wash out.
var (
	ColorPrimary   lipgloss.Color // titles, active tab, selection
	ColorSecondary lipgloss.Color // informational accents
	ColorAccent    lipgloss.Color // values in key-value pairs
	ColorWarning   lipgloss.Color // warnings
	ColorError     lipgloss.Color // errors
	ColorMuted     lipgloss.Color // help text, markers
)

func init() {
	Apply("dark")
}

// Apply switches the accent scheme. Unknown names fall back to dark.
func Apply(name string) {
	switch name {
	case "light":
		ColorPrimary = lipgloss.Color(palette.Purple.Hex())
		ColorSecondary = lipgloss.Color(palette.Blue.Hex())
		ColorAccent = lipgloss.Color(palette.Blue.Hex())
		ColorWarning = lipgloss.Color(palette.Orange.Hex())
		ColorError = lipgloss.Color(palette.Red.Hex())
		ColorMuted = lipgloss.Color(palette.MediumGray.Hex())
	default:
		ColorPrimary = lipgloss.Color(palette.Magenta.Hex())
		ColorSecondary = lipgloss.Color(palette.Blue.Hex())
		ColorAccent = lipgloss.Color(palette.Cyan.Hex())
		ColorWarning = lipgloss.Color(palette.Yellow.Hex())
		ColorError = lipgloss.Color(palette.Red.Hex())
		ColorMuted = lipgloss.Color(palette.MediumGray.Hex())
	}

	rebuildStyles()
}

// highlightForeground returns a readable text color for selections
// drawn on top of ColorPrimary.
func highlightForeground() lipgloss.Color {
	c, ok := paletteColorOf(ColorPrimary)
	if !ok {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color(c.ContrastText().Hex())
}

// paletteColorOf maps an accent back to its palette value.
func paletteColorOf(accent lipgloss.Color) (color.RGB, bool) {
	for _, entry := range palette.Builtin() {
		if lipgloss.Color(entry.Color.Hex()) == accent {
			return entry.Color, true
		}
	}
	return color.RGB{}, false
}
