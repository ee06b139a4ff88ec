package theme

import "github.com/charmbracelet/lipgloss"

// Shared styles used by the palette, results and help views. They are
// rebuilt whenever Apply switches the accent scheme.
var (
	// TitleStyle is used for view titles and headers
	TitleStyle lipgloss.Style

	// HelpStyle is used for help text and keyboard shortcuts
	HelpStyle lipgloss.Style

	// MutedStyle is used for less important text
	MutedStyle lipgloss.Style

	// ValueStyle is used for displaying values in key-value pairs
	ValueStyle lipgloss.Style

	// ErrorStyle is used for error messages
	ErrorStyle lipgloss.Style

	// WarningStyle is used for warnings
	WarningStyle lipgloss.Style

	// HighlightStyle is used for selected/highlighted items
	HighlightStyle lipgloss.Style

	// ActiveTabStyle is used for the active tab in tab navigation
	ActiveTabStyle lipgloss.Style

	// InactiveTabStyle is used for inactive tabs
	InactiveTabStyle lipgloss.Style
)

// rebuildStyles derives the style set from the current accent colors
func rebuildStyles() {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	MutedStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().
		Foreground(ColorAccent)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)

	HighlightStyle = lipgloss.NewStyle().
		Background(ColorPrimary).
		Foreground(highlightForeground()).
		Bold(true)

	ActiveTabStyle = lipgloss.NewStyle().
		Background(ColorPrimary).
		Foreground(highlightForeground()).
		Bold(true).
		Padding(0, 2)

	InactiveTabStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 2)
}

// Helper functions for common patterns

// RenderKeyValue renders a key-value pair with consistent styling
func RenderKeyValue(key, value string) string {
	return MutedStyle.Render(key+": ") + ValueStyle.Render(value)
}

// RenderTab renders a tab with appropriate styling based on active state
func RenderTab(label string, isActive bool) string {
	if isActive {
		return ActiveTabStyle.Render(label)
	}
	return InactiveTabStyle.Render(label)
}
