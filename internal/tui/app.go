package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Justice-Caban/irodori/internal/config"
	"github.com/Justice-Caban/irodori/internal/preview"
	"github.com/Justice-Caban/irodori/internal/storage"
	"github.com/Justice-Caban/irodori/internal/tui/palette"
	"github.com/Justice-Caban/irodori/internal/tui/results"
	"github.com/Justice-Caban/irodori/internal/tui/theme"
)

// ViewType represents the current active view
type ViewType string

const (
	ViewPalette ViewType = "palette"
	ViewResults ViewType = "results"
	ViewHelp    ViewType = "help"
)

// AppModel is the root model for the entire TUI application
type AppModel struct {
	currentView ViewType
	width       int
	height      int

	// Dependencies
	config  *config.Config
	storage *storage.Storage

	// View models
	paletteModel palette.Model
	resultsModel results.Model

	// Startup problems surfaced to the user
	notifications ErrorNotificationList
}

// NewAppModel creates a new application model
func NewAppModel() AppModel {
	m := AppModel{currentView: ViewPalette}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
		m.notifications.AddError(
			"Config Error",
			err.Error(),
			"Check "+config.GetConfigPath(),
			SeverityWarning,
		)
	}
	m.config = cfg

	theme.Apply(cfg.Preferences.Theme)

	// Initialize storage
	st, err := openStorage(cfg)
	if err != nil {
		m.notifications.AddError(
			"Storage Error",
			err.Error(),
			"Saved palettes and scan history will be unavailable",
			SeverityError,
		)
		st = nil
	}
	m.storage = st

	renderer := preview.NewRenderer(cfg.Preview.SwatchWidth, cfg.Preview.ColorMode)
	m.paletteModel = palette.NewModel(st, renderer)
	m.resultsModel = results.NewModel(st, renderer)

	return m
}

// openStorage opens the database at the configured path
func openStorage(cfg *config.Config) (*storage.Storage, error) {
	if cfg.Paths.Database != "" {
		return storage.OpenStorage(cfg.Paths.Database)
	}
	return storage.NewStorage()
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.paletteModel.Init(), m.resultsModel.Init())
}

// Update handles all messages and routes them appropriately
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Both views track the window size
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.paletteModel, cmd = m.paletteModel.Update(msg)
		cmds = append(cmds, cmd)
		m.resultsModel, cmd = m.resultsModel.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		// The palette view owns all keys while a rename is in flight
		if m.currentView == ViewPalette && m.paletteModel.Renaming() {
			var cmd tea.Cmd
			m.paletteModel, cmd = m.paletteModel.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "tab":
			m.currentView = m.nextView()
			return m, nil

		case "1":
			m.currentView = ViewPalette
			return m, nil

		case "2":
			m.currentView = ViewResults
			return m, nil

		case "3", "?":
			m.currentView = ViewHelp
			return m, nil

		case "esc":
			if m.notifications.HasErrors() {
				m.notifications.Clear()
				return m, nil
			}
			if m.currentView == ViewHelp {
				m.currentView = ViewPalette
				return m, nil
			}
		}
	}

	// Route remaining messages to the active view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewPalette:
		m.paletteModel, cmd = m.paletteModel.Update(msg)
	case ViewResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	}

	return m, cmd
}

// nextView cycles palette -> results -> help -> palette
func (m AppModel) nextView() ViewType {
	switch m.currentView {
	case ViewPalette:
		return ViewResults
	case ViewResults:
		return ViewHelp
	default:
		return ViewPalette
	}
}

// View renders the application
func (m AppModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.notifications.HasErrors() {
		b.WriteString(m.notifications.Render(m.width))
		b.WriteString("\n\n")
	}

	switch m.currentView {
	case ViewPalette:
		b.WriteString(m.paletteModel.View())
	case ViewResults:
		b.WriteString(m.resultsModel.View())
	case ViewHelp:
		b.WriteString(m.renderHelp())
	}

	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render("tab: switch view • ?: help • q: quit"))

	return b.String()
}

// renderTabs renders the tab bar
func (m AppModel) renderTabs() string {
	tabs := []string{
		theme.RenderTab("1 Palette", m.currentView == ViewPalette),
		theme.RenderTab("2 Scans", m.currentView == ViewResults),
		theme.RenderTab("3 Help", m.currentView == ViewHelp),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderHelp renders the keybinding reference
func (m AppModel) renderHelp() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("Help"))
	b.WriteString("\n")

	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Global", [][2]string{
			{"tab", "cycle views"},
			{"1 / 2 / 3", "palette, scans, help"},
			{"?", "open help"},
			{"q, ctrl+c", "quit"},
		}},
		{"Palette", [][2]string{
			{"j / k", "move selection"},
			{"g / G", "jump to top / bottom"},
			{"n", "rename selected color"},
			{"d", "delete selected color"},
			{"r", "reload palette"},
		}},
		{"Scans", [][2]string{
			{"j / k", "move selection"},
			{"[ / ]", "older / newer scan"},
			{"u", "toggle color usage summary"},
			{"r", "reload scan history"},
		}},
	}

	for _, s := range sections {
		b.WriteString(theme.ValueStyle.Render(s.title))
		b.WriteString("\n")
		for _, k := range s.keys {
			b.WriteString("  " + theme.RenderKeyValue(k[0], k[1]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
