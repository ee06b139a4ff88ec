package results

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Justice-Caban/irodori/internal/palette"
	"github.com/Justice-Caban/irodori/internal/preview"
	"github.com/Justice-Caban/irodori/internal/scanner"
	"github.com/Justice-Caban/irodori/internal/storage"
	"github.com/Justice-Caban/irodori/internal/tui/theme"
)

const (
	maxRuns  = 50
	maxUsage = 20
)

// Model represents the scan results view model
type Model struct {
	width  int
	height int

	// Data
	runs     []*storage.ScanRun
	matches  []scanner.Match
	usage    []storage.ColorUsage
	runIndex int

	// UI state
	cursor       int
	offset       int
	showingUsage bool

	// Dependencies
	storage  *storage.Storage
	renderer preview.Renderer

	// Loading state
	loading bool
	err     error
}

// runsLoadedMsg carries recent scan runs
type runsLoadedMsg struct {
	runs []*storage.ScanRun
}

// matchesLoadedMsg carries the matches of the selected run
type matchesLoadedMsg struct {
	matches []scanner.Match
}

// usageLoadedMsg carries aggregated color counts across all scans
type usageLoadedMsg struct {
	usage []storage.ColorUsage
}

// resultsErrorMsg carries a load failure
type resultsErrorMsg struct {
	err error
}

// NewModel creates a new results model
func NewModel(st *storage.Storage, r preview.Renderer) Model {
	return Model{
		storage:  st,
		renderer: r,
		loading:  st != nil,
	}
}

// Init initializes the results model
func (m Model) Init() tea.Cmd {
	if m.storage == nil {
		return nil
	}
	return m.loadRuns
}

// Update handles messages for the results view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case runsLoadedMsg:
		m.runs = msg.runs
		m.runIndex = 0
		m.loading = false
		if len(m.runs) > 0 {
			return m, m.loadMatches(m.runs[0].ID)
		}
		m.matches = nil
		return m, nil

	case matchesLoadedMsg:
		m.matches = msg.matches
		m.cursor = 0
		m.offset = 0
		return m, nil

	case usageLoadedMsg:
		m.usage = msg.usage
		return m, nil

	case resultsErrorMsg:
		m.err = msg.err
		m.loading = false
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.adjustOffset()
		}

	case "down", "j":
		if m.cursor < len(m.matches)-1 {
			m.cursor++
			m.adjustOffset()
		}

	case "g":
		m.cursor = 0
		m.offset = 0

	case "G":
		if len(m.matches) > 0 {
			m.cursor = len(m.matches) - 1
			m.adjustOffset()
		}

	case "[":
		// Older run
		if m.runIndex < len(m.runs)-1 {
			m.runIndex++
			return m, m.loadMatches(m.runs[m.runIndex].ID)
		}

	case "]":
		// Newer run
		if m.runIndex > 0 {
			m.runIndex--
			return m, m.loadMatches(m.runs[m.runIndex].ID)
		}

	case "u":
		// Toggle the usage summary
		m.showingUsage = !m.showingUsage
		if m.showingUsage && m.storage != nil {
			return m, m.loadUsage
		}

	case "r":
		// Refresh runs
		if m.storage != nil {
			m.loading = true
			return m, m.loadRuns
		}
	}

	return m, nil
}

// loadRuns loads recent scan runs from storage
func (m Model) loadRuns() tea.Msg {
	runs, err := m.storage.History.GetRecentRuns(maxRuns)
	if err != nil {
		return resultsErrorMsg{err: err}
	}
	return runsLoadedMsg{runs: runs}
}

// loadMatches loads the matches for a run
func (m Model) loadMatches(runID int64) tea.Cmd {
	return func() tea.Msg {
		matches, err := m.storage.History.GetRunMatches(runID)
		if err != nil {
			return resultsErrorMsg{err: err}
		}
		return matchesLoadedMsg{matches: matches}
	}
}

// loadUsage loads the aggregated color counts
func (m Model) loadUsage() tea.Msg {
	usage, err := m.storage.History.GetColorUsage(maxUsage)
	if err != nil {
		return resultsErrorMsg{err: err}
	}
	return usageLoadedMsg{usage: usage}
}

// adjustOffset adjusts the scroll offset to keep cursor visible
func (m *Model) adjustOffset() {
	visibleItems := m.visibleItems()

	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+visibleItems {
		m.offset = m.cursor - visibleItems + 1
	}
}

func (m Model) visibleItems() int {
	visible := m.height - 9
	if visible < 1 {
		visible = 1
	}
	return visible
}

// View renders the results view
func (m Model) View() string {
	if m.storage == nil {
		return theme.MutedStyle.Render("Scan history storage is unavailable")
	}

	if m.loading {
		return theme.MutedStyle.Render("Loading scan history...")
	}

	if m.err != nil {
		return theme.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	var b strings.Builder

	if m.showingUsage {
		b.WriteString(theme.TitleStyle.Render("Color Usage"))
		b.WriteString("\n")
		b.WriteString(m.renderUsage())
		b.WriteString("\n")
		b.WriteString(theme.HelpStyle.Render("u: back to scans • r: refresh"))
		return b.String()
	}

	b.WriteString(theme.TitleStyle.Render("Scan Results"))
	b.WriteString("\n")

	if len(m.runs) == 0 {
		b.WriteString(theme.MutedStyle.Render("No recorded scans\n\nRun 'irodori scan <dir>' to record one"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderRunHeader())
		b.WriteString("\n\n")
		b.WriteString(m.renderMatches())
	}

	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render("j/k: move • [/]: older/newer scan • u: usage • r: refresh"))

	return b.String()
}

// renderRunHeader summarizes the selected run
func (m Model) renderRunHeader() string {
	run := m.runs[m.runIndex]

	summary := fmt.Sprintf("%d files, %d matches in %s",
		run.FileCount, run.MatchCount, run.Duration)

	position := fmt.Sprintf("scan %d of %d", m.runIndex+1, len(m.runs))

	return theme.RenderKeyValue(run.Root, summary) + "  " +
		theme.MutedStyle.Render(fmt.Sprintf("(%s, %s)", run.StartedAt.Format("2006-01-02 15:04"), position))
}

// renderMatches renders the visible slice of match lines
func (m Model) renderMatches() string {
	if len(m.matches) == 0 {
		return theme.MutedStyle.Render("No color literals found in this scan")
	}

	var b strings.Builder
	visibleItems := m.visibleItems()

	for i, match := range m.matches {
		if i < m.offset || i >= m.offset+visibleItems {
			continue
		}

		line := m.renderer.Match(match)
		if i == m.cursor {
			line = theme.HighlightStyle.Render(">") + " " + line
		} else {
			line = "  " + line
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// renderUsage renders the aggregated color counts, most common first
func (m Model) renderUsage() string {
	if len(m.usage) == 0 {
		return theme.MutedStyle.Render("No color literals recorded yet")
	}

	var b strings.Builder
	for _, u := range m.usage {
		line := fmt.Sprintf("%s  %-17s %s  %s",
			m.renderer.Swatch(u.Color),
			u.Color.Triple(),
			u.Color.Hex(),
			theme.ValueStyle.Render(fmt.Sprintf("×%d", u.Count)),
		)

		if name, ok := palette.NameOf(u.Color); ok {
			line += "  " + theme.MutedStyle.Render(name)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
