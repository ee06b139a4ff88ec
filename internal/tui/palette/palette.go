package palette

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Justice-Caban/irodori/internal/preview"
	"github.com/Justice-Caban/irodori/internal/storage"
	"github.com/Justice-Caban/irodori/internal/tui/theme"
)

// Model represents the palette view model
type Model struct {
	width  int
	height int

	// Data
	colors []*storage.SavedColor

	// UI state
	cursor      int
	offset      int
	status      string
	renaming    bool
	renameFrom  string
	renameInput string

	// Dependencies
	storage  *storage.Storage
	renderer preview.Renderer

	// Loading state
	loading bool
	err     error
}

// colorsLoadedMsg carries the saved palette after a refresh
type colorsLoadedMsg struct {
	colors []*storage.SavedColor
	status string
}

// paletteErrorMsg carries a load, delete or rename failure
type paletteErrorMsg struct {
	err error
}

// NewModel creates a new palette model
func NewModel(st *storage.Storage, r preview.Renderer) Model {
	return Model{
		colors:   make([]*storage.SavedColor, 0),
		storage:  st,
		renderer: r,
		loading:  st != nil,
	}
}

// Renaming reports whether a rename prompt is capturing input
func (m Model) Renaming() bool {
	return m.renaming
}

// Init initializes the palette model
func (m Model) Init() tea.Cmd {
	if m.storage == nil {
		return nil
	}
	return m.loadColors
}

// Update handles messages for the palette view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.renaming {
			return m.handleRenameKey(msg)
		}
		return m.handleKeyPress(msg)

	case colorsLoadedMsg:
		m.colors = msg.colors
		m.status = msg.status
		m.loading = false
		if m.cursor >= len(m.colors) && len(m.colors) > 0 {
			m.cursor = len(m.colors) - 1
		}
		return m, nil

	case paletteErrorMsg:
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
		if m.cursor < len(m.colors)-1 {
			m.cursor++
			m.adjustOffset()
		}

	case "g":
		m.cursor = 0
		m.offset = 0

	case "G":
		if len(m.colors) > 0 {
			m.cursor = len(m.colors) - 1
			m.adjustOffset()
		}

	case "r":
		// Refresh palette
		if m.storage != nil {
			m.loading = true
			return m, m.loadColors
		}

	case "n":
		// Rename the selected color
		return m.startRename()

	case "d":
		// Delete the selected color (builtins stay)
		return m.deleteSelected()
	}

	return m, nil
}

// startRename switches to rename input for the selected color
func (m Model) startRename() (Model, tea.Cmd) {
	if m.storage == nil || m.cursor >= len(m.colors) {
		return m, nil
	}

	selected := m.colors[m.cursor]
	if selected.IsBuiltin {
		m.status = fmt.Sprintf("%s is built in and cannot be renamed", selected.Name)
		return m, nil
	}

	m.renaming = true
	m.renameFrom = selected.Name
	m.renameInput = selected.Name
	m.status = ""
	return m, nil
}

// handleRenameKey edits the rename input
func (m Model) handleRenameKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.renaming = false
		m.renameInput = ""
		return m, nil

	case "enter":
		return m.commitRename()

	case "backspace":
		if len(m.renameInput) > 0 {
			m.renameInput = m.renameInput[:len(m.renameInput)-1]
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		m.renameInput += msg.String()
	}

	return m, nil
}

// commitRename applies the rename and reloads the palette
func (m Model) commitRename() (Model, tea.Cmd) {
	from := m.renameFrom
	to := strings.TrimSpace(m.renameInput)

	m.renaming = false
	m.renameInput = ""

	if to == "" || to == from {
		return m, nil
	}

	return m, func() tea.Msg {
		if err := m.storage.Palettes.RenameColor(from, to); err != nil {
			return paletteErrorMsg{err: err}
		}
		colors, err := m.storage.Palettes.ListColors()
		if err != nil {
			return paletteErrorMsg{err: err}
		}
		return colorsLoadedMsg{colors: colors, status: fmt.Sprintf("Renamed %s to %s", from, to)}
	}
}

// deleteSelected removes the color under the cursor
func (m Model) deleteSelected() (Model, tea.Cmd) {
	if m.storage == nil || m.cursor >= len(m.colors) {
		return m, nil
	}

	selected := m.colors[m.cursor]
	if selected.IsBuiltin {
		m.status = fmt.Sprintf("%s is built in and cannot be deleted", selected.Name)
		return m, nil
	}

	name := selected.Name
	return m, func() tea.Msg {
		if err := m.storage.Palettes.DeleteColor(name); err != nil {
			return paletteErrorMsg{err: err}
		}
		colors, err := m.storage.Palettes.ListColors()
		if err != nil {
			return paletteErrorMsg{err: err}
		}
		return colorsLoadedMsg{colors: colors, status: fmt.Sprintf("Deleted %s", name)}
	}
}

// loadColors loads the saved palette from storage
func (m Model) loadColors() tea.Msg {
	colors, err := m.storage.Palettes.ListColors()
	if err != nil {
		return paletteErrorMsg{err: err}
	}
	return colorsLoadedMsg{colors: colors}
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
	visible := m.height - 8
	if visible < 1 {
		visible = 1
	}
	return visible
}

// View renders the palette view
func (m Model) View() string {
	if m.storage == nil {
		return theme.MutedStyle.Render("Palette storage is unavailable")
	}

	if m.loading {
		return theme.MutedStyle.Render("Loading palette...")
	}

	if m.err != nil {
		return theme.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("Palette"))
	b.WriteString("\n")

	if len(m.colors) == 0 {
		b.WriteString(theme.MutedStyle.Render("No saved colors"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderColors())
	}

	if m.renaming {
		b.WriteString("\n")
		b.WriteString(theme.RenderKeyValue("Rename "+m.renameFrom+" to", m.renameInput+"_"))
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(theme.WarningStyle.Render(m.status))
	}

	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render("j/k: move • n: rename • d: delete • r: refresh"))

	return b.String()
}

// renderColors renders the visible slice of the palette list
func (m Model) renderColors() string {
	var b strings.Builder

	nameWidth := 0
	for _, c := range m.colors {
		if len(c.Name) > nameWidth {
			nameWidth = len(c.Name)
		}
	}

	visibleItems := m.visibleItems()

	for i, c := range m.colors {
		if i < m.offset || i >= m.offset+visibleItems {
			continue
		}

		marker := " "
		if c.IsBuiltin {
			marker = "•"
		}

		line := fmt.Sprintf("%s %-*s  %s  %-17s %s",
			theme.MutedStyle.Render(marker),
			nameWidth, c.Name,
			m.renderer.Swatch(c.Color),
			c.Color.Triple(),
			c.Color.Hex(),
		)

		if c.Note != "" {
			line += "  " + theme.MutedStyle.Render(c.Note)
		}

		if i == m.cursor {
			line = theme.HighlightStyle.Render(fmt.Sprintf("> %-*s", nameWidth, c.Name)) +
				fmt.Sprintf("  %s  %-17s %s",
					m.renderer.Swatch(c.Color),
					c.Color.Triple(),
					c.Color.Hex(),
				)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
