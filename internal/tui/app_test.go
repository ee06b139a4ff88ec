package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAppModel_HelpView(t *testing.T) {
	m := AppModel{currentView: ViewPalette}

	updated, _ := m.Update(keyMsg("?"))
	app, ok := updated.(AppModel)
	require.True(t, ok)
	assert.Equal(t, ViewHelp, app.currentView)

	out := app.View()
	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "rename selected color")
	assert.Contains(t, out, "toggle color usage summary")
}

func TestAppModel_TabCyclesThreeViews(t *testing.T) {
	m := AppModel{currentView: ViewPalette}

	views := []ViewType{ViewResults, ViewHelp, ViewPalette}
	for _, want := range views {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		var ok bool
		m, ok = updated.(AppModel)
		require.True(t, ok)
		assert.Equal(t, want, m.currentView)
	}
}
