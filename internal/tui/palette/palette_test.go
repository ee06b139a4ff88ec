package palette

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justice-Caban/irodori/internal/color"
	"github.com/Justice-Caban/irodori/internal/preview"
	"github.com/Justice-Caban/irodori/internal/storage"
)

func newTestModel(t *testing.T) (Model, *storage.Storage) {
	st, err := storage.OpenStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	m := NewModel(st, preview.Default())

	// Run the initial load synchronously
	m, _ = m.Update(m.Init()())
	require.NotEmpty(t, m.colors)

	return m, st
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEscape}
	}
	if s == "backspace" {
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func cursorTo(m Model, name string) Model {
	for i, c := range m.colors {
		if c.Name == name {
			m.cursor = i
			return m
		}
	}
	return m
}

func TestPaletteModel_RenameBuiltinRefused(t *testing.T) {
	m, _ := newTestModel(t)

	m = cursorTo(m, "red")
	m, cmd := m.Update(keyMsg("n"))

	assert.Nil(t, cmd)
	assert.False(t, m.renaming)
	assert.Contains(t, m.status, "built in")
}

func TestPaletteModel_RenameSavedColor(t *testing.T) {
	m, st := newTestModel(t)

	require.NoError(t, st.Palettes.SaveColor("brand", color.RGB{R: 18, G: 52, B: 86}, ""))
	m, _ = m.Update(m.loadColors())
	m = cursorTo(m, "brand")

	// Enter rename mode, clear the old name, type the new one
	m, _ = m.Update(keyMsg("n"))
	require.True(t, m.renaming)
	assert.Equal(t, "brand", m.renameInput)

	for range "brand" {
		m, _ = m.Update(keyMsg("backspace"))
	}
	for _, r := range "accent" {
		m, _ = m.Update(keyMsg(string(r)))
	}

	m, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())

	assert.False(t, m.renaming)
	assert.Contains(t, m.status, "Renamed brand to accent")

	saved, err := st.Palettes.GetColor("accent")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, color.RGB{R: 18, G: 52, B: 86}, saved.Color)

	old, err := st.Palettes.GetColor("brand")
	require.NoError(t, err)
	assert.Nil(t, old)
}

func TestPaletteModel_RenameCancelled(t *testing.T) {
	m, st := newTestModel(t)

	require.NoError(t, st.Palettes.SaveColor("brand", color.RGB{R: 1}, ""))
	m, _ = m.Update(m.loadColors())
	m = cursorTo(m, "brand")

	m, _ = m.Update(keyMsg("n"))
	require.True(t, m.renaming)

	m, cmd := m.Update(keyMsg("esc"))
	assert.Nil(t, cmd)
	assert.False(t, m.renaming)

	saved, err := st.Palettes.GetColor("brand")
	require.NoError(t, err)
	assert.NotNil(t, saved)
}

func TestPaletteModel_DeleteBuiltinRefused(t *testing.T) {
	m, _ := newTestModel(t)

	m = cursorTo(m, "red")
	m, cmd := m.Update(keyMsg("d"))

	assert.Nil(t, cmd)
	assert.Contains(t, m.status, "built in")
}

func TestPaletteModel_ViewListsSwatchedColors(t *testing.T) {
	m, _ := newTestModel(t)
	m.height = 40

	out := m.View()
	assert.Contains(t, out, "red")
	assert.Contains(t, out, "{255, 0, 0}")
	assert.Contains(t, out, "#ff0000")
	assert.Contains(t, out, "n: rename")
}
