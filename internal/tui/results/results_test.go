package results

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justice-Caban/irodori/internal/color"
	"github.com/Justice-Caban/irodori/internal/preview"
	"github.com/Justice-Caban/irodori/internal/scanner"
	"github.com/Justice-Caban/irodori/internal/storage"
)

func newTestModel(t *testing.T) (Model, *storage.Storage) {
	st, err := storage.OpenStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	return NewModel(st, preview.Default()), st
}

func recordTestRun(t *testing.T, st *storage.Storage) {
	matches := []scanner.Match{
		{Path: "a.cpp", Line: 7, Column: 19, Raw: "{255, 0, 0}", Color: color.RGB{R: 255}, Kind: scanner.KindTriple},
		{Path: "a.cpp", Line: 8, Column: 19, Raw: "{255, 0, 0}", Color: color.RGB{R: 255}, Kind: scanner.KindTriple},
		{Path: "b.cpp", Line: 3, Column: 5, Raw: "#0000ff", Color: color.RGB{B: 255}, Kind: scanner.KindHex},
	}

	_, err := st.History.RecordRun("src", 2, 10*time.Millisecond, matches)
	require.NoError(t, err)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestResultsModel_RendersRecordedMatches(t *testing.T) {
	m, st := newTestModel(t)
	recordTestRun(t, st)
	m.height = 40

	m, cmd := m.Update(m.Init()())
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())

	out := m.View()
	assert.Contains(t, out, "src")
	assert.Contains(t, out, "2 files, 3 matches")
	assert.Contains(t, out, "a.cpp:7:19")
	assert.Contains(t, out, "{255, 0, 0}")
	assert.Contains(t, out, "#ff0000")
}

func TestResultsModel_UsageToggle(t *testing.T) {
	m, st := newTestModel(t)
	recordTestRun(t, st)
	m.height = 40
	m.loading = false

	m, cmd := m.Update(keyMsg("u"))
	require.True(t, m.showingUsage)
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())

	out := m.View()
	assert.Contains(t, out, "Color Usage")
	assert.Contains(t, out, "{255, 0, 0}")
	assert.Contains(t, out, "×2")
	assert.Contains(t, out, "red")
	assert.Contains(t, out, "{0, 0, 255}")
	assert.Contains(t, out, "×1")

	// Toggles back to the scan list
	m, _ = m.Update(keyMsg("u"))
	assert.False(t, m.showingUsage)
	assert.Contains(t, m.View(), "Scan Results")
}
