package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justice-Caban/irodori/internal/color"
	"github.com/Justice-Caban/irodori/internal/scanner"
)

func testMatches() []scanner.Match {
	return []scanner.Match{
		{Path: "main.c", Line: 3, Column: 19, Raw: "{255, 0, 0}", Color: color.RGB{R: 255}, Kind: scanner.KindTriple},
		{Path: "main.c", Line: 4, Column: 21, Raw: "{0, 255, 0}", Color: color.RGB{G: 255}, Kind: scanner.KindTriple},
		{Path: "style.css", Line: 1, Column: 12, Raw: "#ff0000", Color: color.RGB{R: 255}, Kind: scanner.KindHex},
	}
}

func TestHistoryManager_RecordAndFetchRun(t *testing.T) {
	db := NewTestDB(t)
	hm := NewHistoryManager(db)

	runID, err := hm.RecordRun("/src/project", 2, 150*time.Millisecond, testMatches())
	require.NoError(t, err)
	require.Positive(t, runID)

	runs, err := hm.GetRecentRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, runID, run.ID)
	assert.Equal(t, "/src/project", run.Root)
	assert.Equal(t, 2, run.FileCount)
	assert.Equal(t, 3, run.MatchCount)
	assert.Equal(t, 150*time.Millisecond, run.Duration)
	assert.False(t, run.StartedAt.IsZero())
}

func TestHistoryManager_GetRunMatches(t *testing.T) {
	db := NewTestDB(t)
	hm := NewHistoryManager(db)

	want := testMatches()
	runID, err := hm.RecordRun("/src/project", 2, time.Millisecond, want)
	require.NoError(t, err)

	got, err := hm.GetRunMatches(runID)
	require.NoError(t, err)
	require.Len(t, got, len(want))

	for i := range want {
		assert.Equal(t, want[i].Path, got[i].Path)
		assert.Equal(t, want[i].Line, got[i].Line)
		assert.Equal(t, want[i].Column, got[i].Column)
		assert.Equal(t, want[i].Raw, got[i].Raw)
		assert.Equal(t, want[i].Color, got[i].Color)
		assert.Equal(t, want[i].Kind, got[i].Kind)
	}
}

func TestHistoryManager_GetRecentRuns_Order(t *testing.T) {
	db := NewTestDB(t)
	hm := NewHistoryManager(db)

	first, err := hm.RecordRun("/a", 1, 0, nil)
	require.NoError(t, err)
	second, err := hm.RecordRun("/b", 1, 0, nil)
	require.NoError(t, err)

	runs, err := hm.GetRecentRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first; timestamps may collide so the id breaks ties
	assert.Equal(t, second, runs[0].ID)
	assert.Equal(t, first, runs[1].ID)

	limited, err := hm.GetRecentRuns(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, second, limited[0].ID)
}

func TestHistoryManager_GetColorUsage(t *testing.T) {
	db := NewTestDB(t)
	hm := NewHistoryManager(db)

	_, err := hm.RecordRun("/src", 2, 0, testMatches())
	require.NoError(t, err)

	usage, err := hm.GetColorUsage(10)
	require.NoError(t, err)
	require.Len(t, usage, 2)

	// Red appears twice (triple and hex form), green once
	assert.Equal(t, color.RGB{R: 255}, usage[0].Color)
	assert.Equal(t, 2, usage[0].Count)
	assert.Equal(t, color.RGB{G: 255}, usage[1].Color)
	assert.Equal(t, 1, usage[1].Count)
}

func TestHistoryManager_DeleteRun_Cascades(t *testing.T) {
	db := NewTestDB(t)
	hm := NewHistoryManager(db)

	runID, err := hm.RecordRun("/src", 1, 0, testMatches())
	require.NoError(t, err)

	require.NoError(t, hm.DeleteRun(runID))

	runs, err := hm.GetRecentRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)

	matches, err := hm.GetRunMatches(runID)
	require.NoError(t, err)
	assert.Empty(t, matches)

	assert.Error(t, hm.DeleteRun(runID))
}

func TestStorage_SeedsBuiltinPalette(t *testing.T) {
	s := NewTestStorage(t)

	colors, err := s.Palettes.ListColors()
	require.NoError(t, err)
	assert.NotEmpty(t, colors)

	gray, err := s.Palettes.GetColor("gray")
	require.NoError(t, err)
	require.NotNil(t, gray)
	assert.Equal(t, color.RGB{R: 128, G: 128, B: 128}, gray.Color)
}
