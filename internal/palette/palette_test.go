package palette

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justice-Caban/irodori/internal/color"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  color.RGB
		found bool
	}{
		{name: "lowercase", input: "red", want: Red, found: true},
		{name: "uppercase", input: "RED", want: Red, found: true},
		{name: "mixed case", input: "Magenta", want: Magenta, found: true},
		{name: "padded", input: "  cyan  ", want: Cyan, found: true},
		{name: "two words", input: "Medium Gray", want: MediumGray, found: true},
		{name: "unknown", input: "chartreuse", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.input)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCorePalette(t *testing.T) {
	// The eight primary palette colors with their exact channel values
	want := map[string]color.RGB{
		"red":     {R: 255, G: 0, B: 0},
		"green":   {R: 0, G: 255, B: 0},
		"blue":    {R: 0, G: 0, B: 255},
		"white":   {R: 255, G: 255, B: 255},
		"yellow":  {R: 255, G: 255, B: 0},
		"magenta": {R: 255, G: 0, B: 255},
		"cyan":    {R: 0, G: 255, B: 255},
		"black":   {R: 0, G: 0, B: 0},
	}

	for name, wantColor := range want {
		got, ok := Lookup(name)
		require.True(t, ok, "missing core color %s", name)
		assert.Equal(t, wantColor, got, "wrong value for %s", name)
	}
}

func TestNames_SortedAndComplete(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names))

	for _, name := range names {
		_, ok := Lookup(name)
		assert.True(t, ok, "Names() returned unresolvable name %s", name)
	}
}

func TestBuiltin_MatchesNames(t *testing.T) {
	entries := Builtin()
	names := Names()
	require.Len(t, entries, len(names))

	for i, entry := range entries {
		assert.Equal(t, names[i], entry.Name)
	}
}

func TestNameOf(t *testing.T) {
	name, ok := NameOf(color.RGB{R: 255, G: 165, B: 0})
	require.True(t, ok)
	assert.Equal(t, "orange", name)

	// Prefers the shortest alias
	name, ok = NameOf(MediumGray)
	require.True(t, ok)
	assert.Equal(t, "gray", name)

	_, ok = NameOf(color.RGB{R: 1, G: 2, B: 3})
	assert.False(t, ok)
}
