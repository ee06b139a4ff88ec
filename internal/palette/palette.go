package palette

import (
	"sort"
	"strings"

	"github.com/Justice-Caban/irodori/internal/color"
)

// Entry is a named color in a palette.
type Entry struct {
	Name  string
	Color color.RGB
}

// The core palette: the eight primary RGB corners every terminal knows.
var (
	Red     = color.RGB{R: 255, G: 0, B: 0}
	Green   = color.RGB{R: 0, G: 255, B: 0}
	Blue    = color.RGB{R: 0, G: 0, B: 255}
	White   = color.RGB{R: 255, G: 255, B: 255}
	Yellow  = color.RGB{R: 255, G: 255, B: 0}
	Magenta = color.RGB{R: 255, G: 0, B: 255}
	Cyan    = color.RGB{R: 0, G: 255, B: 255}
	Black   = color.RGB{R: 0, G: 0, B: 0}
)

// Extended names used by the preview demo and name resolution.
var (
	Orange     = color.RGB{R: 255, G: 165, B: 0}
	Purple     = color.RGB{R: 128, G: 0, B: 128}
	Pink       = color.RGB{R: 255, G: 192, B: 203}
	MediumGray = color.RGB{R: 128, G: 128, B: 128}
)

var builtin = map[string]color.RGB{
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"white":   White,
	"yellow":  Yellow,
	"magenta": Magenta,
	"cyan":    Cyan,
	"black":   Black,

	"orange":      Orange,
	"purple":      Purple,
	"pink":        Pink,
	"gray":        MediumGray,
	"medium gray": MediumGray,
}

// Lookup resolves a color name case-insensitively against the built-in
// palette.
func Lookup(name string) (color.RGB, bool) {
	c, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Names returns all built-in color names in a stable sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns the built-in palette as sorted entries.
func Builtin() []Entry {
	names := Names()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name, Color: builtin[name]})
	}
	return entries
}

// NameOf returns the built-in name for a color, if it has one. When a
// color has several names the shortest wins.
func NameOf(c color.RGB) (string, bool) {
	best := ""
	for name, v := range builtin {
		if v != c {
			continue
		}
		if best == "" || len(name) < len(best) {
			best = name
		}
	}
	return best, best != ""
}
