package preview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Justice-Caban/irodori/internal/color"
	"github.com/Justice-Caban/irodori/internal/palette"
	"github.com/Justice-Caban/irodori/internal/scanner"
	"github.com/Justice-Caban/irodori/internal/terminal"
)

// DefaultSwatchWidth is the width of a rendered swatch block in cells.
const DefaultSwatchWidth = 6

var locationStyle = lipgloss.NewStyle().Faint(true)

// Renderer renders swatches and match lines according to the preview
// configuration: swatch width and color mode ("truecolor", "256",
// "auto").
type Renderer struct {
	swatchWidth int
	colorMode   string
}

// NewRenderer creates a renderer. Out-of-range widths fall back to
// DefaultSwatchWidth and unknown color modes to "auto".
func NewRenderer(swatchWidth int, colorMode string) Renderer {
	if swatchWidth < 1 || swatchWidth > 40 {
		swatchWidth = DefaultSwatchWidth
	}

	switch colorMode {
	case "truecolor", "256":
	default:
		colorMode = "auto"
	}

	return Renderer{swatchWidth: swatchWidth, colorMode: colorMode}
}

// Default returns a renderer with the default width and color mode.
func Default() Renderer {
	return NewRenderer(DefaultSwatchWidth, "auto")
}

// swatchColor translates a color to the configured terminal color
// space. In "256" mode swatches are quantized to the xterm palette;
// otherwise the hex form is used and lipgloss downsamples as needed.
func (r Renderer) swatchColor(c color.RGB) lipgloss.Color {
	if r.colorMode == "256" {
		return lipgloss.Color(strconv.Itoa(c.ANSI256()))
	}
	return lipgloss.Color(c.Hex())
}

// Swatch renders a colored block for the given color.
func (r Renderer) Swatch(c color.RGB) string {
	return lipgloss.NewStyle().
		Background(r.swatchColor(c)).
		Render(strings.Repeat(" ", r.swatchWidth))
}

// LabeledSwatch renders the color's hex code on top of the color
// itself, with a readable foreground.
func (r Renderer) LabeledSwatch(c color.RGB) string {
	return lipgloss.NewStyle().
		Background(r.swatchColor(c)).
		Foreground(lipgloss.Color(c.ContrastText().Hex())).
		Padding(0, 1).
		Render(c.Hex())
}

// Match renders one scanner match as an annotated line:
// location, swatch, the literal as written, and its hex form.
func (r Renderer) Match(m scanner.Match) string {
	location := fmt.Sprintf("%s:%d:%d", m.Path, m.Line, m.Column)

	line := fmt.Sprintf("%s  %s  %s (%s)",
		locationStyle.Render(location),
		r.Swatch(m.Color),
		m.Raw,
		m.Color.Hex(),
	)

	if name, ok := palette.NameOf(m.Color); ok {
		line += fmt.Sprintf(" %s", name)
	}

	return line
}

// Matches renders a list of scanner matches, one per line.
func (r Renderer) Matches(w io.Writer, matches []scanner.Match) error {
	for _, m := range matches {
		if _, err := fmt.Fprintln(w, r.Match(m)); err != nil {
			return fmt.Errorf("failed to write match: %w", err)
		}
	}
	return nil
}

// PaletteTable renders named colors as aligned rows of name, swatch,
// triple and hex forms.
func (r Renderer) PaletteTable(entries []palette.Entry) string {
	nameWidth := 0
	for _, entry := range entries {
		if len(entry.Name) > nameWidth {
			nameWidth = len(entry.Name)
		}
	}

	var b strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&b, "%-*s  %s  %-17s %s\n",
			nameWidth, entry.Name,
			r.Swatch(entry.Color),
			entry.Color.Triple(),
			entry.Color.Hex(),
		)
	}
	return b.String()
}

// Demo prints the classic preview lines and applies medium gray to the
// terminal background.
func (r Renderer) Demo(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Colors: "); err != nil {
		return fmt.Errorf("failed to write demo header: %w", err)
	}

	demo := []struct {
		label string
		color color.RGB
	}{
		{"Orange", palette.Orange},
		{"Purple", palette.Purple},
		{"Pink", palette.Pink},
	}

	for _, d := range demo {
		_, err := fmt.Fprintf(w, "%s: %s %s\n", d.label, d.color.Triple(), r.Swatch(d.color))
		if err != nil {
			return fmt.Errorf("failed to write demo line: %w", err)
		}
	}

	return terminal.SetBackground(w, palette.MediumGray)
}
