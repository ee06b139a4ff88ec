package terminal

import (
	"fmt"
	"io"

	"github.com/Justice-Caban/irodori/internal/color"
)

// OSC codes for the default foreground and background colors.
// Most modern terminal emulators (xterm, kitty, alacritty, iTerm2)
// honor these; terminals that don't silently ignore them.
const (
	oscForeground = 10
	oscBackground = 11

	oscResetForeground = 110
	oscResetBackground = 111
)

// SetForeground changes the terminal's default foreground color.
func SetForeground(w io.Writer, c color.RGB) error {
	return writeOSC(w, fmt.Sprintf("%d;%s", oscForeground, c.Hex()))
}

// SetBackground changes the terminal's default background color.
func SetBackground(w io.Writer, c color.RGB) error {
	return writeOSC(w, fmt.Sprintf("%d;%s", oscBackground, c.Hex()))
}

// ResetForeground restores the terminal's configured foreground color.
func ResetForeground(w io.Writer) error {
	return writeOSC(w, fmt.Sprintf("%d", oscResetForeground))
}

// ResetBackground restores the terminal's configured background color.
func ResetBackground(w io.Writer) error {
	return writeOSC(w, fmt.Sprintf("%d", oscResetBackground))
}

func writeOSC(w io.Writer, body string) error {
	if _, err := fmt.Fprintf(w, "\x1b]%s\x07", body); err != nil {
		return fmt.Errorf("failed to write escape sequence: %w", err)
	}
	return nil
}
