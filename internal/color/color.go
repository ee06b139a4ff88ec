package color

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB represents a 24-bit color as three channel intensities.
// Channel range 0-255 is enforced by the uint8 type.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// New creates an RGB color from three channel values.
func New(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// Hex returns the color as a lowercase hex string, e.g. "#ff8800".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Triple returns the color as a brace triple, e.g. "{255, 165, 0}".
func (c RGB) Triple() string {
	return fmt.Sprintf("{%d, %d, %d}", c.R, c.G, c.B)
}

// String returns the hex form.
func (c RGB) String() string {
	return c.Hex()
}

// Luminance returns the relative luminance of the color in [0, 1]
// using the Rec. 601 weighting.
func (c RGB) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255.0
}

// ContrastText returns black or white, whichever reads better on top
// of this color as a background.
func (c RGB) ContrastText() RGB {
	if c.Luminance() > 0.5 {
		return RGB{0, 0, 0}
	}
	return RGB{255, 255, 255}
}

// ANSI256 returns the nearest xterm-256 palette index for terminals
// without truecolor support.
func (c RGB) ANSI256() int {
	// Grayscale ramp (232-255) when channels are close together
	r, g, b := int(c.R), int(c.G), int(c.B)
	if max(r, g, b)-min(r, g, b) < 10 {
		gray := (r + g + b) / 3
		if gray < 8 {
			return 16 // black corner of the color cube
		}
		if gray > 248 {
			return 231 // white corner
		}
		return 232 + (gray-8)/10
	}

	// 6x6x6 color cube (16-231)
	return 16 + 36*cubeIndex(r) + 6*cubeIndex(g) + cubeIndex(b)
}

// cubeIndex maps a channel value onto the 6-step xterm color cube.
func cubeIndex(v int) int {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return (v - 35) / 40
}

// ParseTriple parses a brace triple such as "{255, 0, 0}" or "{ 255,255,0 }".
// Spacing inside the braces is arbitrary. Exactly three channels are
// required and each must be in 0-255.
func ParseTriple(s string) (RGB, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return RGB{}, fmt.Errorf("not a brace triple: %q", s)
	}

	inner := trimmed[1 : len(trimmed)-1]
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("expected 3 channels, got %d: %q", len(parts), s)
	}

	var channels [3]uint8
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return RGB{}, fmt.Errorf("invalid channel %q: %w", part, err)
		}
		if v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("channel %d out of range: %d", i, v)
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// ParseHex parses a hex color: "#rgb", "#rrggbb", "rrggbb" or "0xRRGGBB".
func ParseHex(s string) (RGB, error) {
	trimmed := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(trimmed, "#"):
		trimmed = trimmed[1:]
	case strings.HasPrefix(trimmed, "0x"), strings.HasPrefix(trimmed, "0X"):
		trimmed = trimmed[2:]
	}

	switch len(trimmed) {
	case 3:
		// Short form: each digit doubles (#f80 -> #ff8800)
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = trimmed[i]
			expanded[2*i+1] = trimmed[i]
		}
		trimmed = string(expanded)
	case 6:
		// Full form
	default:
		return RGB{}, fmt.Errorf("invalid hex color length: %q", s)
	}

	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// Parse parses any supported color form: a brace triple, a hex color,
// or (via the lookup function) a palette name. lookup may be nil to
// disable name resolution.
func Parse(s string, lookup func(string) (RGB, bool)) (RGB, error) {
	trimmed := strings.TrimSpace(s)

	if strings.HasPrefix(trimmed, "{") {
		return ParseTriple(trimmed)
	}

	if c, err := ParseHex(trimmed); err == nil {
		return c, nil
	}

	if lookup != nil {
		if c, ok := lookup(trimmed); ok {
			return c, nil
		}
	}

	return RGB{}, fmt.Errorf("unrecognized color: %q", s)
}
