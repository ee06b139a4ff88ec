package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justice-Caban/irodori/internal/color"
)

func TestSetBackground(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, SetBackground(&buf, color.RGB{R: 128, G: 128, B: 128}))
	assert.Equal(t, "\x1b]11;#808080\x07", buf.String())
}

func TestSetForeground(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, SetForeground(&buf, color.RGB{R: 255, G: 165, B: 0}))
	assert.Equal(t, "\x1b]10;#ffa500\x07", buf.String())
}

func TestResets(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, ResetForeground(&buf))
	require.NoError(t, ResetBackground(&buf))
	assert.Equal(t, "\x1b]110\x07\x1b]111\x07", buf.String())
}
