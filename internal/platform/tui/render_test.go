package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tetris-wars/internal/core"
)

func TestRenderScreenKeepsContent(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "[]", core.ColorCyan)
	s.DrawText(0, 1, "cd")

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ab")
	assert.Contains(t, lines[0], "[]")
	assert.Contains(t, lines[1], "cd")
}

func TestStyleForUnknownColor(t *testing.T) {
	assert.Equal(t, colorStyles[core.ColorDefault].Render("x"), styleFor(core.Color(99)).Render("x"))
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "  ab", centerText("ab", 6))
	assert.Equal(t, " abc", centerText("abc", 6))
	assert.Equal(t, "toolong", centerText("toolong", 4))
}
