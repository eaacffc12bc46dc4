package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tetris-wars/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionMoveUp},
		{"w", runes("w"), core.ActionMoveUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionMoveDown},
		{"s", runes("s"), core.ActionMoveDown},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateLeft},
		{"a", runes("a"), core.ActionRotateLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRotateRight},
		{"d", runes("d"), core.ActionRotateRight},
		{"n", runes("n"), core.ActionNextShape},
		{"x", runes("x"), core.ActionToggleDebug},
		{"p", runes("p"), core.ActionPause},
		{"r", runes("r"), core.ActionRestart},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("z"), core.ActionNone},
		{"esc is not an action", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.MapKey(tt.msg))
		})
	}
}

func TestGameKeyMapHelp(t *testing.T) {
	keys := DefaultGameKeyMap()

	assert.False(t, keys.Back.Enabled(), "back is only enabled inside a session")
	assert.Len(t, keys.ShortHelp(), 7)

	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	assert.Equal(t, 11, total)
}
