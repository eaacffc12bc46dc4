package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris-wars/internal/config"
	"github.com/vovakirdan/tetris-wars/internal/games/tetris"
	"github.com/vovakirdan/tetris-wars/internal/storage"
	"github.com/vovakirdan/tetris-wars/internal/tetromino"
)

func testFactory(store *storage.Store, built *[]tetromino.Shape) GameFactory {
	n := 0
	return func(shape tetromino.Shape) Game {
		*built = append(*built, shape)
		cfg := config.DefaultTetrisConfig()
		cfg.Spawn.Shape = shape.String()
		opts := []tetris.Option{tetris.WithSessionIDs(func() string {
			n++
			return fmt.Sprintf("session-%d", n)
		})}
		if store != nil {
			opts = append(opts, tetris.WithRecorder(store))
		}
		return tetris.New(cfg, opts...)
	}
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(SessionModel)
	require.True(t, ok)
	return out, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	var built []tetromino.Shape
	m := NewSessionModel(testFactory(nil, &built), nil, testRuntime(), tetromino.ShapeO)
	assert.Equal(t, screenMenu, m.current)

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, m.current)
	assert.Equal(t, []tetromino.Shape{tetromino.ShapeO}, built)
	assert.NotNil(t, cmd, "entering a game starts its tick loop")
	assert.Contains(t, m.View(), "shape O")

	m, _ = updateSession(t, m, runes("w"))
	m, _ = updateSession(t, m, TickMsg{})
	assert.Equal(t, 1, m.game.State().Moves)

	m, cmd = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.current)
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.menu.cursor, "menu keeps the last shape highlighted")

	// A stale tick reaching the menu is harmless.
	m, _ = updateSession(t, m, TickMsg{})
	assert.Equal(t, screenMenu, m.current)

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, screenGame, m.current)
	assert.Equal(t, []tetromino.Shape{tetromino.ShapeO, tetromino.ShapeL}, built)
}

func TestSessionJournal(t *testing.T) {
	store := openStore(t)
	var built []tetromino.Shape
	m := NewSessionModel(testFactory(store, &built), store, testRuntime(), tetromino.ShapeZ)

	// Play one move so the journal has something to show.
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = updateSession(t, m, runes("s"))
	m, _ = updateSession(t, m, TickMsg{})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, screenMenu, m.current)

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenJournal, m.current)
	require.Len(t, m.journal.sessions, 1)
	assert.Equal(t, "session-1", m.journal.sessions[0].ID)
	assert.Equal(t, 1, m.journal.sessions[0].MoveCount)

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.current)
	assert.False(t, m.menu.WantsJournal(), "menu is rebuilt after the journal")
}

func TestSessionQuitFromEachScreen(t *testing.T) {
	var built []tetromino.Shape
	factory := testFactory(nil, &built)

	m := NewSessionModel(factory, nil, testRuntime(), tetromino.ShapeZ)
	m, cmd := updateSession(t, m, runes("q"))
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())

	m = NewSessionModel(factory, nil, testRuntime(), tetromino.ShapeZ)
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd = updateSession(t, m, runes("q"))
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)

	m = NewSessionModel(factory, nil, testRuntime(), tetromino.ShapeZ)
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd = updateSession(t, m, runes("q"))
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
}

func TestSessionResizeCarriesIntoGame(t *testing.T) {
	var built []tetromino.Shape
	m := NewSessionModel(testFactory(nil, &built), nil, testRuntime(), tetromino.ShapeZ)

	m, _ = updateSession(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 100, m.game.screen.Width())
	assert.Equal(t, 39, m.game.screen.Height())
}
