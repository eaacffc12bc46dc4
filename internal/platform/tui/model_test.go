package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris-wars/internal/config"
	"github.com/vovakirdan/tetris-wars/internal/core"
	"github.com/vovakirdan/tetris-wars/internal/games/tetris"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	resets int
	frames []core.InputFrame
	state  core.GameState
}

func (g *fakeGame) Title() string { return "fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if _, ok := in.Command(); ok {
		g.state.Moves++
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime())

	cmd := m.Init()

	assert.Equal(t, 1, g.resets)
	assert.NotNil(t, cmd, "init starts the tick loop")
}

func TestModelKeysApplyOnNextTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime())
	m.Init()

	m, _ = update(t, m, runes("w"))
	assert.Empty(t, g.frames, "keys wait for a tick")

	m, cmd := update(t, m, TickMsg{})
	require.Len(t, g.frames, 1)
	assert.True(t, g.frames[0].Has(core.ActionMoveUp))
	assert.Equal(t, 1, m.State().Moves)
	assert.NotNil(t, cmd, "tick schedules the next tick")

	m, _ = update(t, m, TickMsg{})
	require.Len(t, g.frames, 2)
	assert.False(t, g.frames[1].Has(core.ActionMoveUp), "input is cleared after each tick")
	assert.Equal(t, 1, m.State().Moves)
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime())

	m, cmd := update(t, m, runes("q"))

	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())

	_, cmd = update(t, m, TickMsg{})
	assert.Nil(t, cmd, "no ticks after quitting")
	assert.Empty(t, g.frames)
}

func TestModelBackDisabledByDefault(t *testing.T) {
	m := NewModel(&fakeGame{}, testRuntime())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu())

	m = NewModel(&fakeGame{}, testRuntime()).WithBackToMenu()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())

	_, cmd := update(t, m, TickMsg{})
	assert.Nil(t, cmd, "the tick loop stops when leaving the game")
}

func TestModelResize(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 29, m.screen.Height(), "bottom row is kept for help")
	assert.Equal(t, 0, g.resets, "resizing keeps the piece")
}

func TestModelViewDrawsGame(t *testing.T) {
	m := NewModel(&fakeGame{}, testRuntime())

	assert.Contains(t, m.View(), "fake")
}

func TestModelDrivesTetris(t *testing.T) {
	g := tetris.New(config.DefaultTetrisConfig())
	m := NewModel(g, testRuntime())
	m.Init()

	m, _ = update(t, m, runes("s"))
	m, _ = update(t, m, TickMsg{})

	assert.Equal(t, 1, m.State().Moves)
	assert.True(t, m.State().Animated)
	mv, ok := g.LastMove()
	require.True(t, ok)
	assert.Equal(t, core.ActionMoveDown, mv.Action)
	assert.Contains(t, m.View(), "Tetris Wars")
}
