package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris-wars/internal/config"
	"github.com/vovakirdan/tetris-wars/internal/core"
	"github.com/vovakirdan/tetris-wars/internal/tetromino"
)

func TestParseCommands(t *testing.T) {
	actions, err := parseCommands("down, s,,Right,a,up")
	require.NoError(t, err)
	assert.Equal(t, []core.Action{
		core.ActionMoveDown,
		core.ActionMoveDown,
		core.ActionRotateRight,
		core.ActionRotateLeft,
		core.ActionMoveUp,
	}, actions)

	actions, err = parseCommands("")
	require.NoError(t, err)
	assert.Empty(t, actions)

	_, err = parseCommands("down,jump")
	assert.ErrorContains(t, err, `"jump"`)
}

func TestSimulateSettles(t *testing.T) {
	res := simulate(config.DefaultTetrisConfig(), []core.Action{core.ActionMoveDown, core.ActionMoveDown}, 0)

	require.Len(t, res.Moves, 2)
	assert.Equal(t, tetromino.Unobstructed, res.Moves[0].Classification)
	assert.Equal(t, core.Translate(0, 80), res.Pose)
	assert.True(t, res.Converged)
	// The second command re-levels from the in-flight pose at tick 2, lands
	// on the target after Steps more advances and snaps on the tick after.
	assert.Equal(t, 22, res.Ticks)
	assert.NotEmpty(t, res.SessionID)
}

func TestSimulateFixedTicks(t *testing.T) {
	res := simulate(config.DefaultTetrisConfig(), []core.Action{core.ActionMoveDown}, 3)

	assert.Equal(t, 4, res.Ticks)
	assert.False(t, res.Converged)
	assert.Equal(t, core.Translate(0, 40), res.Pose, "the logical pose moves at once")
}

func TestSimulateNothing(t *testing.T) {
	res := simulate(config.DefaultTetrisConfig(), nil, 0)

	assert.Empty(t, res.Moves)
	assert.Equal(t, 0, res.Ticks)
	assert.True(t, res.Converged)
	assert.Equal(t, core.Identity, res.Pose)
}

func TestPrintSimulation(t *testing.T) {
	res := simulate(config.DefaultTetrisConfig(), []core.Action{core.ActionMoveDown}, 0)

	var buf bytes.Buffer
	printSimulation(&buf, tetromino.ShapeZ, res)

	out := buf.String()
	assert.Contains(t, out, "Shape Z")
	assert.Contains(t, out, "MoveDown")
	assert.Contains(t, out, "unobstructed")
	assert.Contains(t, out, "Final pose: (0, 40) 0°")
	assert.Contains(t, out, "Settled: true after 20 ticks")
}

func TestPort(t *testing.T) {
	assert.Equal(t, "23234", port(":23234"))
	assert.Equal(t, "2222", port("0.0.0.0:2222"))
	assert.Equal(t, "nonsense", port("nonsense"))
}
