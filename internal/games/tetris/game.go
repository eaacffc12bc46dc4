// Package tetris runs one falling piece as a frame-stepped session: it picks
// the command for each frame, feeds it to the piece, journals the result and
// draws the interpolated blocks.
package tetris

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tetris-wars/internal/config"
	"github.com/vovakirdan/tetris-wars/internal/core"
	"github.com/vovakirdan/tetris-wars/internal/tetromino"
)

// Recorder persists sessions and their moves. *storage.Store implements it.
type Recorder interface {
	StartSession(id string, shape tetromino.Shape, direction tetromino.Direction) error
	RecordMove(sessionID string, seq int, m tetromino.Move) (int64, error)
}

// Game implements a single-piece session.
type Game struct {
	cfg     config.TetrisConfig
	runtime core.RuntimeConfig

	piece     *tetromino.Piece
	shape     tetromino.Shape
	direction tetromino.Direction
	tick      uint64

	state    core.GameState
	lastMove tetromino.Move
	hasMove  bool
	debug    bool

	recorder  Recorder
	journalOK bool // Session row exists for the current piece
	sessionID string
	newID     func() string
	logger    *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithRecorder journals every session and move to r.
func WithRecorder(r Recorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithLogger sets the logger for move and journal events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithSessionIDs overrides how session ids are generated.
func WithSessionIDs(f func() string) Option {
	return func(g *Game) { g.newID = f }
}

// New creates a game from cfg. Call Reset before stepping.
func New(cfg config.TetrisConfig, opts ...Option) *Game {
	g := &Game{
		cfg:       cfg,
		shape:     cfg.Shape(),
		direction: cfg.Direction(),
		newID:     uuid.NewString,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris Wars" }

// Reset spawns the configured shape and starts a new session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.shape = g.cfg.Shape()
	g.direction = g.cfg.Direction()
	g.debug = false
	g.state.Paused = false
	g.spawn()
}

// spawn replaces the piece with a fresh one of the current shape.
func (g *Game) spawn() {
	g.piece = tetromino.New(g.shape, g.direction, g.cfg.PieceConfig(), g.cfg.Field())
	g.tick = 0
	g.state.Moves = 0
	g.state.Blocked = 0
	g.state.Animated = false
	g.hasMove = false
	g.lastMove = tetromino.Move{}

	g.sessionID = g.newID()
	g.journalOK = false
	if g.recorder != nil {
		if err := g.recorder.StartSession(g.sessionID, g.shape, g.direction); err != nil {
			g.logger.Warn("journal unavailable for session", "session", g.sessionID, "error", err)
		} else {
			g.journalOK = true
		}
	}

	g.logger.Debug("spawned", "session", g.sessionID, "shape", g.shape, "direction", g.direction,
		"spawn", g.piece.State().Spawn())
}

// Step advances the session by one frame.
// Order: pause/debug toggles, respawns, at most one command, then every
// block animation ticks once.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if in.Has(core.ActionToggleDebug) {
		g.debug = !g.debug
	}
	if g.state.Paused {
		return core.StepResult{State: g.state}
	}

	switch {
	case in.Has(core.ActionRestart):
		g.spawn()
	case in.Has(core.ActionNextShape):
		g.shape = g.shape.Next()
		g.spawn()
	}

	if a, ok := in.Command(); ok {
		g.handle(a)
	}

	g.piece.Tick(g.runtime.FrameDelta())
	g.tick++
	g.state.Animated = !g.piece.Converged()

	return core.StepResult{State: g.state}
}

func (g *Game) handle(a core.Action) {
	m, ok := g.piece.Handle(a)
	if !ok {
		return
	}

	g.state.Moves++
	if m.Corrected() {
		g.state.Blocked++
	}
	g.lastMove = m
	g.hasMove = true

	g.logger.Debug("move",
		"action", m.Action,
		"classification", m.Classification,
		"x", m.Pose.Translation.X,
		"y", m.Pose.Translation.Y,
		"angle", m.Pose.Angle,
	)

	if g.recorder != nil && g.journalOK {
		if _, err := g.recorder.RecordMove(g.sessionID, g.state.Moves, m); err != nil {
			g.logger.Warn("could not journal move", "session", g.sessionID, "seq", g.state.Moves, "error", err)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState { return g.state }

// Piece returns the falling piece.
func (g *Game) Piece() *tetromino.Piece { return g.piece }

// SessionID returns the journal id of the current piece.
func (g *Game) SessionID() string { return g.sessionID }

// LastMove returns the most recent handled command, if any.
func (g *Game) LastMove() (tetromino.Move, bool) { return g.lastMove, g.hasMove }

// Debug reports whether the bounding box overlay is on.
func (g *Game) Debug() bool { return g.debug }
