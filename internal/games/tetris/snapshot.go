package tetris

import "github.com/vovakirdan/tetris-wars/internal/core"

// Snapshot captures the session state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Shape    string
	Moves    int
	Blocked  int
	Pose     core.Motion
	Box      core.AABB
	Centers  [4]core.Vec2 // Interpolated block centres
	Paused   bool
	Animated bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	var centers [4]core.Vec2
	for i, v := range g.piece.BlockViews() {
		centers[i] = v.Center
	}

	return Snapshot{
		Tick:     g.tick,
		Shape:    g.shape.String(),
		Moves:    g.state.Moves,
		Blocked:  g.state.Blocked,
		Pose:     g.piece.State().Pose(),
		Box:      g.piece.BoundingBox(),
		Centers:  centers,
		Paused:   g.state.Paused,
		Animated: g.state.Animated,
	}
}
