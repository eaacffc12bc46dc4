package tetromino

import (
	"math"

	"github.com/vovakirdan/tetris-wars/internal/core"
)

// snapSlack absorbs rounding in the accumulated step so a component that is
// one step away by construction still snaps on that tick.
const snapSlack = 1e-9

// Animation interpolates one block's pose toward a target over a fixed
// number of ticks. It knows nothing about State; it only sees the deltas it
// is queued.
type Animation struct {
	target  core.Motion
	step    core.Motion
	current core.Motion

	steps    int
	angleEps float64
	transEps float64
}

// NewAnimation creates a converged animation at identity.
// The snap thresholds are one step's worth of a quarter turn and of a block.
func NewAnimation(steps int, blockSize float64) *Animation {
	if steps < 1 {
		steps = 1
	}
	return &Animation{
		steps:    steps,
		angleEps: QuarterTurn / float64(steps),
		transEps: blockSize / float64(steps),
	}
}

// Queue adds delta to the target and re-levels the step.
func (a *Animation) Queue(delta core.Motion) {
	a.Retarget(core.Compose(a.target, delta))
}

// Retarget sets a new target and spreads the remaining distance from the
// current interpolated pose evenly over the configured steps. Queuing while
// a move is in flight therefore speeds the block up instead of jumping it.
func (a *Animation) Retarget(target core.Motion) {
	a.target = target
	a.step = core.Scale(core.Difference(a.target, a.current), float64(a.steps))
}

// Tick advances the animation by one step. Rotation and translation finish
// independently: a component within its threshold snaps to the target and
// stops. The step is per tick; dt is accepted from the frame loop and does
// not scale motion.
func (a *Animation) Tick(dt float64) {
	if a.step.Angle != 0 {
		if math.Abs(a.target.Angle-a.current.Angle) <= a.angleEps+snapSlack {
			a.current.Angle = a.target.Angle
			a.step.Angle = 0
		} else {
			a.current.Angle += a.step.Angle
		}
	}

	if a.step.Translation != (core.Vec2{}) {
		rem := a.target.Translation.Sub(a.current.Translation)
		if math.Max(math.Abs(rem.X), math.Abs(rem.Y)) <= a.transEps+snapSlack {
			a.current.Translation = a.target.Translation
			a.step.Translation = core.Vec2{}
		} else {
			a.current.Translation = a.current.Translation.Add(a.step.Translation)
		}
	}
}

// Current returns the interpolated pose. Rendering reads only this.
func (a *Animation) Current() core.Motion { return a.current }

// Target returns the pose being chased.
func (a *Animation) Target() core.Motion { return a.target }

// Step returns the per-tick increment.
func (a *Animation) Step() core.Motion { return a.step }

// Converged reports whether both components have reached the target.
func (a *Animation) Converged() bool {
	return a.step.IsIdentity()
}
