package tetromino

import (
	"math"

	"github.com/vovakirdan/tetris-wars/internal/core"
)

// QuarterTurn is the magnitude of one rotation command in radians.
const QuarterTurn = math.Pi / 2

// boxDecimals is the precision bounding boxes are rounded to before they
// are compared, absorbing sin/cos noise at quarter turns.
const boxDecimals = 6

// Config carries the scale of a piece. It is threaded into State, Animation
// and Resolver so pieces of different scales can coexist.
type Config struct {
	BlockSize       float64   // World units per block
	Steps           int       // Animation ticks per queued delta
	Spawn           core.Vec2 // World position of the pivot at spawn
	IntersectMargin float64   // Shrink applied to block boxes in Intersects
}

// DefaultConfig returns the reference scale: 40-unit blocks, 20 animation
// steps, spawning three blocks above the centre of a field at the origin.
func DefaultConfig() Config {
	return Config{
		BlockSize:       40,
		Steps:           20,
		Spawn:           core.V(0, -120),
		IntersectMargin: 1,
	}
}

// State is the authoritative logical pose of a piece.
// The shape, pivot and spawn never change; the pose changes only by
// composition with a delta.
type State struct {
	shape     Shape
	direction Direction
	blockSize float64
	pivot     core.Vec2
	spawn     core.Vec2
	offsets   [4]core.Vec2
	pose      core.Motion
}

// NewState builds the composite shape from the catalog and places the pivot
// at the configured spawn position with an identity pose.
func NewState(shape Shape, direction Direction, cfg Config) *State {
	_, pivot := Layout(shape)
	return &State{
		shape:     shape,
		direction: direction,
		blockSize: cfg.BlockSize,
		pivot:     pivot,
		spawn:     cfg.Spawn,
		offsets:   LocalOffsets(shape, cfg.BlockSize),
	}
}

// Apply composes the current pose with delta. It does no validation; run the
// delta through a Resolver first.
func (s *State) Apply(delta core.Motion) {
	s.pose = core.Compose(s.pose, delta)
}

// MoveUpDelta returns the one-block upward step.
func (s *State) MoveUpDelta() core.Motion {
	return core.Translate(0, -s.blockSize)
}

// MoveDownDelta returns the one-block downward step.
func (s *State) MoveDownDelta() core.Motion {
	return core.Translate(0, s.blockSize)
}

// RotateLeftDelta returns a counter-clockwise quarter turn. The pivot is
// baked into the block offsets, so adding the angle turns the whole piece
// about its own pivot.
func (s *State) RotateLeftDelta() core.Motion {
	return core.Rotate(-QuarterTurn)
}

// RotateRightDelta returns a clockwise quarter turn.
func (s *State) RotateRightDelta() core.Motion {
	return core.Rotate(QuarterTurn)
}

// DeltaFor maps a command action to its canonical delta.
// It returns false for actions that do not move the piece.
func (s *State) DeltaFor(a core.Action) (core.Motion, bool) {
	switch a {
	case core.ActionMoveUp:
		return s.MoveUpDelta(), true
	case core.ActionMoveDown:
		return s.MoveDownDelta(), true
	case core.ActionRotateLeft:
		return s.RotateLeftDelta(), true
	case core.ActionRotateRight:
		return s.RotateRightDelta(), true
	default:
		return core.Identity, false
	}
}

// BoundingBox returns the box enclosing all four blocks under the current pose.
func (s *State) BoundingBox() core.AABB {
	return s.BoundingBoxAt(s.pose)
}

// BoundingBoxAt returns the box enclosing all four blocks under pose.
func (s *State) BoundingBoxAt(pose core.Motion) core.AABB {
	boxes := s.BlockBoxesAt(pose)
	b := boxes[0]
	for _, o := range boxes[1:] {
		b = b.Merge(o)
	}
	return b
}

// BlockBoxesAt returns the world box of each block under pose.
func (s *State) BlockBoxesAt(pose core.Motion) [4]core.AABB {
	h := s.blockSize / 2
	corners := [4]core.Vec2{{X: -h, Y: -h}, {X: h, Y: -h}, {X: h, Y: h}, {X: -h, Y: h}}

	var boxes [4]core.AABB
	for i, off := range s.offsets {
		var pts [4]core.Vec2
		for j, c := range corners {
			pts[j] = s.spawn.Add(pose.Apply(off.Add(c)))
		}
		boxes[i] = core.BoundsOf(pts[:]...)
	}
	return boxes
}

// BlockCenters returns the world centre of each block under the current pose.
func (s *State) BlockCenters() [4]core.Vec2 {
	var centers [4]core.Vec2
	for i, off := range s.offsets {
		centers[i] = s.spawn.Add(s.pose.Apply(off))
	}
	return centers
}

// Shape returns the piece kind.
func (s *State) Shape() Shape { return s.shape }

// Direction returns the recorded spawn direction.
func (s *State) Direction() Direction { return s.direction }

// Pose returns the current logical pose.
func (s *State) Pose() core.Motion { return s.pose }

// Pivot returns the catalog pivot in block units.
func (s *State) Pivot() core.Vec2 { return s.pivot }

// Spawn returns the world position of the pivot at spawn.
func (s *State) Spawn() core.Vec2 { return s.spawn }

// Offsets returns the block-local offsets in world units.
func (s *State) Offsets() [4]core.Vec2 { return s.offsets }

// BlockSize returns the world size of one block.
func (s *State) BlockSize() float64 { return s.blockSize }
