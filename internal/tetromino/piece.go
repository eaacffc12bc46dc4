package tetromino

import "github.com/vovakirdan/tetris-wars/internal/core"

// Move records how one command was handled.
type Move struct {
	Action         core.Action
	Proposed       core.Motion // Canonical delta for the action
	Classification Classification
	Correction     core.Motion
	Effective      core.Motion // Proposed composed with Correction, as applied
	Pose           core.Motion // Logical pose after the move
}

// Corrected reports whether the boundary changed the proposed delta.
func (m Move) Corrected() bool {
	return m.Classification != Unobstructed
}

// Piece ties the logical state to its four animated blocks. Commands go
// through the resolver once; the effective delta is applied to the state and
// queued into every block.
type Piece struct {
	state    *State
	blocks   [4]*Block
	resolver *Resolver
	field    core.AABB
}

// New spawns a piece of the given shape inside field.
func New(shape Shape, direction Direction, cfg Config, field core.AABB) *Piece {
	state := NewState(shape, direction, cfg)

	p := &Piece{
		state:    state,
		resolver: NewResolver(cfg.BlockSize, cfg.IntersectMargin),
		field:    field,
	}
	for i, off := range state.Offsets() {
		p.blocks[i] = newBlock(off, cfg)
	}
	return p
}

// Handle runs one command. It returns false, and changes nothing, for
// actions that do not move the piece.
func (p *Piece) Handle(a core.Action) (Move, bool) {
	proposed, ok := p.state.DeltaFor(a)
	if !ok {
		return Move{Action: a, Pose: p.state.Pose()}, false
	}

	c := p.resolver.Classify(p.state, proposed, p.field)
	correction := p.resolver.CorrectionFor(c)
	effective := core.Compose(proposed, correction)

	p.state.Apply(effective)
	for _, b := range p.blocks {
		b.anim.Queue(effective)
	}

	return Move{
		Action:         a,
		Proposed:       proposed,
		Classification: c,
		Correction:     correction,
		Effective:      effective,
		Pose:           p.state.Pose(),
	}, true
}

// Tick advances every block animation by one frame.
func (p *Piece) Tick(dt float64) {
	for _, b := range p.blocks {
		b.anim.Tick(dt)
	}
}

// Converged reports whether every block has reached its target.
func (p *Piece) Converged() bool {
	for _, b := range p.blocks {
		if !b.anim.Converged() {
			return false
		}
	}
	return true
}

// BlockViews returns the interpolated geometry of each block for drawing.
func (p *Piece) BlockViews() [4]BlockView {
	spawn := p.state.Spawn()
	var views [4]BlockView
	for i, b := range p.blocks {
		pose := b.Pose()
		views[i] = BlockView{
			Offset: b.offset,
			Pose:   pose,
			Center: spawn.Add(pose.Apply(b.offset)),
			Size:   b.size,
		}
	}
	return views
}

// State returns the logical state.
func (p *Piece) State() *State { return p.state }

// Blocks returns the four blocks.
func (p *Piece) Blocks() [4]*Block { return p.blocks }

// Resolver returns the collision resolver bound to this piece's scale.
func (p *Piece) Resolver() *Resolver { return p.resolver }

// Field returns the field boundary.
func (p *Piece) Field() core.AABB { return p.field }

// BoundingBox returns the logical piece box under the current pose.
func (p *Piece) BoundingBox() core.AABB { return p.state.BoundingBox() }
