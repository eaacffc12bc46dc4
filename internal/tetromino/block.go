package tetromino

import "github.com/vovakirdan/tetris-wars/internal/core"

// Block is one unit square of a piece: a constant offset from the pivot and
// the animation that carries it on screen.
type Block struct {
	offset core.Vec2
	size   float64
	anim   *Animation
}

func newBlock(offset core.Vec2, cfg Config) *Block {
	return &Block{
		offset: offset,
		size:   cfg.BlockSize,
		anim:   NewAnimation(cfg.Steps, cfg.BlockSize),
	}
}

// Offset returns the block centre relative to the pivot, in world units.
func (b *Block) Offset() core.Vec2 { return b.offset }

// Size returns the side length of the block square.
func (b *Block) Size() float64 { return b.size }

// Pose returns the block's interpolated pose.
func (b *Block) Pose() core.Motion { return b.anim.Current() }

// Animation returns the block's animation controller.
func (b *Block) Animation() *Animation { return b.anim }

// BlockView is what a renderer needs to draw one square.
type BlockView struct {
	Offset core.Vec2   // Constant offset from the pivot
	Pose   core.Motion // Interpolated pose
	Center core.Vec2   // Interpolated world centre
	Size   float64
}
