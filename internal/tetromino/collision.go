package tetromino

import (
	"math"

	"github.com/vovakirdan/tetris-wars/internal/core"
)

// Classification is the outcome of testing a proposed move against the field.
type Classification int

const (
	Unobstructed Classification = iota
	OverrunTop
	OverrunBottom
)

// String returns a human-readable name for the classification.
func (c Classification) String() string {
	switch c {
	case Unobstructed:
		return "unobstructed"
	case OverrunTop:
		return "overrun_top"
	case OverrunBottom:
		return "overrun_bottom"
	default:
		return "unknown"
	}
}

// Resolver classifies proposed moves against the field boundary and
// produces corrective deltas. It is a single-axis clamp: every command moves
// at most one block, so one block of correction is always enough.
type Resolver struct {
	blockSize       float64
	intersectMargin float64
}

// NewResolver creates a resolver for pieces of the given block size.
// intersectMargin shrinks per-block boxes in Intersects.
func NewResolver(blockSize, intersectMargin float64) *Resolver {
	return &Resolver{
		blockSize:       blockSize,
		intersectMargin: intersectMargin,
	}
}

// Classify tests the piece box under Compose(pose, delta) against the field
// loosened by one block.
//
// A box that overruns both the top and the bottom edge is classified
// OverrunBottom. Single-block deltas never produce that case.
func (r *Resolver) Classify(s *State, delta core.Motion, field core.AABB) Classification {
	box := s.BoundingBoxAt(core.Compose(s.Pose(), delta)).Rounded(boxDecimals)
	loose := field.Loosened(r.blockSize)

	if loose.Contains(box) {
		return Unobstructed
	}

	overTop := math.Round(box.Min.Y) < math.Round(field.Min.Y)
	overBottom := box.Max.Y > loose.Max.Y
	if overTop && !overBottom {
		return OverrunTop
	}
	return OverrunBottom
}

// CorrectionFor returns the delta that pushes the piece back into bounds.
func (r *Resolver) CorrectionFor(c Classification) core.Motion {
	switch c {
	case OverrunTop:
		return core.Translate(0, r.blockSize)
	case OverrunBottom:
		return core.Translate(0, -r.blockSize)
	default:
		return core.Identity
	}
}

// EffectiveDelta returns the proposed delta with its boundary correction.
func (r *Resolver) EffectiveDelta(s *State, delta core.Motion, field core.AABB) core.Motion {
	return core.Compose(delta, r.CorrectionFor(r.Classify(s, delta, field)))
}

// Intersects reports whether any block, under the proposed pose and shrunk
// by the intersect margin, overlaps other. Blocks that merely touch other
// do not count.
func (r *Resolver) Intersects(s *State, other core.AABB, delta core.Motion) bool {
	boxes := s.BlockBoxesAt(core.Compose(s.Pose(), delta))
	for _, b := range boxes {
		if b.Rounded(boxDecimals).Loosened(-r.intersectMargin).Intersects(other) {
			return true
		}
	}
	return false
}
