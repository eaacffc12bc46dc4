package tetromino

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tetris-wars/internal/core"
)

func newTestResolver() *Resolver {
	cfg := DefaultConfig()
	return NewResolver(cfg.BlockSize, cfg.IntersectMargin)
}

func TestClassifyUnobstructedAtSpawn(t *testing.T) {
	r := newTestResolver()
	for _, shape := range Shapes() {
		s := newTestState(shape)
		for _, a := range core.CommandActions {
			delta, _ := s.DeltaFor(a)
			if c := r.Classify(s, delta, testField); c != Unobstructed {
				t.Errorf("%s %s at spawn classified %s, expected unobstructed", shape, a, c)
			}
		}
	}
}

func TestOverrunTopCorrectionLandsOnLoosenedEdge(t *testing.T) {
	r := newTestResolver()
	s := newTestState(ShapeI)

	// Two steps up put the top edge exactly on the loosened boundary
	for i := 0; i < 2; i++ {
		up := s.MoveUpDelta()
		assert.Equal(t, Unobstructed, r.Classify(s, up, testField))
		s.Apply(up)
	}
	assert.Equal(t, -240.0, s.BoundingBox().Min.Y)

	// The third would land one block above it
	up := s.MoveUpDelta()
	proposed := s.BoundingBoxAt(core.Compose(s.Pose(), up))
	assert.Equal(t, -280.0, proposed.Min.Y)

	c := r.Classify(s, up, testField)
	assert.Equal(t, OverrunTop, c)
	assert.True(t, r.CorrectionFor(c).Equal(core.Translate(0, 40)))

	effective := r.EffectiveDelta(s, up, testField)
	landed := s.BoundingBoxAt(core.Compose(s.Pose(), effective))
	assert.Equal(t, testField.Loosened(40).Min.Y, landed.Min.Y)
}

func TestMoveDownScenarioClampsAtBottom(t *testing.T) {
	r := newTestResolver()
	s := newTestState(ShapeI)

	for i := 0; i < 9; i++ {
		down := s.MoveDownDelta()
		c := r.Classify(s, down, testField)
		if c != Unobstructed {
			t.Fatalf("move %d classified %s, expected unobstructed", i+1, c)
		}
		s.Apply(r.EffectiveDelta(s, down, testField))
	}
	assert.Equal(t, 9*40.0, s.Pose().Translation.Y)

	before := s.Pose().Translation.Y
	down := s.MoveDownDelta()
	assert.Equal(t, OverrunBottom, r.Classify(s, down, testField))

	s.Apply(r.EffectiveDelta(s, down, testField))
	advanced := s.Pose().Translation.Y - before
	assert.Less(t, advanced, 40.0, "bottom overrun should clamp the step")
	assert.True(t, testField.Loosened(40).Contains(s.BoundingBox()))
}

func TestCorrectionFor(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		c        Classification
		expected core.Motion
	}{
		{Unobstructed, core.Identity},
		{OverrunTop, core.Translate(0, 40)},
		{OverrunBottom, core.Translate(0, -40)},
	}

	for _, tc := range tests {
		t.Run(tc.c.String(), func(t *testing.T) {
			if got := r.CorrectionFor(tc.c); !got.Equal(tc.expected) {
				t.Errorf("CorrectionFor(%s) = %+v, expected %+v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	r := newTestResolver()
	s := newTestState(ShapeL)
	for i := 0; i < 3; i++ {
		s.Apply(s.MoveUpDelta())
	}
	delta := s.MoveUpDelta()

	first := r.Classify(s, delta, testField)
	for i := 0; i < 5; i++ {
		if got := r.Classify(s, delta, testField); got != first {
			t.Fatalf("Classify call %d = %s, expected %s", i+2, got, first)
		}
	}
	assert.True(t, s.Pose().Equal(core.Translate(0, -120)), "Classify must not move the piece")
}

func TestDoubleOverrunDefaultsToBottom(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spawn = core.V(0, 0)
	s := NewState(ShapeI, LeftToRight, cfg)
	r := NewResolver(cfg.BlockSize, cfg.IntersectMargin)

	// Field 40 tall: loosened it spans y in [-60, 60]. A vertical I spans
	// [-80, 80] and sticks out of both edges.
	field := core.NewAABB(core.V(0, 0), core.V(200, 20))
	turn := s.RotateRightDelta()

	box := s.BoundingBoxAt(core.Compose(s.Pose(), turn)).Rounded(boxDecimals)
	assert.Less(t, box.Min.Y, field.Min.Y)
	assert.Greater(t, box.Max.Y, field.Loosened(40).Max.Y)

	assert.Equal(t, OverrunBottom, r.Classify(s, turn, field))
}

func TestRotationNoiseDoesNotCountAsOverrun(t *testing.T) {
	r := newTestResolver()
	s := newTestState(ShapeI)

	// The vertical I touches the loosened top edge after one step up.
	s.Apply(s.RotateRightDelta())
	s.Apply(s.MoveUpDelta())
	assert.InDelta(t, -240.0, s.BoundingBox().Min.Y, 1e-9)

	assert.Equal(t, Unobstructed, r.Classify(s, core.Identity, testField))
	assert.Equal(t, OverrunTop, r.Classify(s, s.MoveUpDelta(), testField))
}

func TestIntersects(t *testing.T) {
	r := newTestResolver()
	s := newTestState(ShapeI)

	// Directly under the spawned I, sharing its bottom edge
	below := core.AABB{Min: core.V(-80, -120), Max: core.V(80, -80)}
	// Off to the side, never reached by vertical moves
	aside := core.AABB{Min: core.V(100, -200), Max: core.V(140, 200)}

	tests := []struct {
		name     string
		other    core.AABB
		delta    core.Motion
		expected bool
	}{
		{"touching is not a hit", below, core.Identity, false},
		{"moving into it is", below, s.MoveDownDelta(), true},
		{"moving away is not", below, s.MoveUpDelta(), false},
		{"far obstacle", aside, s.MoveDownDelta(), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Intersects(s, tc.other, tc.delta); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestIntersectsUsesPerBlockBoxes(t *testing.T) {
	r := newTestResolver()
	s := newTestState(ShapeT)

	// T at spawn: top block covers x in [-20, 20], y in [-180, -140]; the
	// corner at x [20, 60] of the same row is empty.
	gap := core.AABB{Min: core.V(25, -175), Max: core.V(55, -145)}

	assert.True(t, s.BoundingBox().Intersects(gap), "the whole-piece box covers the gap")
	assert.False(t, r.Intersects(s, gap, core.Identity), "no block occupies the gap")
}
