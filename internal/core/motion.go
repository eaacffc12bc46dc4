package core

import "math"

// Motion is a 2D rigid motion: a translation and a rotation angle in radians.
// The zero value is the identity.
type Motion struct {
	Translation Vec2
	Angle       float64
}

// Identity is the motion that changes nothing.
var Identity = Motion{}

// Translate returns a pure translation.
func Translate(x, y float64) Motion {
	return Motion{Translation: Vec2{X: x, Y: y}}
}

// Rotate returns a pure rotation about the origin.
func Rotate(angle float64) Motion {
	return Motion{Angle: angle}
}

// Compose adds translations and angles.
//
// This is not general rigid-body composition. It is exact here only because
// every rotation in the piece model is about the same pivot, which is baked
// into the block offsets, so rotations and translations never interact.
// Off-pivot rotation needs a separate operation.
func Compose(a, b Motion) Motion {
	return Motion{
		Translation: a.Translation.Add(b.Translation),
		Angle:       a.Angle + b.Angle,
	}
}

// Difference subtracts b from a componentwise. Difference(Compose(a, b), b) == a.
func Difference(a, b Motion) Motion {
	return Motion{
		Translation: a.Translation.Sub(b.Translation),
		Angle:       a.Angle - b.Angle,
	}
}

// Scale divides translation and angle by k. k must be nonzero.
func Scale(m Motion, k float64) Motion {
	return Motion{
		Translation: Vec2{X: m.Translation.X / k, Y: m.Translation.Y / k},
		Angle:       m.Angle / k,
	}
}

// Apply rotates p by the motion's angle about the origin, then translates it.
func (m Motion) Apply(p Vec2) Vec2 {
	return p.Rotate(m.Angle).Add(m.Translation)
}

// Equal reports exact equality. Used for discrete logical state.
func (m Motion) Equal(o Motion) bool {
	return m == o
}

// ApproxEqual reports equality with every component within eps.
// Used for animated state.
func (m Motion) ApproxEqual(o Motion, eps float64) bool {
	return math.Abs(m.Translation.X-o.Translation.X) <= eps &&
		math.Abs(m.Translation.Y-o.Translation.Y) <= eps &&
		math.Abs(m.Angle-o.Angle) <= eps
}

// IsIdentity reports whether m is exactly the identity.
func (m Motion) IsIdentity() bool {
	return m == Identity
}

// NormalizedAngle returns the angle wrapped into (-pi, pi].
func (m Motion) NormalizedAngle() float64 {
	a := math.Mod(m.Angle, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
