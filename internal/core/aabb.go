package core

import "math"

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min, Max Vec2
}

// NewAABB creates a box from its centre and half-extents.
func NewAABB(center, halfExtents Vec2) AABB {
	return AABB{
		Min: center.Sub(halfExtents),
		Max: center.Add(halfExtents),
	}
}

// BoundsOf returns the smallest box enclosing all points.
// With no points it returns the zero box.
func BoundsOf(points ...Vec2) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	b := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

// Center returns the centre point of the box.
func (b AABB) Center() Vec2 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// HalfExtents returns half the box size along each axis.
func (b AABB) HalfExtents() Vec2 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// Size returns the full width and height (half-extents x2).
func (b AABB) Size() Vec2 {
	return b.Max.Sub(b.Min)
}

// Loosened grows the box by margin on every side. A negative margin shrinks it.
func (b AABB) Loosened(margin float64) AABB {
	m := Vec2{X: margin, Y: margin}
	return AABB{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}

// Merge returns the smallest box enclosing both b and o.
func (b AABB) Merge(o AABB) AABB {
	return BoundsOf(b.Min, b.Max, o.Min, o.Max)
}

// Contains reports whether o lies fully inside b. Shared edges count as inside.
func (b AABB) Contains(o AABB) bool {
	return o.Min.X >= b.Min.X && o.Max.X <= b.Max.X &&
		o.Min.Y >= b.Min.Y && o.Max.Y <= b.Max.Y
}

// Intersects reports whether the boxes overlap with positive area.
// Boxes that only touch along an edge do not intersect.
func (b AABB) Intersects(o AABB) bool {
	if b.Min.X >= o.Max.X || o.Min.X >= b.Max.X {
		return false
	}
	if b.Min.Y >= o.Max.Y || o.Min.Y >= b.Max.Y {
		return false
	}
	return true
}

// Rounded rounds every coordinate to the given number of decimal places.
func (b AABB) Rounded(decimals int) AABB {
	return AABB{
		Min: Vec2{X: RoundTo(b.Min.X, decimals), Y: RoundTo(b.Min.Y, decimals)},
		Max: Vec2{X: RoundTo(b.Max.X, decimals), Y: RoundTo(b.Max.Y, decimals)},
	}
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.Round(v*scale) / scale
}
