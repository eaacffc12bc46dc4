// Package tetromino implements the geometry and kinematics of a single
// falling piece: the shape catalog, the authoritative logical pose, per-block
// animation toward that pose, and correction against the field boundary.
//
// Logical state and animation are separate on purpose. State is what
// collision and gameplay reason about; Animation only follows the deltas it
// is queued and is never read back by game logic.
package tetromino

import (
	"fmt"
	"strings"
)

// Shape is one of the seven canonical tetromino kinds.
type Shape int

const (
	ShapeZ Shape = iota
	ShapeS
	ShapeO
	ShapeL
	ShapeJ
	ShapeI
	ShapeT
)

var shapeNames = [...]string{"Z", "S", "O", "L", "J", "I", "T"}

// Shapes returns every shape in catalog order.
func Shapes() []Shape {
	return []Shape{ShapeZ, ShapeS, ShapeO, ShapeL, ShapeJ, ShapeI, ShapeT}
}

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "?"
	}
	return shapeNames[s]
}

// Next returns the following shape in catalog order, wrapping around.
func (s Shape) Next() Shape {
	return Shape((int(s) + 1) % len(shapeNames))
}

// ParseShape parses a shape name, ignoring case and surrounding space.
func ParseShape(name string) (Shape, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for i, sn := range shapeNames {
		if sn == n {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("tetromino: unknown shape %q", name)
}

// Direction is the spawn orientation of a piece.
// It is recorded on the state but has no geometric effect yet.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

// String returns the config name of the direction.
func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "left_to_right"
	case RightToLeft:
		return "right_to_left"
	default:
		return "unknown"
	}
}

// ParseDirection parses a direction config name.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "left_to_right", "ltr":
		return LeftToRight, nil
	case "right_to_left", "rtl":
		return RightToLeft, nil
	}
	return 0, fmt.Errorf("tetromino: unknown direction %q", name)
}
