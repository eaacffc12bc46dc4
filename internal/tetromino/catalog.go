package tetromino

import (
	"strings"

	"github.com/vovakirdan/tetris-wars/internal/core"
)

// layout is one catalog entry: four cells in block units and the pivot,
// also in block units, about which the piece rotates.
type layout struct {
	cells [4]core.Vec2
	pivot core.Vec2
}

// catalog is the single source of truth for piece geometry.
// A cell is named by the position of its centre, so a pivot of (1, 1) sits
// on the centre of cell (1, 1) and half-integer pivots fall between cells.
var catalog = map[Shape]layout{
	ShapeZ: {
		cells: [4]core.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		pivot: core.Vec2{X: 1, Y: 1},
	},
	ShapeS: {
		cells: [4]core.Vec2{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		pivot: core.Vec2{X: 1, Y: 1},
	},
	ShapeO: {
		cells: [4]core.Vec2{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		pivot: core.Vec2{X: 1.5, Y: 0.5},
	},
	ShapeL: {
		cells: [4]core.Vec2{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}},
		pivot: core.Vec2{X: 1, Y: 1},
	},
	ShapeJ: {
		cells: [4]core.Vec2{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}},
		pivot: core.Vec2{X: 1, Y: 1},
	},
	ShapeI: {
		cells: [4]core.Vec2{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}},
		pivot: core.Vec2{X: 1.5, Y: 1.5},
	},
	ShapeT: {
		cells: [4]core.Vec2{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		pivot: core.Vec2{X: 1, Y: 1},
	},
}

// Layout returns the four grid cells and the pivot of a shape, in block
// units. Callers scale by block size and subtract the pivot to get
// block-local world offsets. Unknown shapes fall back to Z.
func Layout(s Shape) ([4]core.Vec2, core.Vec2) {
	l, ok := catalog[s]
	if !ok {
		l = catalog[ShapeZ]
	}
	return l.cells, l.pivot
}

// LocalOffsets returns the block centres relative to the pivot, in world
// units for the given block size.
func LocalOffsets(s Shape, blockSize float64) [4]core.Vec2 {
	cells, pivot := Layout(s)
	var offsets [4]core.Vec2
	for i, c := range cells {
		offsets[i] = c.Sub(pivot).Mul(blockSize)
	}
	return offsets
}

// Diagram draws a shape's cells as text, one row per grid row and two
// columns per cell, occupied cells as "[]".
func Diagram(s Shape) []string {
	cells, _ := Layout(s)

	maxX, maxY := 0, 0
	for _, c := range cells {
		maxX = max(maxX, int(c.X))
		maxY = max(maxY, int(c.Y))
	}

	grid := make([][]bool, maxY+1)
	for y := range grid {
		grid[y] = make([]bool, maxX+1)
	}
	for _, c := range cells {
		grid[int(c.Y)][int(c.X)] = true
	}

	rows := make([]string, 0, len(grid))
	for _, row := range grid {
		var sb strings.Builder
		for _, filled := range row {
			if filled {
				sb.WriteString("[]")
			} else {
				sb.WriteString("  ")
			}
		}
		if line := strings.TrimRight(sb.String(), " "); line != "" {
			rows = append(rows, line)
		}
	}
	return rows
}
