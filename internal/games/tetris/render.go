package tetris

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tetris-wars/internal/core"
	"github.com/vovakirdan/tetris-wars/internal/tetromino"
)

// Screen layout constants
const (
	hudRows       = 2 // Title and status above the frame
	colsPerBlock  = 2 // A block is drawn as "[]"
	debugRows     = 4
	blockGlyphs   = "[]"
	fieldDot      = '.'
	pausedMessage = "PAUSED"
)

var shapeColors = map[tetromino.Shape]core.Color{
	tetromino.ShapeZ: core.ColorRed,
	tetromino.ShapeS: core.ColorGreen,
	tetromino.ShapeO: core.ColorYellow,
	tetromino.ShapeL: core.ColorOrange,
	tetromino.ShapeJ: core.ColorBlue,
	tetromino.ShapeI: core.ColorCyan,
	tetromino.ShapeT: core.ColorMagenta,
}

// ShapeColor returns the colour blocks of s are drawn in.
func ShapeColor(s tetromino.Shape) core.Color {
	if c, ok := shapeColors[s]; ok {
		return c
	}
	return core.ColorWhite
}

// viewport maps world coordinates to screen cells. It covers the field
// loosened by one block, which is as far as a corrected piece can reach.
type viewport struct {
	world core.AABB
	bs    float64
	inner core.Rect // Cells inside the frame
}

func (g *Game) viewport(dst *core.Screen) viewport {
	bs := g.cfg.Board.BlockSize
	world := g.piece.Field().Loosened(bs)
	size := world.Size()

	cols := int(math.Round(size.X/bs)) * colsPerBlock
	rows := int(math.Round(size.Y / bs))
	x := (dst.Width()-(cols+2))/2 + 1

	return viewport{
		world: world,
		bs:    bs,
		inner: core.NewRect(x, hudRows+1, cols, rows),
	}
}

// cell returns the screen cell of the left glyph of a block centred at c.
func (v viewport) cell(c core.Vec2) (int, int) {
	col := (c.X-v.world.Min.X)/v.bs*colsPerBlock - 1
	row := (c.Y-v.world.Min.Y)/v.bs - 0.5
	return v.inner.X + int(math.Floor(col+0.5)), v.inner.Y + int(math.Floor(row+0.5))
}

// Render draws the field frame, the blocks at their interpolated poses and
// the HUD into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	v := g.viewport(dst)
	need := v.inner.H + hudRows + 2
	if v.inner.W+2 > dst.Width() || need > dst.Height() {
		msg := fmt.Sprintf("Terminal too small (need %dx%d)", v.inner.W+2, need)
		dst.DrawTextColored((dst.Width()-len(msg))/2, dst.Height()/2, msg, core.ColorBrightYellow)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(v.inner.X-1, v.inner.Y-1, v.inner.W+2, v.inner.H+2), core.ColorGray)
	g.renderField(dst, v)
	g.renderBlocks(dst, v)

	if g.debug {
		g.renderDebug(dst, v)
	}
	if g.state.Paused {
		x := v.inner.X + (v.inner.W-len(pausedMessage))/2
		dst.DrawTextColored(x, v.inner.Y+v.inner.H/2, pausedMessage, core.ColorBrightYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	title := g.Title()
	dst.DrawTextColored((dst.Width()-len(title))/2, 0, title, core.ColorBrightYellow)

	last := "-"
	if m, ok := g.LastMove(); ok {
		last = fmt.Sprintf("%s (%s)", m.Action, m.Classification)
	}
	status := fmt.Sprintf("shape %s  moves %d  blocked %d  last %s",
		g.shape, g.state.Moves, g.state.Blocked, last)
	dst.DrawText((dst.Width()-len(status))/2, 1, status)
}

// renderField dots every block cell of the real field. The loosened margin
// around it stays blank.
func (g *Game) renderField(dst *core.Screen, v viewport) {
	field := g.piece.Field()
	half := v.bs / 2
	for y := field.Min.Y + half; y < field.Max.Y; y += v.bs {
		for x := field.Min.X + half; x < field.Max.X; x += v.bs {
			col, row := v.cell(core.V(x, y))
			dst.SetColored(col+1, row, fieldDot, core.ColorGray)
		}
	}
}

func (g *Game) renderBlocks(dst *core.Screen, v viewport) {
	color := ShapeColor(g.shape)
	for _, b := range g.piece.BlockViews() {
		col, row := v.cell(b.Center)
		if !v.inner.Contains(col, row) || !v.inner.Contains(col+1, row) {
			continue
		}
		dst.DrawTextColored(col, row, blockGlyphs, color)
	}
}

// renderDebug prints the logical piece box and the field box under the frame.
func (g *Game) renderDebug(dst *core.Screen, v viewport) {
	y := v.inner.Bottom() + 1
	if y+debugRows > dst.Height() {
		y = dst.Height() - debugRows
	}

	box := g.piece.BoundingBox().Rounded(2)
	field := g.piece.Field()
	pose := g.piece.State().Pose()

	lines := []string{
		fmt.Sprintf("piece min (%g, %g) size (%g, %g)", box.Min.X, box.Min.Y, box.Size().X, box.Size().Y),
		fmt.Sprintf("field min (%g, %g) size (%g, %g)", field.Min.X, field.Min.Y, field.Size().X, field.Size().Y),
		fmt.Sprintf("pose (%g, %g) %.0f deg", pose.Translation.X, pose.Translation.Y,
			pose.NormalizedAngle()*180/math.Pi),
		fmt.Sprintf("animating %t  tick %d", g.state.Animated, g.tick),
	}
	for i, line := range lines {
		dst.DrawTextColored(v.inner.X, y+i, line, core.ColorGray)
	}
}
