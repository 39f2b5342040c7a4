package tui

import (
	"math"

	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
	"github.com/vovakirdan/pong/internal/geom"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	BallChar  = '●'
	VLineChar = '│'
	HLineChar = '─'
	DotChar   = '·'
)

// Big digits are used for text at least this large when the screen has
// at least minBigTextRows rows.
const (
	BigTextSize    = 40
	minBigTextRows = 15
)

// bigDigits is a 3x3 half-block font for scores.
var bigDigits = [10][3]string{
	{"█▀█", "█ █", "▀▀▀"},
	{"▀█ ", " █ ", "▀▀▀"},
	{"▀▀█", "█▀▀", "▀▀▀"},
	{"▀▀█", " ▀█", "▀▀▀"},
	{"█ █", "▀▀█", "  ▀"},
	{"█▀▀", "▀▀█", "▀▀▀"},
	{"█▀▀", "█▀█", "▀▀▀"},
	{"▀▀█", "  █", "  ▀"},
	{"█▀█", "█▀█", "▀▀▀"},
	{"█▀█", "▀▀█", "▀▀▀"},
}

// Canvas implements pong.Renderer on a terminal cell buffer by scaling the
// logical playfield onto the screen's cells.
type Canvas struct {
	screen *core.Screen
	field  pong.Field
}

// NewCanvas creates a canvas drawing field coordinates into screen.
func NewCanvas(screen *core.Screen, field pong.Field) *Canvas {
	return &Canvas{screen: screen, field: field}
}

var _ pong.Renderer = (*Canvas)(nil)

func (c *Canvas) scaleX() float64 {
	return float64(c.screen.Width()) / c.field.Width
}

func (c *Canvas) scaleY() float64 {
	return float64(c.screen.Height()) / c.field.Height
}

// col returns the cell column containing logical x.
func (c *Canvas) col(x float64) int {
	return int(math.Floor(x * c.scaleX()))
}

// row returns the cell row containing logical y.
func (c *Canvas) row(y float64) int {
	return int(math.Floor(y * c.scaleY()))
}

// Clear blanks the whole buffer. The terminal's own background stands in
// for the requested color.
func (c *Canvas) Clear(core.Color) {
	c.screen.Clear()
}

// DrawLine draws a one-cell-wide line between two points.
func (c *Canvas) DrawLine(from, to geom.Point, _ float64, color core.Color) {
	c0, r0 := c.col(from.X), c.row(from.Y)
	c1, r1 := c.col(to.X), c.row(to.Y)

	if c0 == c1 {
		c.screen.DrawVLine(c0, core.Min(r0, r1), abs(r1-r0)+1, VLineChar, color)
		return
	}

	ch := DotChar
	if r0 == r1 {
		ch = HLineChar
	}

	steps := core.Max(abs(c1-c0), abs(r1-r0))
	if steps == 0 {
		c.screen.Set(c0, r0, ch, color)
		return
	}
	for i := 0; i <= steps; i++ {
		x := c0 + (c1-c0)*i/steps
		y := r0 + (r1-r0)*i/steps
		c.screen.Set(x, y, ch, color)
	}
}

// DrawCircle fills every cell whose center lies inside the circle. A circle
// smaller than a cell is drawn as a single ball glyph.
func (c *Canvas) DrawCircle(center geom.Point, radius float64, color core.Color) {
	sx, sy := c.scaleX(), c.scaleY()
	filled := false

	for y := c.row(center.Y - radius); y <= c.row(center.Y+radius); y++ {
		for x := c.col(center.X - radius); x <= c.col(center.X+radius); x++ {
			dx := (float64(x)+0.5)/sx - center.X
			dy := (float64(y)+0.5)/sy - center.Y
			if dx*dx+dy*dy <= radius*radius {
				c.screen.Set(x, y, BlockChar, color)
				filled = true
			}
		}
	}

	if !filled {
		c.screen.Set(c.col(center.X), c.row(center.Y), BallChar, color)
	}
}

// DrawRect fills the cells covered by r, at least one cell in each direction.
func (c *Canvas) DrawRect(r geom.Rect, color core.Color) {
	x0, y0 := c.col(r.X), c.row(r.Y)
	x1 := core.Max(x0+1, int(math.Ceil(r.Right()*c.scaleX())))
	y1 := core.Max(y0+1, int(math.Ceil(r.Bottom()*c.scaleY())))
	c.screen.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), BlockChar, color)
}

// DrawText draws text centered on topCenter. Large numeric text is drawn
// with block digits when the screen is tall enough.
func (c *Canvas) DrawText(text string, topCenter geom.Point, size float64, color core.Color) {
	cx, y := c.col(topCenter.X), c.row(topCenter.Y)

	if size >= BigTextSize && c.screen.Height() >= minBigTextRows && isDigits(text) {
		c.drawBigDigits(text, cx, y, color)
		return
	}
	c.screen.DrawTextCentered(cx, y, text, color)
}

func (c *Canvas) drawBigDigits(text string, cx, y int, color core.Color) {
	const glyphW = 3
	width := len(text)*(glyphW+1) - 1
	x := cx - width/2

	for _, d := range text {
		glyph := bigDigits[d-'0']
		for line, s := range glyph {
			c.screen.DrawText(x, y+line, s, color)
		}
		x += glyphW + 1
	}
}

// Present is a no-op: the Bubble Tea model renders the buffer in View.
func (c *Canvas) Present() {}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
