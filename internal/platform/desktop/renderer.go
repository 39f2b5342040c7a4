package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
	"github.com/vovakirdan/pong/internal/geom"
)

// faceHeight is the nominal glyph height of the bitmap font.
const faceHeight = 13

var face = text.NewGoXFace(basicfont.Face7x13)

// Renderer implements pong.Renderer on an ebiten image. The image is
// expected to have the playfield's logical size; ebiten scales it to the
// window.
type Renderer struct {
	dst *ebiten.Image
}

var _ pong.Renderer = (*Renderer)(nil)

// SetTarget sets the image the next frame is drawn into.
func (r *Renderer) SetTarget(dst *ebiten.Image) {
	r.dst = dst
}

// Clear fills the whole image.
func (r *Renderer) Clear(c core.Color) {
	r.dst.Fill(toRGBA(c))
}

// DrawLine strokes a straight line.
func (r *Renderer) DrawLine(from, to geom.Point, width float64, c core.Color) {
	vector.StrokeLine(r.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), toRGBA(c), false)
}

// DrawCircle fills a circle.
func (r *Renderer) DrawCircle(center geom.Point, radius float64, c core.Color) {
	vector.FillCircle(r.dst, float32(center.X), float32(center.Y), float32(radius), toRGBA(c), true)
}

// DrawRect fills a rectangle.
func (r *Renderer) DrawRect(rect geom.Rect, c core.Color) {
	vector.FillRect(r.dst, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), toRGBA(c), false)
}

// DrawText draws text horizontally centered on topCenter, scaling the
// bitmap font so its glyphs are size units tall.
func (r *Renderer) DrawText(s string, topCenter geom.Point, size float64, c core.Color) {
	scale := size / faceHeight

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(topCenter.X, topCenter.Y)
	op.ColorScale.ScaleWithColor(toRGBA(c))
	text.Draw(r.dst, s, face, op)
}

// Present is a no-op: ebiten presents the image after Draw returns.
func (r *Renderer) Present() {}

func toRGBA(c core.Color) color.RGBA {
	red, green, blue, alpha := c.RGBA()
	return color.RGBA{R: red, G: green, B: blue, A: alpha}
}
