package pong

import (
	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/geom"
)

// Renderer receives drawing commands in logical playfield coordinates.
// Platforms implement it for their own output surface.
type Renderer interface {
	Clear(c core.Color)
	DrawLine(from, to geom.Point, width float64, c core.Color)
	DrawCircle(center geom.Point, radius float64, c core.Color)
	DrawRect(r geom.Rect, c core.Color)
	// DrawText draws text horizontally centered on topCenter.X with its
	// top edge at topCenter.Y. size is the nominal glyph height.
	DrawText(text string, topCenter geom.Point, size float64, c core.Color)
	Present()
}

// Layout constants for the non-entity parts of the frame.
const (
	NetWidth      = 5
	ScoreTop      = 15
	ScoreTextSize = 80
	HintTextSize  = 20
	IdleHint      = "P: serve   R: restart"
)

// Render draws the current frame: background, net, ball, paddles, scores
// and, while Idle, a short key hint.
func (g *Game) Render(r Renderer) {
	w, h := g.field.Width, g.field.Height

	r.Clear(core.ColorBlack)
	r.DrawLine(geom.Pt(w/2, 0), geom.Pt(w/2, h), NetWidth, core.ColorWhite)

	r.DrawCircle(g.ball.Position(), g.ball.Radius(), core.ColorWhite)
	r.DrawRect(g.left.Bounds(), core.ColorWhite)
	r.DrawRect(g.right.Bounds(), core.ColorWhite)

	r.DrawText(g.score1.String(), geom.Pt(w/4, ScoreTop), ScoreTextSize, core.ColorWhite)
	r.DrawText(g.score2.String(), geom.Pt(w-w/4, ScoreTop), ScoreTextSize, core.ColorWhite)

	if g.phase == PhaseIdle {
		r.DrawText(IdleHint, geom.Pt(w/2, h*3/4), HintTextSize, core.ColorGray)
	}

	r.Present()
}
