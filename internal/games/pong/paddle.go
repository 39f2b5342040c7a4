package pong

import (
	"math"

	"github.com/vovakirdan/pong/internal/geom"
)

// Direction is a paddle's movement intent.
type Direction int

const (
	Stopped Direction = iota
	Up
	Down
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Stopped:
		return "stopped"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Paddle is a player's paddle. Its x position and size are fixed for its
// lifetime; only y and the movement intent change.
type Paddle struct {
	field  Field
	x, y   float64
	width  float64
	height float64
	speed  float64
	intent Direction
}

// NewPaddle creates a stopped paddle at column x, vertically centered.
func NewPaddle(field Field, x, width, height, speed float64) *Paddle {
	p := &Paddle{
		field:  field,
		x:      x,
		width:  width,
		height: height,
		speed:  speed,
	}
	p.ResetToCenter()
	return p
}

// X returns the left edge of the paddle.
func (p *Paddle) X() float64 {
	return p.x
}

// Y returns the top edge of the paddle.
func (p *Paddle) Y() float64 {
	return p.y
}

// Intent returns the current movement intent.
func (p *Paddle) Intent() Direction {
	return p.intent
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() geom.Rect {
	return geom.NewRect(p.x, p.y, p.width, p.height)
}

// SetIntent sets the movement intent applied by Advance.
func (p *Paddle) SetIntent(d Direction) {
	p.intent = d
}

// Advance moves the paddle one step in its intended direction.
// The result may lie outside the field until Clamp is applied.
func (p *Paddle) Advance() {
	switch p.intent {
	case Up:
		p.y -= p.speed
	case Down:
		p.y += p.speed
	}
}

// Clamp pulls the paddle back inside [0, field height - paddle height].
func (p *Paddle) Clamp() {
	b := p.field.Bounds()
	p.y = geom.ClampF(p.y, b.Y, b.Bottom()-p.height)
}

// ResetToCenter centers the paddle vertically and stops it.
func (p *Paddle) ResetToCenter() {
	p.y = math.Floor(p.field.Height/2) - math.Floor(p.height/2)
	p.intent = Stopped
}

// setY places the paddle; used by tests and snapshots.
func (p *Paddle) setY(y float64) {
	p.y = y
}
