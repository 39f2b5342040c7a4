package pong

import "github.com/vovakirdan/pong/internal/geom"

// Ball is the circular ball. Its radius never changes; position and
// velocity are mutated every tick by the loop and by collision responses.
type Ball struct {
	field  Field
	pos    geom.Point
	radius float64
	dx, dy float64

	serveDX, serveDY float64
}

// NewBall creates a stationary ball at the field center.
// serveDX and serveDY give the velocity applied by StartMoving.
func NewBall(field Field, radius, serveDX, serveDY float64) *Ball {
	b := &Ball{
		field:   field,
		radius:  radius,
		serveDX: serveDX,
		serveDY: serveDY,
	}
	b.ResetToCenter()
	return b
}

// Position returns the ball center.
func (b *Ball) Position() geom.Point {
	return b.pos
}

// Velocity returns the per-tick displacement.
func (b *Ball) Velocity() (dx, dy float64) {
	return b.dx, b.dy
}

// Radius returns the ball radius.
func (b *Ball) Radius() float64 {
	return b.radius
}

// Circle returns the ball's current shape.
func (b *Ball) Circle() geom.Circle {
	return geom.Circle{Center: b.pos, R: b.radius}
}

// Moving reports whether the ball has a non-zero velocity.
func (b *Ball) Moving() bool {
	return b.dx != 0 || b.dy != 0
}

// StartMoving sets the velocity to the fixed serve vector.
func (b *Ball) StartMoving() {
	b.dx = b.serveDX
	b.dy = b.serveDY
}

// Advance moves the ball by its velocity. Bounds are not checked here.
func (b *Ball) Advance() {
	b.pos = b.pos.Add(b.dx, b.dy)
}

// ReflectHorizontal negates the horizontal velocity (paddle bounce).
func (b *Ball) ReflectHorizontal() {
	b.dx = -b.dx
}

// ReflectVertical negates the vertical velocity (wall bounce).
func (b *Ball) ReflectVertical() {
	b.dy = -b.dy
}

// ResetToCenter places the ball at the field center and stops it.
func (b *Ball) ResetToCenter() {
	b.pos = b.field.Center()
	b.dx = 0
	b.dy = 0
}

// place puts the ball at an arbitrary state; used by tests and snapshots.
func (b *Ball) place(pos geom.Point, dx, dy float64) {
	b.pos = pos
	b.dx = dx
	b.dy = dy
}
