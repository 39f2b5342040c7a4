package pong

import (
	"math"

	"github.com/vovakirdan/pong/internal/geom"
)

// Field holds the immutable playfield dimensions shared read-only by the
// ball, the paddles and the collision checks.
type Field struct {
	Width  float64
	Height float64
}

// Center returns the playfield center. Coordinates are halved with
// truncation so the ball rests on whole units.
func (f Field) Center() geom.Point {
	return geom.Pt(math.Floor(f.Width/2), math.Floor(f.Height/2))
}

// Bounds returns the playfield as a rectangle anchored at the origin.
func (f Field) Bounds() geom.Rect {
	return geom.NewRect(0, 0, f.Width, f.Height)
}
