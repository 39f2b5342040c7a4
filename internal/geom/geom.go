// Package geom provides the continuous geometry used by the simulation:
// points, rectangles and circles in screen coordinates, plus the overlap
// predicates the collision checks are built from. All functions are pure.
package geom

// Point is a position in screen coordinates (y grows downwards).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Circle is a disc given by its center and radius.
type Circle struct {
	Center Point
	R      float64
}

// NewCircle creates a circle centered at (x, y).
func NewCircle(x, y, r float64) Circle {
	return Circle{Center: Point{X: x, Y: y}, R: r}
}

// Left returns the x-coordinate of the leftmost point.
func (c Circle) Left() float64 { return c.Center.X - c.R }

// Right returns the x-coordinate of the rightmost point.
func (c Circle) Right() float64 { return c.Center.X + c.R }

// Top returns the y-coordinate of the topmost point.
func (c Circle) Top() float64 { return c.Center.Y - c.R }

// Bottom returns the y-coordinate of the bottommost point.
func (c Circle) Bottom() float64 { return c.Center.Y + c.R }

// VerticalOverlap reports whether the vertical extents of c and r overlap.
// Both comparisons are strict, so touching extents do not overlap.
func VerticalOverlap(c Circle, r Rect) bool {
	return c.Bottom() > r.Y && c.Top() < r.Bottom()
}

// ReachedRightEdge reports whether the left side of c has reached or
// passed the right edge of r.
func ReachedRightEdge(c Circle, r Rect) bool {
	return c.Left() <= r.Right()
}

// ReachedLeftEdge reports whether the right side of c has reached or
// passed the left edge of r.
func ReachedLeftEdge(c Circle, r Rect) bool {
	return c.Right() >= r.X
}

// TouchesHorizontalBounds reports whether c touches or crosses the top
// boundary (y = 0) or the bottom boundary (y = height).
func TouchesHorizontalBounds(c Circle, height float64) bool {
	return c.Top() <= 0 || c.Bottom() >= height
}

// BeyondRight reports whether c lies entirely past x = width.
func BeyondRight(c Circle, width float64) bool {
	return c.Left() >= width
}

// BeyondLeft reports whether c lies entirely past x = 0.
func BeyondLeft(c Circle) bool {
	return c.Right() <= 0
}

// ClampF restricts a float64 value to be within [lo, hi].
// When lo > hi the result is lo.
func ClampF(val, lo, hi float64) float64 {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}
