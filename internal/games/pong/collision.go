package pong

import "github.com/vovakirdan/pong/internal/geom"

// CollisionManager is a stateless set of predicates over the ball, the
// paddles and the field. None of its methods mutate their arguments.
type CollisionManager struct {
	field Field
}

// NewCollisionManager creates the collision predicates for a field.
func NewCollisionManager(field Field) CollisionManager {
	return CollisionManager{field: field}
}

// BallHitsLeftPaddle reports whether the ball overlaps the left paddle
// vertically and its left side has reached the paddle's right face.
func (CollisionManager) BallHitsLeftPaddle(b *Ball, p *Paddle) bool {
	c, r := b.Circle(), p.Bounds()
	return geom.VerticalOverlap(c, r) && geom.ReachedRightEdge(c, r)
}

// BallHitsRightPaddle reports whether the ball overlaps the right paddle
// vertically and its right side has reached the paddle's left face.
func (CollisionManager) BallHitsRightPaddle(b *Ball, p *Paddle) bool {
	c, r := b.Circle(), p.Bounds()
	return geom.VerticalOverlap(c, r) && geom.ReachedLeftEdge(c, r)
}

// BallHitsWall reports whether the ball touches the top or bottom wall.
func (m CollisionManager) BallHitsWall(b *Ball) bool {
	return geom.TouchesHorizontalBounds(b.Circle(), m.field.Height)
}

// GoalForRightPlayer reports whether the ball has left the field on the
// right side, past the right player. The point goes to Player 1.
func (m CollisionManager) GoalForRightPlayer(b *Ball) bool {
	return geom.BeyondRight(b.Circle(), m.field.Width)
}

// GoalForLeftPlayer reports whether the ball has left the field on the
// left side, past the left player. The point goes to Player 2.
func (CollisionManager) GoalForLeftPlayer(b *Ball) bool {
	return geom.BeyondLeft(b.Circle())
}
