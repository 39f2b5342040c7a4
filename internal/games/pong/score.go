package pong

import "strconv"

// Score is a player's point counter.
type Score struct {
	points int
}

// Points returns the current count.
func (s Score) Points() int {
	return s.points
}

// Increment adds exactly one point.
func (s *Score) Increment() {
	s.points++
}

// Reset sets the count back to zero.
func (s *Score) Reset() {
	s.points = 0
}

// String returns the count as display text.
func (s Score) String() string {
	return strconv.Itoa(s.points)
}
