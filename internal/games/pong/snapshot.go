package pong

import (
	"math"

	"github.com/vovakirdan/pong/internal/geom"
)

// Snapshot contains the complete simulation state of a game.
// Uses primitive types only so snapshots compare with ==.
type Snapshot struct {
	Tick    uint64
	Phase   Phase
	BallX   float64
	BallY   float64
	BallDX  float64
	BallDY  float64
	LeftY   float64
	RightY  float64
	LeftIn  Direction
	RightIn Direction
	Score1  int
	Score2  int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	pos := g.ball.Position()
	dx, dy := g.ball.Velocity()
	return Snapshot{
		Tick:    g.tick,
		Phase:   g.phase,
		BallX:   pos.X,
		BallY:   pos.Y,
		BallDX:  dx,
		BallDY:  dy,
		LeftY:   g.left.Y(),
		RightY:  g.right.Y(),
		LeftIn:  g.left.Intent(),
		RightIn: g.right.Intent(),
		Score1:  g.score1.Points(),
		Score2:  g.score2.Points(),
	}
}

// ApplySnapshot restores the game state from a snapshot.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tick = snap.Tick
	g.phase = snap.Phase
	g.ball.place(geom.Pt(snap.BallX, snap.BallY), snap.BallDX, snap.BallDY)
	g.left.setY(snap.LeftY)
	g.right.setY(snap.RightY)
	g.left.SetIntent(snap.LeftIn)
	g.right.SetIntent(snap.RightIn)
	g.score1 = Score{points: snap.Score1}
	g.score2 = Score{points: snap.Score2}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallDX)
	h = h*31 + math.Float64bits(snap.BallDY)
	h = h*31 + math.Float64bits(snap.LeftY)
	h = h*31 + math.Float64bits(snap.RightY)
	h = h*31 + uint64(snap.LeftIn)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RightIn) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score1)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score2)  //#nosec G115 -- hash computation
	return h
}
