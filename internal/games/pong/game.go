// Package pong implements two-player Pong on a fixed logical playfield.
// Player 1 controls the left paddle, Player 2 the right one.
//
// The game is a fixed-tick simulation: platforms collect input events into
// a core.InputFrame and call Step once per tick, then call Render with a
// platform-specific Renderer.
package pong

import (
	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
)

// Phase is the state machine position of the game.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// EventType identifies something that happened during a tick.
type EventType int

const (
	EventServed EventType = iota
	EventRestarted
	EventPaddleBounce
	EventWallBounce
	EventGoal
	EventQuit
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventServed:
		return "served"
	case EventRestarted:
		return "restarted"
	case EventPaddleBounce:
		return "paddle_bounce"
	case EventWallBounce:
		return "wall_bounce"
	case EventGoal:
		return "goal"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// GameEvent is emitted by the game for observers such as the match tracker.
// Player is the paddle owner for bounces and the scorer for goals.
type GameEvent struct {
	Type   EventType
	Player core.PlayerID
	Tick   uint64
}

// State is the externally visible game state.
type State struct {
	Phase  Phase
	Score1 int
	Score2 int
	Tick   uint64
	Quit   bool
}

// StepResult contains the state after a tick and the events it produced.
type StepResult struct {
	State  State
	Events []GameEvent
}

// Game owns every entity of a Pong session.
type Game struct {
	cfg       config.PongConfig
	field     Field
	collision CollisionManager

	ball  *Ball
	left  *Paddle // Player 1
	right *Paddle // Player 2

	score1 Score
	score2 Score

	phase  Phase
	tick   uint64
	quit   bool
	events []GameEvent
}

// New creates a game in the Idle phase with both scores at zero.
func New(cfg config.PongConfig) *Game {
	field := Field{Width: cfg.Screen.Width, Height: cfg.Screen.Height}
	p := cfg.Paddles

	g := &Game{
		cfg:       cfg,
		field:     field,
		collision: NewCollisionManager(field),
		ball:      NewBall(field, cfg.Ball.Radius, cfg.Ball.SpeedX, cfg.Ball.SpeedY),
		left:      NewPaddle(field, p.Offset, p.Width, p.Height, p.Speed),
		right:     NewPaddle(field, field.Width-p.Width-p.Offset, p.Width, p.Height, p.Speed),
	}
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Field returns the playfield dimensions.
func (g *Game) Field() Field {
	return g.field
}

// Ball returns the ball. Callers must treat it as read-only.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Paddle returns the paddle owned by player, or nil for PlayerNone.
func (g *Game) Paddle(player core.PlayerID) *Paddle {
	switch player {
	case core.Player1:
		return g.left
	case core.Player2:
		return g.right
	default:
		return nil
	}
}

// Score returns the score of player.
func (g *Game) Score(player core.PlayerID) Score {
	switch player {
	case core.Player1:
		return g.score1
	case core.Player2:
		return g.score2
	default:
		return Score{}
	}
}

// Reset returns the game to its initial state: Idle, ball centered and
// stopped, paddles centered and stopped, scores zero.
func (g *Game) Reset() {
	g.ball.ResetToCenter()
	g.left.ResetToCenter()
	g.right.ResetToCenter()
	g.score1.Reset()
	g.score2.Reset()
	g.phase = PhaseIdle
	g.tick = 0
	g.quit = false
	g.events = nil
}

// HandleEvent applies a single input event. Events that arrive outside
// Step are reported with the next StepResult.
func (g *Game) HandleEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventQuit:
		g.quit = true
		g.emit(EventQuit, core.PlayerNone)
	case core.EventKeyDown:
		g.keyDown(ev.Key)
	case core.EventKeyUp:
		g.keyUp(ev.Key)
	}
}

func (g *Game) keyDown(k core.Key) {
	switch k {
	case core.KeyServe:
		g.ball.StartMoving()
		g.phase = PhasePlaying
		g.emit(EventServed, core.PlayerNone)
	case core.KeyRestart:
		g.ball.ResetToCenter()
		g.left.ResetToCenter()
		g.right.ResetToCenter()
		g.score1.Reset()
		g.score2.Reset()
		g.phase = PhaseIdle
		g.emit(EventRestarted, core.PlayerNone)
	case core.KeyPaddle1Up:
		g.left.SetIntent(Up)
	case core.KeyPaddle1Down:
		g.left.SetIntent(Down)
	case core.KeyPaddle2Up:
		g.right.SetIntent(Up)
	case core.KeyPaddle2Down:
		g.right.SetIntent(Down)
	}
}

func (g *Game) keyUp(k core.Key) {
	if g.cfg.Compat.ReleaseStopsBoth {
		g.left.SetIntent(Stopped)
		g.right.SetIntent(Stopped)
		return
	}

	p := g.Paddle(k.Owner())
	if p == nil {
		return
	}
	// Releasing W while S is held keeps the paddle moving down.
	if p.Intent() == keyDirection(k) {
		p.SetIntent(Stopped)
	}
}

func keyDirection(k core.Key) Direction {
	switch k {
	case core.KeyPaddle1Up, core.KeyPaddle2Up:
		return Up
	case core.KeyPaddle1Down, core.KeyPaddle2Down:
		return Down
	default:
		return Stopped
	}
}

// Step drains the frame's events in order and advances the simulation by
// one tick. Nothing moves while the game is Idle.
func (g *Game) Step(in core.InputFrame) StepResult {
	for _, ev := range in.Events {
		g.HandleEvent(ev)
	}

	g.tick++

	if g.phase == PhasePlaying && !g.quit {
		g.update()
	}

	events := g.events
	g.events = nil
	return StepResult{State: g.State(), Events: events}
}

// update runs the Playing phase of a tick.
func (g *Game) update() {
	g.ball.Advance()
	g.movePaddle(g.left)
	g.movePaddle(g.right)

	if g.collision.BallHitsLeftPaddle(g.ball, g.left) {
		g.ball.ReflectHorizontal()
		g.emit(EventPaddleBounce, core.Player1)
	}
	if g.collision.BallHitsRightPaddle(g.ball, g.right) {
		g.ball.ReflectHorizontal()
		g.emit(EventPaddleBounce, core.Player2)
	}
	if g.collision.BallHitsWall(g.ball) {
		g.ball.ReflectVertical()
		g.emit(EventWallBounce, core.PlayerNone)
	}

	switch {
	case g.collision.GoalForRightPlayer(g.ball):
		g.goal(core.Player1)
	case g.collision.GoalForLeftPlayer(g.ball):
		g.goal(core.Player2)
	}
}

func (g *Game) movePaddle(p *Paddle) {
	if g.cfg.Compat.ClampBeforeAdvance {
		p.Clamp()
		p.Advance()
		return
	}
	p.Advance()
	p.Clamp()
}

// goal credits scorer and puts the game back into Idle with scores kept.
func (g *Game) goal(scorer core.PlayerID) {
	if scorer == core.Player1 {
		g.score1.Increment()
	} else {
		g.score2.Increment()
	}
	g.ball.ResetToCenter()
	g.left.ResetToCenter()
	g.right.ResetToCenter()
	g.phase = PhaseIdle
	g.emit(EventGoal, scorer)
}

func (g *Game) emit(t EventType, player core.PlayerID) {
	g.events = append(g.events, GameEvent{Type: t, Player: player, Tick: g.tick})
}

// State returns the current game state.
func (g *Game) State() State {
	return State{
		Phase:  g.phase,
		Score1: g.score1.Points(),
		Score2: g.score2.Points(),
		Tick:   g.tick,
		Quit:   g.quit,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}
