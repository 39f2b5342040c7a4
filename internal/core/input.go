package core

// PlayerID identifies one of the two players.
// Player1 owns the left paddle, Player2 the right one.
type PlayerID int

const (
	PlayerNone PlayerID = iota
	Player1
	Player2
)

// String returns a human-readable name for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "None"
	}
}

// Key is a semantic game key, abstracted from physical key codes.
// Platforms translate their own key events into Keys.
type Key int

const (
	KeyNone        Key = iota
	KeyServe           // P - launch the ball
	KeyRestart         // R - reset ball, paddles and scores
	KeyPaddle1Up       // W
	KeyPaddle1Down     // S
	KeyPaddle2Up       // Up arrow
	KeyPaddle2Down     // Down arrow
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyServe:
		return "Serve"
	case KeyRestart:
		return "Restart"
	case KeyPaddle1Up:
		return "Paddle1Up"
	case KeyPaddle1Down:
		return "Paddle1Down"
	case KeyPaddle2Up:
		return "Paddle2Up"
	case KeyPaddle2Down:
		return "Paddle2Down"
	default:
		return "Unknown"
	}
}

// Owner returns the player whose paddle the key moves, or PlayerNone.
func (k Key) Owner() PlayerID {
	switch k {
	case KeyPaddle1Up, KeyPaddle1Down:
		return Player1
	case KeyPaddle2Up, KeyPaddle2Down:
		return Player2
	default:
		return PlayerNone
	}
}

// IsMovement reports whether the key moves a paddle.
func (k Key) IsMovement() bool {
	return k.Owner() != PlayerNone
}

// EventKind distinguishes the discrete input events.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventQuit
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is a single input event produced by a platform.
type Event struct {
	Kind EventKind
	Key  Key
}

// KeyDown returns a key-down event for k.
func KeyDown(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// KeyUp returns a key-up event for k.
func KeyUp(k Key) Event { return Event{Kind: EventKeyUp, Key: k} }

// Quit returns a quit event.
func Quit() Event { return Event{Kind: EventQuit} }

// InputFrame is the ordered queue of events collected between two ticks.
// The platform pushes events as they arrive and the game drains the frame
// at the start of the next tick.
type InputFrame struct {
	Events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(ev Event) {
	f.Events = append(f.Events, ev)
}

// Len returns the number of queued events.
func (f InputFrame) Len() int {
	return len(f.Events)
}

// Clear empties the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
