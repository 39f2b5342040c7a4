// Package desktop runs the game in a native window with ebiten.
// Unlike a terminal, ebiten reports real key releases, so paddles stop
// the moment their key is let go.
package desktop

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
	"github.com/vovakirdan/pong/internal/match"
)

// binding maps a physical key to a game key.
type binding struct {
	key  ebiten.Key
	game core.Key
}

// bindings is ordered; events within a tick are queued in this order.
var bindings = []binding{
	{ebiten.KeyP, core.KeyServe},
	{ebiten.KeyR, core.KeyRestart},
	{ebiten.KeyW, core.KeyPaddle1Up},
	{ebiten.KeyS, core.KeyPaddle1Down},
	{ebiten.KeyArrowUp, core.KeyPaddle2Up},
	{ebiten.KeyArrowDown, core.KeyPaddle2Down},
}

// Options configures a desktop session.
type Options struct {
	Title    string
	Scale    float64
	TickRate int
	Logger   *log.Logger
}

// Game adapts a pong.Game to ebiten.Game.
type Game struct {
	game     *pong.Game
	tracker  *match.Tracker
	logger   *log.Logger
	renderer Renderer
	frame    core.InputFrame
}

var _ ebiten.Game = (*Game)(nil)

// NewGame wraps game for ebiten. tracker may be nil.
func NewGame(game *pong.Game, tracker *match.Tracker, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		game:    game,
		tracker: tracker,
		logger:  logger,
		frame:   core.NewInputFrame(),
	}
}

// Update collects this tick's key edges and runs one simulation step.
// Returns ebiten.Termination once the game has quit.
func (g *Game) Update() error {
	for _, ev := range collectEvents(inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased) {
		g.frame.Push(ev)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed() {
		g.frame.Push(core.Quit())
	}

	result := g.game.Step(g.frame)
	g.frame.Clear()
	if g.tracker != nil {
		g.tracker.Observe(result)
	}

	if result.State.Quit {
		g.logger.Debug("window closed")
		return ebiten.Termination
	}
	return nil
}

// collectEvents turns key edges into game events in binding order.
func collectEvents(pressed, released func(ebiten.Key) bool) []core.Event {
	var events []core.Event
	for _, b := range bindings {
		if pressed(b.key) {
			events = append(events, core.KeyDown(b.game))
		}
		if released(b.key) {
			events = append(events, core.KeyUp(b.game))
		}
	}
	return events
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	g.game.Render(&g.renderer)
}

// Layout keeps the logical playfield size regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	f := g.game.Field()
	return int(f.Width), int(f.Height)
}

// Run opens the window and blocks until it is closed. Any match still in
// progress is closed on exit.
func Run(game *pong.Game, tracker *match.Tracker, opts Options) error {
	f := game.Field()
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowSize(int(f.Width*scale), int(f.Height*scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	err := ebiten.RunGame(NewGame(game, tracker, opts.Logger))
	if tracker != nil {
		tracker.Close()
	}
	return err
}
