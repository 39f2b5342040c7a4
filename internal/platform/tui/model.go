package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
	"github.com/vovakirdan/pong/internal/match"
)

// movementKeys lists the keys tracked for synthetic releases, in the
// order their releases are queued.
var movementKeys = []core.Key{
	core.KeyPaddle1Up,
	core.KeyPaddle1Down,
	core.KeyPaddle2Up,
	core.KeyPaddle2Down,
}

// Options configures a terminal session.
type Options struct {
	Runtime core.RuntimeConfig
	// KeyHold is how long a movement key counts as held after its last
	// press or auto-repeat. Terminals report presses only.
	KeyHold time.Duration
	Logger  *log.Logger
}

// Model is the Bubble Tea model for a game session.
type Model struct {
	game    *pong.Game
	tracker *match.Tracker
	logger  *log.Logger

	screen *core.Screen
	canvas *Canvas
	keys   KeyMap
	help   help.Model

	config     core.RuntimeConfig
	keyHold    time.Duration
	inputFrame core.InputFrame
	held       map[core.Key]time.Time
	now        func() time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// tracker may be nil.
func NewModel(game *pong.Game, tracker *match.Tracker, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		tracker:    tracker,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       h,
		config:     cfg,
		keyHold:    opts.KeyHold,
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Key]time.Time),
		now:        time.Now,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.playRows(cfg.ScreenH))
	m.canvas = NewCanvas(m.screen, game.Field())
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the event for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.inputFrame.Push(core.Quit())
		m.step()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.playRows(m.config.ScreenH))
		return m, nil
	}

	k := m.keys.MapKey(msg)
	if k == core.KeyNone {
		return m, nil
	}

	if !k.IsMovement() {
		m.inputFrame.Push(core.KeyDown(k))
		return m, nil
	}

	// Auto-repeat refreshes the hold without another key-down.
	if _, ok := m.held[k]; !ok {
		m.inputFrame.Push(core.KeyDown(k))
	}
	m.held[k] = m.now()
	return m, nil
}

// handleResize processes window resize events.
// The playfield keeps its logical size; only the cell scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.playRows(msg.Height))
	return m, nil
}

// handleTick releases expired keys and runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.releaseExpired(now)

	if m.step().State.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// releaseExpired queues a key-up for every movement key that has not been
// pressed or repeated within the hold window. A key pressed since the last
// tick is kept for at least that tick.
func (m *Model) releaseExpired(now time.Time) {
	for _, k := range movementKeys {
		last, ok := m.held[k]
		if !ok || now.Sub(last) < m.keyHold || m.queuedDown(k) {
			continue
		}
		delete(m.held, k)
		m.inputFrame.Push(core.KeyUp(k))
		m.logger.Debug("synthetic key release", "key", k)
	}
}

func (m *Model) queuedDown(k core.Key) bool {
	for _, ev := range m.inputFrame.Events {
		if ev.Kind == core.EventKeyDown && ev.Key == k {
			return true
		}
	}
	return false
}

// step feeds the queued events to the game and clears the frame.
func (m *Model) step() pong.StepResult {
	result := m.game.Step(m.inputFrame)
	if m.tracker != nil {
		m.tracker.Observe(result)
	}
	m.inputFrame.Clear()
	return result
}

// playRows returns how many rows of a terminal of the given height are
// left for the playfield below the help bar.
func (m Model) playRows(height int) int {
	helpRows := 1
	if m.help.ShowAll {
		helpRows = 0
		for _, col := range m.keys.FullHelp() {
			helpRows = core.Max(helpRows, len(col))
		}
	}
	return core.Max(height-helpRows, 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game and blocks until the player
// quits. Any match still in progress is closed on exit.
func Run(game *pong.Game, tracker *match.Tracker, opts Options) error {
	model := NewModel(game, tracker, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	if tracker != nil {
		tracker.Close()
	}
	return err
}
