package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pong/internal/core"
)

// KeyMap defines the key bindings for a game session.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Serve       key.Binding
	Restart     key.Binding
	Paddle1Up   key.Binding
	Paddle1Down key.Binding
	Paddle2Up   key.Binding
	Paddle2Down key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Serve, k.Restart, k.Paddle1Up, k.Paddle1Down, k.Paddle2Up, k.Paddle2Down, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Paddle1Up, k.Paddle1Down},
		{k.Paddle2Up, k.Paddle2Down},
		{k.Serve, k.Restart},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the classic two-player layout.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Serve: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "serve"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Paddle1Up: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "P1 up"),
		),
		Paddle1Down: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "P1 down"),
		),
		Paddle2Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "P2 up"),
		),
		Paddle2Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "P2 down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game key.
// Returns KeyNone for keys the game does not use.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Serve):
		return core.KeyServe
	case key.Matches(msg, k.Restart):
		return core.KeyRestart
	case key.Matches(msg, k.Paddle1Up):
		return core.KeyPaddle1Up
	case key.Matches(msg, k.Paddle1Down):
		return core.KeyPaddle1Down
	case key.Matches(msg, k.Paddle2Up):
		return core.KeyPaddle2Up
	case key.Matches(msg, k.Paddle2Down):
		return core.KeyPaddle2Down
	}
	return core.KeyNone
}
