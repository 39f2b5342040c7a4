package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
	"github.com/vovakirdan/pong/internal/match"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel() (Model, *pong.Game) {
	g := pong.New(config.DefaultPongConfig())
	m := NewModel(g, nil, Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		KeyHold: 200 * time.Millisecond,
	})
	m.now = func() time.Time { return t0 }
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelScreenLeavesRoomForHelp(t *testing.T) {
	m, _ := newTestModel()

	if m.screen.Width() != 80 || m.screen.Height() != 23 {
		t.Errorf("screen = %dx%d, want 80x23", m.screen.Width(), m.screen.Height())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("after resize screen = %dx%d, want 120x39", m.screen.Width(), m.screen.Height())
	}

	m, _ = update(t, m, runeKey('?'))
	if m.screen.Height() != 38 {
		t.Errorf("full help screen height = %d, want 38", m.screen.Height())
	}
}

func TestModelServeOnTick(t *testing.T) {
	m, g := newTestModel()

	m, _ = update(t, m, runeKey('p'))
	if g.Phase() != pong.PhaseIdle {
		t.Fatal("key press must not reach the game before the tick")
	}

	m, cmd := update(t, m, TickMsg(t0))
	if g.Phase() != pong.PhasePlaying {
		t.Errorf("Phase = %v, want playing", g.Phase())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.inputFrame.Len() != 0 {
		t.Errorf("input frame not cleared: %d events", m.inputFrame.Len())
	}
}

func TestModelAutoRepeatPushesOneKeyDown(t *testing.T) {
	m, _ := newTestModel()

	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, runeKey('w'))

	if m.inputFrame.Len() != 1 {
		t.Errorf("queued %d events, want 1", m.inputFrame.Len())
	}
}

func TestModelSyntheticRelease(t *testing.T) {
	m, g := newTestModel()
	left := g.Paddle(core.Player1)
	right := g.Paddle(core.Player2)

	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	if left.Intent() != pong.Up || right.Intent() != pong.Down {
		t.Fatalf("intents = %v %v, want up down", left.Intent(), right.Intent())
	}

	// A repeat of the down arrow keeps the right paddle held.
	m.now = func() time.Time { return t0.Add(150 * time.Millisecond) }
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, _ = update(t, m, TickMsg(t0.Add(250*time.Millisecond)))
	if left.Intent() != pong.Stopped {
		t.Errorf("left intent = %v, want stopped after hold expired", left.Intent())
	}
	if right.Intent() != pong.Down {
		t.Errorf("right intent = %v, want down while repeating", right.Intent())
	}

	m, _ = update(t, m, TickMsg(t0.Add(400*time.Millisecond)))
	if right.Intent() != pong.Stopped {
		t.Errorf("right intent = %v, want stopped", right.Intent())
	}
}

func TestModelKeyHeldForPressTick(t *testing.T) {
	g := pong.New(config.DefaultPongConfig())
	m := NewModel(g, nil, Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
	})
	m.now = func() time.Time { return t0 }
	left := g.Paddle(core.Player1)

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(t0))
	before := left.Y()

	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	if got, want := left.Y(), before-10; got != want {
		t.Errorf("paddle y after press tick = %v, want %v", got, want)
	}

	m, _ = update(t, m, TickMsg(t0.Add(33*time.Millisecond)))
	if left.Intent() != pong.Stopped {
		t.Errorf("intent = %v, want stopped on the following tick", left.Intent())
	}
	if got, want := left.Y(), before-10; got != want {
		t.Errorf("paddle y after release = %v, want %v", got, want)
	}
}

func TestModelQuit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", runeKey('q')},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, g := newTestModel()

			m, cmd := update(t, m, tt.msg)

			if cmd == nil {
				t.Fatal("quit should return a command")
			}
			if !m.quitting {
				t.Error("model should be quitting")
			}
			if !g.State().Quit {
				t.Error("game should see the quit event")
			}
			if m.View() != "" {
				t.Error("View should be empty while quitting")
			}
		})
	}
}

func TestModelFeedsTracker(t *testing.T) {
	g := pong.New(config.DefaultPongConfig())
	tracker := match.NewTracker(nil, nil)
	m := NewModel(g, tracker, Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		KeyHold: 200 * time.Millisecond,
	})

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(t0))

	if _, ok := tracker.Current(); !ok {
		t.Error("tracker should see the serve")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel()

	view := m.View()

	lines := strings.Split(view, "\n")
	if len(lines) != 24 {
		t.Errorf("view has %d lines, want 24", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "serve") {
		t.Errorf("help line = %q, want key help", lines[len(lines)-1])
	}
}

func TestKeyMapMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Key
	}{
		{runeKey('p'), core.KeyServe},
		{runeKey('r'), core.KeyRestart},
		{runeKey('w'), core.KeyPaddle1Up},
		{runeKey('s'), core.KeyPaddle1Down},
		{tea.KeyMsg{Type: tea.KeyUp}, core.KeyPaddle2Up},
		{tea.KeyMsg{Type: tea.KeyDown}, core.KeyPaddle2Down},
		{runeKey('x'), core.KeyNone},
		{runeKey('q'), core.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}
