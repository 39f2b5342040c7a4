package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
	"github.com/vovakirdan/pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Pong in the terminal.

Controls:
  W/S        - Player 1 up/down
  Up/Down    - Player 2 up/down
  P          - Serve
  R          - Restart (reset scores)
  ?          - Toggle help
  Q/Esc      - Quit

Terminals only report key presses. A paddle keeps moving while its key
auto-repeats and stops terminal.key_hold_ms after the last repeat. Keep
the hold above your keyboard's first-repeat delay, or a held paddle will
pause briefly before auto-repeat starts.

Examples:
  pong play
  pong play --config ./pong.yaml --log-file /tmp/pong.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// The TUI owns the terminal, so logs are dropped unless --log-file is set.
	s, err := openSession(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game := pong.New(s.cfg)
	s.logger.Info("terminal session started", "cols", width, "rows", height)

	err = tui.Run(game, s.tracker, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: s.cfg.Gameplay.TickRate,
		},
		KeyHold: time.Duration(s.cfg.Terminal.KeyHoldMS) * time.Millisecond,
		Logger:  s.logger,
	})
	if err != nil {
		s.logger.Error("terminal session failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		s.Close()
		os.Exit(1)
	}

	final := game.State()
	fmt.Printf("Final score: %d - %d\n", final.Score1, final.Score2)
}
