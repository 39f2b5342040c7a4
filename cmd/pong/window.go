package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong/internal/games/pong"
	"github.com/vovakirdan/pong/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play Pong in a native window.

Controls:
  W/S        - Player 1 up/down
  Up/Down    - Player 2 up/down
  P          - Serve
  R          - Restart (reset scores)
  Esc        - Quit

The window size is the field size times window.scale from the config.

Examples:
  pong window
  pong window --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	s, err := openSession(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	game := pong.New(s.cfg)
	s.logger.Info("window session started", "title", s.cfg.Window.Title, "scale", s.cfg.Window.Scale)

	err = desktop.Run(game, s.tracker, desktop.Options{
		Title:    s.cfg.Window.Title,
		Scale:    s.cfg.Window.Scale,
		TickRate: s.cfg.Gameplay.TickRate,
		Logger:   s.logger,
	})
	if err != nil {
		s.logger.Error("window session failed", "err", err)
		s.Close()
		os.Exit(1)
	}

	final := game.State()
	s.logger.Info("window closed", "score1", final.Score1, "score2", final.Score2)
}
