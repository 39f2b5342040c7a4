// pong is classic two-player Pong for the terminal and the desktop.
//
// Usage:
//
//	pong play               - Play in the terminal
//	pong window             - Play in a desktop window
//	pong history            - Show finished matches
//	pong config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (.yaml, .yml or .toml)
//	--db <path>         - Match history database (default: ~/.pong/matches.db)
//	--no-history        - Do not record matches
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagNoHistory bool
	flagLogFile   string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Two-player Pong in your terminal or a window",
	Long: `Classic two-player Pong on a fixed 900x500 field.

Player 1 uses W/S, player 2 uses the arrow keys.
P serves the ball, R resets the ball, paddles and scores.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  history  - Show finished matches
  config   - Print the effective configuration

Examples:
  pong play
  pong window --config ./pong.toml
  pong history --limit 50`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to match history database")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record finished matches")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
