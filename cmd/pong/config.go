package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after searching
--config, ~/.pong/pong.{yaml,yml,toml} and ./configs/pong.{yaml,yml,toml}
and falling back to the built-in defaults.

The output is a complete config file and can be saved and edited.

Examples:
  pong config > ~/.pong/pong.yaml
  pong config --format toml > ~/.pong/pong.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeConfig(os.Stdout, cfg, config.Format(flagFormat)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeConfig encodes cfg in the given format to w.
func writeConfig(w io.Writer, cfg config.PongConfig, format config.Format) error {
	data, err := config.Encode(cfg, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	return nil
}
