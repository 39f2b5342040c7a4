package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pong/internal/platform/tui"
	"github.com/vovakirdan/pong/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished matches",
	Long: `Display recent finished matches and win totals.

Only matches with at least one goal are recorded. A match ends when
the scores are reset with R or when the game is closed.

An interactive table is shown when stdout is a terminal; otherwise,
or with --plain, a text table is printed.

Examples:
  pong history
  pong history --limit 50 --plain
  pong history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of matches to show")
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded matches")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearMatches(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Println("Match history cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, flagLimit, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	if err := printHistory(store, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printHistory(store *storage.Store, limit int) error {
	matches, err := store.RecentMatches(limit)
	if err != nil {
		return err
	}
	stats, err := store.GetStats()
	if err != nil {
		return err
	}

	fmt.Println("Match History")
	fmt.Println()
	fmt.Println(tui.StatsLine(stats))

	if len(matches) == 0 {
		fmt.Println()
		fmt.Println("Play 'pong play' and score a goal to record a match.")
		return nil
	}

	fmt.Println()
	fmt.Printf("  %-12s  %-7s  %-6s  %-7s  %-7s  %-6s  %s\n", "Date", "Score", "Winner", "Rallies", "Longest", "Time", "Ended")
	fmt.Printf("  %-12s  %-7s  %-6s  %-7s  %-7s  %-6s  %s\n", "----", "-----", "------", "-------", "-------", "----", "-----")
	for _, row := range tui.HistoryRows(matches) {
		fmt.Printf("  %-12s  %-7s  %-6s  %-7s  %-7s  %-6s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5], row[6])
	}
	return nil
}
