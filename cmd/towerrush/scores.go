package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tower-rush/internal/platform/tui"
	"github.com/vovakirdan/tower-rush/internal/storage"
)

var (
	flagPlain  bool
	flagRecent bool
	flagLimit  int
	flagClear  bool
	flagPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse the run history",
	Long: `Show finished runs stored in the run database. Opens an interactive
table in a terminal; use --plain for a printed list.

The default database lives in memory, so point --db at the same file you
played with.

Examples:
  towerrush scores --db ~/.towerrush/runs.db
  towerrush scores --db ~/.towerrush/runs.db --plain --recent --limit 20
  towerrush scores --db ~/.towerrush/runs.db --player alice
  towerrush scores --db ~/.towerrush/runs.db --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print instead of opening the interactive table")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List newest runs instead of best runs (with --plain)")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print (with --plain)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored run")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Also list one player's runs (SSH user name, or \"local\")")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height, flagPlayer)
	}

	return printRuns(os.Stdout, store)
}

// printRuns writes the selected run list and the totals to w. --player
// takes precedence over --recent.
func printRuns(w io.Writer, store *storage.Store) error {
	var (
		runs  []storage.Run
		err   error
		title = "Top Runs"
	)
	switch {
	case flagPlayer != "":
		title = "Runs by " + flagPlayer
		runs, err = store.PlayerRuns(flagPlayer, flagLimit)
	case flagRecent:
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagLimit)
	default:
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Tower Rush - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'towerrush play --db <path>' to record one!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %-12s  %s\n", "Rank", "Score", "Floor", "Coins", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %-12s  %s\n", "----", "-----", "-----", "-----", "------", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-8d  %-5d  %-6d  %-12s  %s\n",
			i+1, r.Score, r.Floor, r.Coins, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Fprintf(w, "\nRuns: %d  Best score: %d  Best floor: %d\n", stats.Runs, stats.BestScore, stats.BestFloor)
	}
	return nil
}
