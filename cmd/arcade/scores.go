package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/treasure-arcade/internal/games/menu"
	"github.com/vovakirdan/treasure-arcade/internal/games/slimejump"
	"github.com/vovakirdan/treasure-arcade/internal/platform/tui"
	"github.com/vovakirdan/treasure-arcade/internal/registry"
	"github.com/vovakirdan/treasure-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresBy    string
	flagScoresReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best runs for a game",
	Long: `Display the best runs for the specified game. Without a game, opens
an interactive scoreboard.

slime-jump is ranked by fastest clear, other games by score.

Examples:
  arcade scores
  arcade scores slime-jump
  arcade scores running-man --limit 20
  arcade scores slime-jump --by score
  arcade scores running-man --reset`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresBy, "by", "", "Ranking: score or time (default depends on the game)")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete the game's run history")
}

// rankedByTime lists games whose best run is the fastest clear.
var rankedByTime = map[string]bool{
	slimejump.ID: true,
}

func openHistory() *storage.Store {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: run history is disabled (--db is empty)")
		os.Exit(1)
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runScores(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		runScoreboard()
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) || gameID == menu.ID {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	byTime := rankedByTime[gameID]
	switch flagScoresBy {
	case "":
	case "time":
		byTime = true
	case "score":
		byTime = false
	default:
		fmt.Fprintf(os.Stderr, "Error: --by must be score or time, got %q\n", flagScoresBy)
		os.Exit(1)
	}

	store := openHistory()
	defer store.Close()

	if flagScoresReset {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing run history: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Run history for %s cleared.\n", gameID)
		return
	}

	var (
		runs  []storage.RunEntry
		err   error
		title string
	)
	if byTime {
		runs, err = store.BestTimes(gameID, flagScoresLimit)
		title = "Fastest Clears"
	} else {
		runs, err = store.TopScores(gameID, flagScoresLimit)
		title = "High Scores"
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	name := gameID
	for _, g := range games() {
		if g.ID == gameID {
			name = g.Title
		}
	}
	fmt.Printf("%s - %s\n", title, name)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first record!\n", gameID)
		return
	}

	printRuns(runs, true)

	if st, err := store.Stats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Clears: %d  Best score: %d", st.Runs, st.Clears, st.HighScore)
		if st.BestTime > 0 {
			fmt.Printf("  Fastest clear: %.2fs", st.BestTime.Seconds())
		}
		fmt.Println()
	}
}

func printRuns(runs []storage.RunEntry, ranked bool) {
	first := "Rank"
	if !ranked {
		first = "Game"
	}
	fmt.Printf("  %-12s  %-8s  %-9s  %-10s  %s\n", first, "Score", "Time", "Result", "Date")
	fmt.Printf("  %-12s  %-8s  %-9s  %-10s  %s\n", "----", "-----", "----", "------", "----")

	for i, r := range runs {
		col := fmt.Sprintf("%d", i+1)
		if !ranked {
			col = r.SceneID
		}
		fmt.Printf("  %-12s  %-8d  %-9s  %-10s  %s\n",
			col, r.Score,
			fmt.Sprintf("%.2fs", r.Elapsed.Seconds()),
			r.Outcome,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runScoreboard() {
	store := openHistory()
	defer store.Close()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	if err := tui.RunScoreboard(store, width, height, menu.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
