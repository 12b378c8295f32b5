package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/goat-climb/internal/climb"
	"github.com/vovakirdan/goat-climb/internal/platform/tui"
	"github.com/vovakirdan/goat-climb/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresRecent      bool
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best runs (or the most recent ones) and the all-time best score.

Examples:
  goatclimb scores
  goatclimb scores --recent --limit 20
  goatclimb scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse scores in a table view")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, climb.ID, "Goat Climb", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var scores []storage.ScoreEntry
	heading := "High Scores - Goat Climb"
	if flagScoresRecent {
		heading = "Recent Runs - Goat Climb"
		scores, err = store.RecentScores(climb.ID, flagScoresLimit)
	} else {
		scores, err = store.TopScores(climb.ID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(heading)
	fmt.Println()

	best, bestErr := store.LoadBest(climb.ID)
	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		if bestErr == nil && best > 0 {
			fmt.Printf("Best: %d\n", best)
			return
		}
		fmt.Println("Play 'goatclimb play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "End", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "---", "----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-6s  %-6s  %s\n",
			i+1, entry.Score, entry.Reason, runTime(entry.Duration()), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	// The best table survives history pruning, so prefer it over the history max.
	fmt.Println()
	if bestErr != nil || best == 0 {
		best, bestErr = store.HighScore(climb.ID)
	}
	if bestErr == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

// runTime formats a run length as m:ss.
func runTime(d time.Duration) string {
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
