package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shift48/internal/storage"
	"github.com/vovakirdan/shift48/internal/tui"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores.

Examples:
  shift48 scores
  shift48 scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in an interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		if err := tui.RunScoreboard(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - shift48")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'shift48 play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-9s  %-6s  %s\n", "Rank", "Score", "Best tile", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-9s  %-6s  %s\n", "----", "-----", "---------", "------", "----")

	for i, entry := range scores {
		result := "lost"
		if entry.Won {
			result = "won"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-9d  %-6s  %s\n", i+1, entry.Score, entry.MaxTile, result, dateStr)
	}

	fmt.Println()
	stats, err := store.GetStats()
	if err == nil {
		fmt.Printf("Games: %d  Wins: %d  Best: %d\n", stats.GamesCount, stats.Wins, stats.HighScore)
	}
}
