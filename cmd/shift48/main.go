// shift48 is a terminal sliding-tile puzzle in the 2048 family.
//
// Usage:
//
//	shift48 play             - Play in the local terminal
//	shift48 scores           - Show high scores
//	shift48 serve            - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible tile spawns
//	--db <path>     - Set database path (default: ~/.shift48/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shift48",
	Short: "shift48 - slide and merge tiles in your terminal",
	Long: `shift48 is a terminal sliding-tile puzzle. Slide tiles across the
board; equal tiles merge and double. Reach the winning tile before the
board locks up.

Available commands:
  play     - Play in the local terminal
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  shift48 play
  shift48 play --config ./my-config.yaml
  shift48 scores --interactive
  shift48 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shift48/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
