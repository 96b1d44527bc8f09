package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shift48/internal/config"
	"github.com/vovakirdan/shift48/internal/storage"
	"github.com/vovakirdan/shift48/internal/tui"
)

var flagConfig string

// Minimum terminal size for the default 4x4 board with HUD.
const (
	minTermWidth  = 40
	minTermHeight = 20
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrow keys / WASD / HJKL  - Slide tiles
  R                         - Restart (after win or game over)
  Q/Ctrl+C                  - Quit

Examples:
  shift48 play
  shift48 play --config ./my-config.yaml
  shift48 play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if w < minTermWidth || h < minTermHeight {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, at least %dx%d is recommended\n",
				w, h, minTermWidth, minTermHeight)
		}
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runErr := tui.Run(cfg, store, openLogger(), seed)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogger writes to a log file rather than the terminal so warnings
// do not tear the alt-screen UI. Returns nil if the file cannot be opened.
func openLogger() *log.Logger {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(home, ".shift48")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "shift48.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil
	}
	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "shift48",
	})
}
