package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shift48/internal/config"
	"github.com/vovakirdan/shift48/internal/game"
	"github.com/vovakirdan/shift48/internal/storage"
)

// newSession wires a game session to a fresh event buffer.
func newSession(cfg config.GameConfig, seed int64) (*game.Game, *eventBuffer) {
	buffer := newEventBuffer()
	g := game.New(game.Options{
		Dimension:     cfg.Board.Dimension,
		WinTile:       cfg.Board.WinTile,
		StartTiles:    cfg.Board.StartTiles,
		Spawn4Prob:    cfg.Board.Spawn4Prob,
		QueueCapacity: cfg.Queue.Capacity,
		MoveDelay:     cfg.Queue.MoveDelay(),
		Seed:          seed,
		Listener:      buffer,
	})
	return g, buffer
}

// Run starts the game in the local terminal and blocks until the player
// quits. store and logger may be nil.
func Run(cfg config.GameConfig, store *storage.Store, logger *log.Logger, seed int64) error {
	g, buffer := newSession(cfg, seed)
	model := NewGameModel(g, buffer, store, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: program failed: %w", err)
	}
	return nil
}
