// Package config provides YAML-based configuration loading for the game.
package config

import (
	"fmt"
	"time"
)

// GameConfig contains all configuration for a game session.
type GameConfig struct {
	Board BoardConfig `yaml:"board"`
	Queue QueueConfig `yaml:"queue"`
}

// BoardConfig defines board and spawning parameters.
type BoardConfig struct {
	Dimension  int     `yaml:"dimension"`    // board size N
	WinTile    int     `yaml:"win_tile"`     // tile value that wins the game
	StartTiles int     `yaml:"start_tiles"`  // tiles spawned on a fresh board
	Spawn4Prob float64 `yaml:"spawn_4_prob"` // probability a spawn is a 4
}

// QueueConfig defines move queue parameters.
type QueueConfig struct {
	Capacity    int `yaml:"capacity"`      // pending move bound
	MoveDelayMS int `yaml:"move_delay_ms"` // pacing delay after an effective move
}

// MoveDelay returns the pacing delay as a duration.
func (q QueueConfig) MoveDelay() time.Duration {
	return time.Duration(q.MoveDelayMS) * time.Millisecond
}

// Validate checks the configuration for values the game cannot run with.
func (c GameConfig) Validate() error {
	if c.Board.Dimension < 2 {
		return fmt.Errorf("config: board dimension %d is too small", c.Board.Dimension)
	}
	if c.Board.WinTile < 4 {
		return fmt.Errorf("config: win tile %d is not reachable by merging", c.Board.WinTile)
	}
	if c.Board.Spawn4Prob < 0 || c.Board.Spawn4Prob > 1 {
		return fmt.Errorf("config: spawn_4_prob %v is not a probability", c.Board.Spawn4Prob)
	}
	if c.Board.StartTiles < 1 || c.Board.StartTiles > c.Board.Dimension*c.Board.Dimension {
		return fmt.Errorf("config: start_tiles %d does not fit the board", c.Board.StartTiles)
	}
	if c.Queue.Capacity < 1 {
		return fmt.Errorf("config: queue capacity %d is too small", c.Queue.Capacity)
	}
	if c.Queue.MoveDelayMS < 0 {
		return fmt.Errorf("config: move_delay_ms %d is negative", c.Queue.MoveDelayMS)
	}
	return nil
}
