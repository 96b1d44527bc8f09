package config

import (
	_ "embed"
)

//go:embed defaults/shift48.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration. It matches the
// embedded YAML and serves as the last-resort fallback.
func Default() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Dimension:  4,
			WinTile:    2048,
			StartTiles: 2,
			Spawn4Prob: 0.10,
		},
		Queue: QueueConfig{
			Capacity:    4,
			MoveDelayMS: 250,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
