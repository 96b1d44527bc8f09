package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	if cfg != want {
		t.Errorf("embedded default = %+v, want %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("board:\n  dimension: 5\n  win_tile: 4096\n  start_tiles: 3\n  spawn_4_prob: 0.2\nqueue:\n  capacity: 8\n  move_delay_ms: 100\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Board.Dimension != 5 || cfg.Board.WinTile != 4096 {
		t.Errorf("board config = %+v", cfg.Board)
	}
	if cfg.Queue.Capacity != 8 || cfg.Queue.MoveDelayMS != 100 {
		t.Errorf("queue config = %+v", cfg.Queue)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load with a missing custom path should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"tiny board", func(c *GameConfig) { c.Board.Dimension = 1 }},
		{"unreachable win tile", func(c *GameConfig) { c.Board.WinTile = 2 }},
		{"bad probability", func(c *GameConfig) { c.Board.Spawn4Prob = 1.5 }},
		{"too many start tiles", func(c *GameConfig) { c.Board.StartTiles = 100 }},
		{"zero capacity", func(c *GameConfig) { c.Queue.Capacity = 0 }},
		{"negative delay", func(c *GameConfig) { c.Queue.MoveDelayMS = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted an invalid config")
			}
		})
	}
}
