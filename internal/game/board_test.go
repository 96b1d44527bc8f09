package game

import (
	"testing"

	"github.com/vovakirdan/shift48/internal/core"
)

// fill sets board cells from a value grid, 0 meaning empty.
func fill(b *Board, values [][]int) {
	b.Clear()
	for r, row := range values {
		for c, v := range row {
			if v != 0 {
				b.set(core.Coord{Row: r, Col: c}, core.NewTile(v))
			}
		}
	}
}

func TestBoardScans(t *testing.T) {
	b := NewBoard(4)
	fill(b, [][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	})

	if b.HasEmptyCell() {
		t.Error("full board reports an empty cell")
	}
	if b.HasPossibleMerge() {
		t.Error("board without equal neighbours reports a merge")
	}
	if b.CanMove() {
		t.Error("dead board reports a possible move")
	}
	if got := b.MaxTile(); got != 65536 {
		t.Errorf("MaxTile = %d, want 65536", got)
	}

	// One equal pair brings the board back to life.
	b.set(core.Coord{Row: 0, Col: 1}, core.NewTile(2))
	if !b.HasPossibleMerge() || !b.CanMove() {
		t.Error("board with an equal pair reports no move")
	}

	// So does a single empty cell.
	fill(b, [][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 0, 4096},
		{8192, 16384, 32768, 65536},
	})
	if !b.CanMove() {
		t.Error("board with an empty cell reports no move")
	}
	if len(b.EmptyCells()) != 1 {
		t.Errorf("EmptyCells = %v, want exactly one", b.EmptyCells())
	}
}

func TestBoardSnapshotIsolation(t *testing.T) {
	b := NewBoard(4)
	b.set(core.Coord{Row: 1, Col: 2}, core.NewTile(8))

	snap := b.Snapshot()
	b.set(core.Coord{Row: 1, Col: 2}, core.NewTile(16))

	if snap[1][2].Value() != 8 {
		t.Errorf("snapshot observed a later mutation: %v", snap[1][2])
	}
}

func TestBoardClear(t *testing.T) {
	b := NewBoard(3)
	b.set(core.Coord{Row: 0, Col: 0}, core.NewTile(2))
	b.Clear()

	if len(b.EmptyCells()) != 9 {
		t.Errorf("cleared 3x3 board has %d empty cells, want 9", len(b.EmptyCells()))
	}
}
