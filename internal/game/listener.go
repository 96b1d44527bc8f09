// Package game owns the mutable 2048 state: the board, the score and the
// move queue. It applies the pure resolution logic from internal/core to
// the board and reports every mutation to a Listener so a renderer can
// animate exactly what happened.
package game

import "github.com/vovakirdan/shift48/internal/core"

// Listener receives board mutations as they are applied. Implementations
// must not block and must never mutate game state from a callback; the game
// only borrows the listener, it does not own it.
type Listener interface {
	// ScoreChanged reports the new cumulative score after a merge.
	ScoreChanged(score int)

	// TileMoved reports a single tile relocating from one cell to another.
	// If the move completed a merge, value is the merged value and the
	// destination cell previously held a stationary tile of half that.
	TileMoved(from, to core.Coord, value int)

	// TilesMerged reports two moving tiles combining in the same cell.
	TilesMerged(from1, from2, to core.Coord, value int)

	// TileInserted reports a freshly spawned tile.
	TileInserted(at core.Coord, value int)
}

// NopListener is a Listener that ignores every event.
type NopListener struct{}

func (NopListener) ScoreChanged(int)                         {}
func (NopListener) TileMoved(_, _ core.Coord, _ int)         {}
func (NopListener) TilesMerged(_, _, _ core.Coord, _ int)    {}
func (NopListener) TileInserted(_ core.Coord, _ int)         {}

var _ Listener = NopListener{}
