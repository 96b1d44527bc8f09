// Package core implements the move-resolution logic for a sliding-tile
// merging puzzle. Given one line of the board it computes which tiles move,
// which pairs merge, and emits an ordered description of the transformation
// for the board and the renderer. This package is UI-agnostic and
// deterministic, with no external dependencies.
package core

import "fmt"

// Tile is a single board cell: either empty or holding a positive value.
// The zero value is the empty tile. Tiles are immutable; board cells are
// reassigned, never mutated in place.
type Tile struct {
	value int
}

// EmptyTile returns the empty tile.
func EmptyTile() Tile {
	return Tile{}
}

// NewTile returns an occupied tile with the given value.
// Panics on non-positive values; a cell never holds one under correct use.
func NewTile(value int) Tile {
	if value <= 0 {
		panic(fmt.Sprintf("core: tile value must be positive, got %d", value))
	}
	return Tile{value: value}
}

// Empty reports whether the tile holds no value.
func (t Tile) Empty() bool {
	return t.value == 0
}

// Value returns the tile's value, or 0 for the empty tile.
func (t Tile) Value() int {
	return t.value
}

// String returns "." for the empty tile and the value otherwise.
func (t Tile) String() string {
	if t.Empty() {
		return "."
	}
	return fmt.Sprintf("%d", t.value)
}
