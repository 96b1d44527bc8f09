package game

import "github.com/vovakirdan/shift48/internal/core"

// Board is an N×N grid of tiles. The dimension is fixed at construction.
// The board is a dumb container: all mutation happens in the game session,
// board methods only read or reassign whole cells.
type Board struct {
	dim   int
	cells [][]core.Tile
}

// NewBoard creates an empty board of the given dimension.
func NewBoard(dim int) *Board {
	b := &Board{dim: dim}
	b.allocate()
	return b
}

func (b *Board) allocate() {
	b.cells = make([][]core.Tile, b.dim)
	for r := range b.cells {
		b.cells[r] = make([]core.Tile, b.dim)
	}
}

// Dim returns the board dimension.
func (b *Board) Dim() int {
	return b.dim
}

// At returns the tile at the given cell.
func (b *Board) At(c core.Coord) core.Tile {
	return b.cells[c.Row][c.Col]
}

// set reassigns a cell.
func (b *Board) set(c core.Coord, t core.Tile) {
	b.cells[c.Row][c.Col] = t
}

// Clear empties every cell.
func (b *Board) Clear() {
	b.allocate()
}

// Snapshot returns a deep copy of the grid. Callers may keep it as long as
// they like; it never observes later mutations.
func (b *Board) Snapshot() [][]core.Tile {
	grid := make([][]core.Tile, b.dim)
	for r := range grid {
		grid[r] = make([]core.Tile, b.dim)
		copy(grid[r], b.cells[r])
	}
	return grid
}

// EmptyCells returns the coordinates of all empty cells.
func (b *Board) EmptyCells() []core.Coord {
	var cells []core.Coord
	for r := 0; r < b.dim; r++ {
		for c := 0; c < b.dim; c++ {
			if b.cells[r][c].Empty() {
				cells = append(cells, core.Coord{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell reports whether at least one cell is empty.
func (b *Board) HasEmptyCell() bool {
	for r := 0; r < b.dim; r++ {
		for c := 0; c < b.dim; c++ {
			if b.cells[r][c].Empty() {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge reports whether any two adjacent tiles hold equal values.
func (b *Board) HasPossibleMerge() bool {
	for r := 0; r < b.dim; r++ {
		for c := 0; c < b.dim; c++ {
			t := b.cells[r][c]
			if t.Empty() {
				continue
			}
			if c < b.dim-1 && b.cells[r][c+1].Value() == t.Value() {
				return true
			}
			if r < b.dim-1 && b.cells[r+1][c].Value() == t.Value() {
				return true
			}
		}
	}
	return false
}

// CanMove reports whether any direction would change the board.
func (b *Board) CanMove() bool {
	return b.HasEmptyCell() || b.HasPossibleMerge()
}

// MaxTile returns the highest value on the board, 0 for an empty board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for r := 0; r < b.dim; r++ {
		for c := 0; c < b.dim; c++ {
			if v := b.cells[r][c].Value(); v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}
