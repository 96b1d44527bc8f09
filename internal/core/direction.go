package core

// Direction represents a move direction.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Coord addresses a board cell. Row 0 is the top row, Col 0 the left column.
type Coord struct {
	Row int
	Col int
}

// LineCoords returns the cells of one row or column of a dim-sized board,
// ordered so that index 0 is the cell at the board edge the tiles travel
// towards. For DirUp index 0 is the topmost cell of column `line`; for
// DirDown the bottommost. This ordering is what lets the merge engine stay
// direction-agnostic: merges always happen towards index 0.
func (d Direction) LineCoords(dim, line int) []Coord {
	coords := make([]Coord, dim)
	for i := range coords {
		switch d {
		case DirUp:
			coords[i] = Coord{Row: i, Col: line}
		case DirDown:
			coords[i] = Coord{Row: dim - 1 - i, Col: line}
		case DirLeft:
			coords[i] = Coord{Row: line, Col: i}
		case DirRight:
			coords[i] = Coord{Row: line, Col: dim - 1 - i}
		}
	}
	return coords
}
