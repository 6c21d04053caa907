package entity

// BoardSize is the number of rows and columns on the board.
const BoardSize = 3

// Cell is the content of one square: empty or one of the two markers.
type Cell string

const (
	EmptyCell Cell = ""
	MarkerX   Cell = "X"
	MarkerO   Cell = "O"
)

// Grid is addressed as [row][col]. Copies are detached from the board they came from.
type Grid [BoardSize][BoardSize]Cell

func (that Cell) IsMarker() bool {
	return that == MarkerX || that == MarkerO
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Opponent - returns the other marker, EmptyCell stays empty.
func (that Cell) Opponent() Cell {
	switch that {
	case MarkerX:
		return MarkerO
	case MarkerO:
		return MarkerX
	default:
		return EmptyCell
	}
}

func (that Cell) String() string {
	return string(that)
}
