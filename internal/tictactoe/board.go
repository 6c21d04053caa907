package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const lastIndex = entity.BoardSize - 1

// Board owns the grid. Cells only go back to empty through Reset.
type Board struct {
	cells entity.Grid
}

func NewBoard() *Board {
	return &Board{}
}

// PlaceMarker - sets the cell and reports true, or leaves the board untouched and reports false
// when the coordinates are out of range, the cell is taken or marker is not X/O.
func (that *Board) PlaceMarker(marker entity.Cell, row, col int) bool {
	if !marker.IsMarker() || that.ValidateMove(row, col) != nil {
		return false
	}

	that.cells[row][col] = marker

	return true
}

// ValidateMove - explains why a placement at (row, col) would be rejected.
func (that *Board) ValidateMove(row, col int) error {
	if !inBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCoordinate, row, col)
	}

	if !that.cells[row][col].IsEmpty() {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	return nil
}

func (that *Board) IsFilled() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}

	return true
}

// IsWinningMove - reports whether marker completes a line through (row, col).
// Diagonals are only looked at when the cell lies on one.
func (that *Board) IsWinningMove(marker entity.Cell, row, col int) bool {
	if !marker.IsMarker() || !inBounds(row, col) {
		return false
	}

	if that.isRowComplete(marker, row) || that.isColumnComplete(marker, col) {
		return true
	}

	switch {
	// centre sits on both diagonals
	case row == 1 && col == 1:
		return that.isNegativeDiagonalComplete(marker) || that.isPositiveDiagonalComplete(marker)
	// top left and bottom right
	case row == col:
		return that.isNegativeDiagonalComplete(marker)
	// top right and bottom left
	case row+col == lastIndex:
		return that.isPositiveDiagonalComplete(marker)
	// edge centres
	default:
		return false
	}
}

func (that *Board) Reset() {
	that.cells = entity.Grid{}
}

// Snapshot - returns a copy of the grid.
func (that *Board) Snapshot() entity.Grid {
	return that.cells
}

func (that *Board) Cell(row, col int) (entity.Cell, error) {
	if !inBounds(row, col) {
		return entity.EmptyCell, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCoordinate, row, col)
	}

	return that.cells[row][col], nil
}

func (that *Board) isRowComplete(marker entity.Cell, row int) bool {
	for _, cell := range that.cells[row] {
		if cell != marker {
			return false
		}
	}

	return true
}

func (that *Board) isColumnComplete(marker entity.Cell, col int) bool {
	for row := range that.cells {
		if that.cells[row][col] != marker {
			return false
		}
	}

	return true
}

func (that *Board) isNegativeDiagonalComplete(marker entity.Cell) bool {
	for i := 0; i < entity.BoardSize; i++ {
		if that.cells[i][i] != marker {
			return false
		}
	}

	return true
}

func (that *Board) isPositiveDiagonalComplete(marker entity.Cell) bool {
	for i := 0; i < entity.BoardSize; i++ {
		if that.cells[i][lastIndex-i] != marker {
			return false
		}
	}

	return true
}

func inBounds(row, col int) bool {
	return row >= 0 && row < entity.BoardSize && col >= 0 && col < entity.BoardSize
}
