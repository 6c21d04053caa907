package apperror

import "errors"

var (
	ErrInvalidCoordinate = errors.New("row and column must be between 0 and 2")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrGameFinished      = errors.New("game is already finished")
	ErrDuplicateMarkers  = errors.New("players must use different markers")
	ErrEmptyPlayerName   = errors.New("player name is empty")
	ErrInvalidMarker     = errors.New("marker must be X or O")
	ErrUnknownCommand    = errors.New("unknown command")
)
