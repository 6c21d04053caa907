package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Player is a display name and the marker it places. The zero value is not a valid player.
type Player struct {
	name   string
	marker Cell
}

func NewPlayer(name string, marker Cell) (Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, apperror.ErrEmptyPlayerName
	}

	if !marker.IsMarker() {
		return Player{}, fmt.Errorf("%w: got %q", apperror.ErrInvalidMarker, marker)
	}

	return Player{name: name, marker: marker}, nil
}

func (that Player) Name() string {
	return that.name
}

func (that Player) Marker() Cell {
	return that.marker
}

func (that Player) String() string {
	return that.name
}
