package tictactoe

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Match runs turns between two players over one board. It is not safe for concurrent use.
type Match struct {
	id      string
	first   entity.Player
	second  entity.Player
	board   *Board
	current entity.Player
	outcome entity.Outcome
}

// NewMatch - first moves first, after every reset too.
func NewMatch(first, second entity.Player) (*Match, error) {
	// zero-value players have no marker
	if !first.Marker().IsMarker() || !second.Marker().IsMarker() {
		return nil, apperror.ErrInvalidMarker
	}

	if first.Marker() == second.Marker() {
		return nil, fmt.Errorf("%w: both play %s", apperror.ErrDuplicateMarkers, first.Marker())
	}

	return &Match{
		id:      uuid.NewString(),
		first:   first,
		second:  second,
		board:   NewBoard(),
		current: first,
		outcome: entity.Ongoing(),
	}, nil
}

// SubmitMove - plays (row, col) for the current player. A nil error means the move was accepted.
// Rejected moves leave the current player and the outcome as they were.
func (that *Match) SubmitMove(row, col int) error {
	if that.outcome.IsFinished() {
		return apperror.ErrGameFinished
	}

	marker := that.current.Marker()
	if !that.board.PlaceMarker(marker, row, col) {
		return that.board.ValidateMove(row, col)
	}

	if that.board.IsWinningMove(marker, row, col) {
		that.outcome = entity.Won(that.current)
		return nil
	}

	if that.board.IsFilled() {
		that.outcome = entity.Drawn()
		return nil
	}

	that.switchPlayer()

	return nil
}

func (that *Match) CurrentState() entity.State {
	outcome := that.outcome
	if outcome.Winner != nil {
		// the snapshot gets its own winner so callers can't reach the match's copy
		outcome = entity.Won(*outcome.Winner)
	}

	return entity.State{
		MatchID:       that.id,
		CurrentPlayer: that.current,
		Board:         that.board.Snapshot(),
		Outcome:       outcome,
	}
}

// Reset - starts over with the same players and ID.
func (that *Match) Reset() {
	that.board.Reset()
	that.outcome = entity.Ongoing()
	that.current = that.first
}

func (that *Match) ID() string {
	return that.id
}

func (that *Match) Players() (entity.Player, entity.Player) {
	return that.first, that.second
}

func (that *Match) switchPlayer() {
	if that.current == that.first {
		that.current = that.second
		return
	}
	that.current = that.first
}
