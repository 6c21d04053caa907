package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

var errMoveUsage = errors.New("move takes a row and a column")

const helpText = `Commands:
  <row> <col>        place your marker, rows and columns are numbered 0 to 2
  move <row> <col>   same as above
  board              show the board again
  reset              start a new game with the same players
  help               show this list
  quit               leave
`

func (that *Server) handleMove(ctx context.Context, game gameManager, args []string) error {
	if len(args) != 2 {
		return errMoveUsage
	}

	row, err := strconv.Atoi(args[0])
	if err != nil {
		return errMoveUsage
	}

	col, err := strconv.Atoi(args[1])
	if err != nil {
		return errMoveUsage
	}

	state, err := game.MakeTurn(ctx, row, col)
	if err != nil {
		return fmt.Errorf("move (%d, %d): %w", row, col, err)
	}

	return that.render(state)
}

func (that *Server) handleReset(ctx context.Context, game gameManager, _ []string) error {
	state, err := game.Restart(ctx)
	if err != nil {
		return fmt.Errorf("failed to restart: %w", err)
	}

	if err = that.printf("New game!\n"); err != nil {
		return err
	}

	return that.render(state)
}

func (that *Server) handleBoard(_ context.Context, game gameManager, _ []string) error {
	return that.render(game.State())
}

func (that *Server) handleHelp(_ context.Context, _ gameManager, _ []string) error {
	return that.printf(helpText)
}

func (that *Server) handleQuit(_ context.Context, _ gameManager, _ []string) error {
	return errQuit
}

// describe - turns an expected, recoverable error into a line for the players.
func describe(err error) (string, bool) {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is already taken.", true
	case errors.Is(err, apperror.ErrInvalidCoordinate):
		return "Row and column must be between 0 and 2.", true
	case errors.Is(err, apperror.ErrGameFinished):
		return "The game is over. Type 'reset' to play again.", true
	case errors.Is(err, errMoveUsage):
		return "Usage: <row> <col>, for example: 1 1", true
	case errors.Is(err, apperror.ErrUnknownCommand):
		return "Unknown command. Type 'help' for the list of commands.", true
	default:
		return "", false
	}
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}
