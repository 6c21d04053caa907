package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type match interface {
	ID() string
	SubmitMove(row, col int) error
	CurrentState() entity.State
	Reset()
}

// GameManager serializes access to one match and logs what happens to it.
type GameManager struct {
	logger *slog.Logger

	mu    sync.Mutex
	match match
}

func NewGameManager(logger *slog.Logger, match match) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager", "matchID", match.ID()),
		match:  match,
	}
}

// MakeTurn - plays (row, col) for whoever is to move and returns the state after it.
// Rejected moves come back as an error together with the unchanged state.
func (that *GameManager) MakeTurn(ctx context.Context, row, col int) (entity.State, error) {
	log := that.logger.With("method", "MakeTurn", "row", row, "col", col)

	that.mu.Lock()
	defer that.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return that.match.CurrentState(), fmt.Errorf("make turn: %w", err)
	}

	player := that.match.CurrentState().CurrentPlayer

	if err := that.match.SubmitMove(row, col); err != nil {
		state := that.match.CurrentState()

		if errors.Is(err, apperror.ErrGameFinished) {
			log.Info("move after game end rejected", "status", state.Outcome.Status)
		} else {
			log.Info("move rejected", "player", player.Name(), "reason", err)
		}

		return state, fmt.Errorf("failed make turn: %w", err)
	}

	state := that.match.CurrentState()
	log.Debug("move accepted", "player", player.Name(), "marker", player.Marker())

	switch {
	case state.Outcome.IsWon():
		log.Info("game won", "winner", state.Outcome.Winner.Name())
	case state.Outcome.IsDraw():
		log.Info("game drawn")
	}

	return state, nil
}

func (that *GameManager) State() entity.State {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.match.CurrentState()
}

// Restart - clears the board and hands the first move back to the first player.
func (that *GameManager) Restart(ctx context.Context) (entity.State, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return that.match.CurrentState(), fmt.Errorf("restart: %w", err)
	}

	that.match.Reset()
	that.logger.Info("game restarted")

	return that.match.CurrentState(), nil
}
