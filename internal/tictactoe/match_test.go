package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatch(t *testing.T) (*Match, *suite.Suite) {
	t.Helper()

	_, st := suite.New(t)

	match, err := NewMatch(st.First, st.Second)
	require.NoError(t, err)

	return match, st
}

// playMoves - submits moves in order and fails the test on the first rejection.
func playMoves(t *testing.T, match *Match, moves ...position) {
	t.Helper()

	for i, move := range moves {
		require.NoError(t, match.SubmitMove(move.row, move.col), "move %d %v", i, move)
	}
}

func TestNewMatch(t *testing.T) {
	t.Run("Starts ongoing with the first player and an empty board", func(t *testing.T) {
		// When: a match is created
		match, st := newTestMatch(t)

		// Then: the state is the initial one
		state := match.CurrentState()
		assert.NotEmpty(t, state.MatchID)
		assert.Equal(t, st.First, state.CurrentPlayer)
		assert.Equal(t, entity.Grid{}, state.Board)
		assert.Equal(t, entity.Ongoing(), state.Outcome)

		first, second := match.Players()
		assert.Equal(t, st.First, first)
		assert.Equal(t, st.Second, second)
	})

	t.Run("Returns ErrDuplicateMarkers when both players share a marker", func(t *testing.T) {
		// Given: two players with X
		_, st := suite.New(t)
		other, err := entity.NewPlayer("Carol", entity.MarkerX)
		require.NoError(t, err)

		// When: a match is created
		match, err := NewMatch(st.First, other)

		// Then: it is refused
		require.ErrorIs(t, err, apperror.ErrDuplicateMarkers)
		assert.Nil(t, match)
	})

	t.Run("Returns ErrInvalidMarker for a zero-value player", func(t *testing.T) {
		_, st := suite.New(t)

		match, err := NewMatch(st.First, entity.Player{})

		require.ErrorIs(t, err, apperror.ErrInvalidMarker)
		assert.Nil(t, match)
	})

	t.Run("Gives every match its own ID", func(t *testing.T) {
		first, _ := newTestMatch(t)
		second, _ := newTestMatch(t)

		assert.NotEqual(t, first.ID(), second.ID())
	})
}

func TestMatch_SubmitMove(t *testing.T) {
	t.Run("Valid move switches the current player", func(t *testing.T) {
		// Given: a new match
		match, st := newTestMatch(t)

		// When: the first player plays the corner
		err := match.SubmitMove(0, 0)

		// Then: the move is accepted and the turn passes
		require.NoError(t, err)
		state := match.CurrentState()
		assert.Equal(t, entity.MarkerX, state.Board[0][0])
		assert.Equal(t, st.Second, state.CurrentPlayer)
		assert.True(t, state.Outcome.IsOngoing())
	})

	t.Run("Rejected move keeps the turn and the board", func(t *testing.T) {
		// Given: the first player holds (0,0) and the second has replied
		match, st := newTestMatch(t)
		playMoves(t, match, position{0, 0}, position{1, 1})
		before := match.CurrentState()

		// When: the first player tries (0,0) again
		err := match.SubmitMove(0, 0)

		// Then: the move is rejected as occupied and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		after := match.CurrentState()
		assert.Equal(t, before, after)
		assert.Equal(t, st.First, after.CurrentPlayer)
		assert.Equal(t, entity.MarkerX, after.Board[0][0])
	})

	t.Run("Out of range move keeps the turn", func(t *testing.T) {
		// Given: a new match
		match, st := newTestMatch(t)

		// When: the first player plays outside the board
		err := match.SubmitMove(3, 1)

		// Then: the move is rejected and the first player is still to move
		require.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
		assert.Equal(t, st.First, match.CurrentState().CurrentPlayer)
		assert.Equal(t, entity.Grid{}, match.CurrentState().Board)
	})

	t.Run("Centre win on the negative diagonal", func(t *testing.T) {
		// Given: a new match
		match, st := newTestMatch(t)

		// When: the first player takes (0,0), (1,1), (2,2) while the second plays the top row
		playMoves(t, match,
			position{0, 0}, position{0, 1},
			position{1, 1}, position{0, 2},
			position{2, 2},
		)

		// Then: the first player has won and keeps the turn
		state := match.CurrentState()
		require.True(t, state.Outcome.IsWon())
		assert.Equal(t, st.First, *state.Outcome.Winner)
		assert.Equal(t, st.First, state.CurrentPlayer)
	})

	t.Run("Draw after the ninth move", func(t *testing.T) {
		// Given: a new match
		match, _ := newTestMatch(t)

		// When: the board is filled without a line
		// X O X
		// X O O
		// O X X
		playMoves(t, match,
			position{0, 0}, position{0, 1},
			position{0, 2}, position{1, 1},
			position{1, 0}, position{1, 2},
			position{2, 1}, position{2, 0},
			position{2, 2},
		)

		// Then: the outcome is a draw without a winner
		state := match.CurrentState()
		assert.True(t, state.Outcome.IsDraw())
		assert.Nil(t, state.Outcome.Winner)
	})

	t.Run("Win takes precedence over draw on the ninth move", func(t *testing.T) {
		// Given: a new match
		match, st := newTestMatch(t)

		// When: the ninth move fills the board and completes the negative diagonal
		// X O X
		// O X O
		// O X X
		playMoves(t, match,
			position{0, 0}, position{0, 1},
			position{0, 2}, position{1, 0},
			position{1, 1}, position{1, 2},
			position{2, 1}, position{2, 0},
			position{2, 2},
		)

		// Then: the outcome is a win for the first player
		state := match.CurrentState()
		require.True(t, state.Outcome.IsWon())
		assert.Equal(t, st.First, *state.Outcome.Winner)
	})

	t.Run("Every line wins for the player completing it", func(t *testing.T) {
		for name, line := range winningLines {
			// Given: a new match
			match, st := newTestMatch(t)

			// When: the first player plays the line while the second plays off it
			elsewhere := cellsOffLine(line)
			playMoves(t, match,
				line[2], elsewhere[0],
				line[0], elsewhere[1],
				line[1],
			)

			// Then: the first player wins
			state := match.CurrentState()
			require.True(t, state.Outcome.IsWon(), name)
			assert.Equal(t, st.First, *state.Outcome.Winner, name)
		}
	})

	t.Run("Move after the game is over is rejected", func(t *testing.T) {
		// Given: a match the first player has won on the top row
		match, _ := newTestMatch(t)
		playMoves(t, match,
			position{0, 0}, position{1, 0},
			position{0, 1}, position{1, 1},
			position{0, 2},
		)
		before := match.CurrentState()

		// When: another move is submitted
		err := match.SubmitMove(2, 2)

		// Then: ErrGameFinished is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, before, match.CurrentState())
	})
}

func TestMatch_TurnProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42)) //nolint: gosec // deterministic move order

	for game := 0; game < 50; game++ {
		match, _ := newTestMatch(t)
		var previous entity.Grid

		for match.CurrentState().Outcome.IsOngoing() {
			before := match.CurrentState()
			// one step past each edge so rejected moves show up too
			row, col := rnd.Intn(entity.BoardSize+2)-1, rnd.Intn(entity.BoardSize+2)-1

			err := match.SubmitMove(row, col)
			after := match.CurrentState()

			if err != nil {
				// an invalid move never consumes the turn
				require.Equal(t, before, after, "game %d", game)
				continue
			}

			// a valid move switches the player unless it ended the game
			if after.Outcome.IsOngoing() {
				require.NotEqual(t, before.CurrentPlayer, after.CurrentPlayer, "game %d", game)
			} else {
				require.Equal(t, before.CurrentPlayer, after.CurrentPlayer, "game %d", game)
			}

			// a set cell never goes back to empty
			for r := 0; r < entity.BoardSize; r++ {
				for c := 0; c < entity.BoardSize; c++ {
					if !previous[r][c].IsEmpty() {
						require.Equal(t, previous[r][c], after.Board[r][c], "game %d", game)
					}
				}
			}
			previous = after.Board
		}
	}
}

func TestMatch_Reset(t *testing.T) {
	t.Run("Resets a finished match", func(t *testing.T) {
		// Given: a match won by the first player
		match, st := newTestMatch(t)
		playMoves(t, match,
			position{0, 0}, position{1, 0},
			position{0, 1}, position{1, 1},
			position{0, 2},
		)
		id := match.ID()

		// When: it is reset
		match.Reset()

		// Then: the board is empty, the match is ongoing and the first player moves
		state := match.CurrentState()
		assert.Equal(t, entity.Grid{}, state.Board)
		assert.Equal(t, entity.Ongoing(), state.Outcome)
		assert.Equal(t, st.First, state.CurrentPlayer)
		assert.Equal(t, id, state.MatchID)
	})

	t.Run("Reset is idempotent", func(t *testing.T) {
		// Given: a fresh match and one mid-game with the second player to move
		fresh, st := newTestMatch(t)
		midGame, _ := newTestMatch(t)
		playMoves(t, midGame, position{1, 1})

		for _, match := range []*Match{fresh, midGame} {
			// When: reset is called repeatedly
			match.Reset()
			match.Reset()
			match.Reset()

			// Then: the state is always the initial one
			state := match.CurrentState()
			assert.Equal(t, entity.Grid{}, state.Board)
			assert.Equal(t, entity.Ongoing(), state.Outcome)
			assert.Equal(t, st.First, state.CurrentPlayer)
		}
	})
}

func TestMatch_CurrentState(t *testing.T) {
	// Given: a match won by the first player
	match, st := newTestMatch(t)
	playMoves(t, match,
		position{0, 0}, position{1, 0},
		position{0, 1}, position{1, 1},
		position{0, 2},
	)

	// When: the caller scribbles over its snapshot
	state := match.CurrentState()
	state.Board[2][2] = entity.MarkerO
	*state.Outcome.Winner = st.Second

	// Then: the match state is unaffected
	fresh := match.CurrentState()
	assert.Equal(t, entity.EmptyCell, fresh.Board[2][2])
	assert.Equal(t, st.First, *fresh.Outcome.Winner)
}

// cellsOffLine - cells not on line, in row-major order.
func cellsOffLine(line [3]position) []position {
	var cells []position
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			pos := position{row, col}
			if pos != line[0] && pos != line[1] && pos != line[2] {
				cells = append(cells, pos)
			}
		}
	}
	return cells
}
