package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const maxWaitDuration = 10 * time.Second

const (
	FirstPlayerName  = "Alice"
	SecondPlayerName = "Bob"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	First  entity.Player
	Second entity.Player
}

// New - returns a context bounded by maxWaitDuration, a silent logger and two players, X and O.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	first, err := entity.NewPlayer(FirstPlayerName, entity.MarkerX)
	if err != nil {
		t.Fatalf("could not create first player: %v", err)
	}

	second, err := entity.NewPlayer(SecondPlayerName, entity.MarkerO)
	if err != nil {
		t.Fatalf("could not create second player: %v", err)
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		First:  first,
		Second: second,
	}
}
