package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	opts := []console.Option{console.WithMarkerColors(conf.Console.XColor, conf.Console.OColor)}
	if conf.Console.NoColor {
		opts = append(opts, console.WithProfile(termenv.Ascii))
	}

	consoleServer := console.New(logger, os.Stdin, os.Stdout, opts...)
	defer consoleServer.Close()

	first, second, err := consoleServer.AskPlayers(ctx, conf.Players.FirstName, conf.Players.SecondName)
	if err != nil {
		return cancelledOr(fmt.Errorf("could not set up players: %w", err))
	}

	match, err := tictactoe.NewMatch(first, second)
	if err != nil {
		return fmt.Errorf("could not create match: %w", err)
	}

	log.Info("Match started", "matchID", match.ID(), "first", first.Name(), "second", second.Name())

	gameManager := usecase.NewGameManager(logger, match)

	if err = consoleServer.Run(ctx, gameManager); err != nil {
		return cancelledOr(fmt.Errorf("console error: %w", err))
	}

	log.Info("Match closed", "matchID", match.ID())

	return nil
}

// cancelledOr - a shutdown by signal is not a failure.
func cancelledOr(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
