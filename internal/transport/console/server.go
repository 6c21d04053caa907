package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const prompt = "> "

// errQuit stops the read loop without reporting a failure.
var errQuit = errors.New("quit")

type gameManager interface {
	MakeTurn(ctx context.Context, row, col int) (entity.State, error)
	State() entity.State
	Restart(ctx context.Context) (entity.State, error)
}

type handler func(ctx context.Context, game gameManager, args []string) error

type input struct {
	text string
	err  error
}

type Server struct {
	logger   *slog.Logger
	out      io.Writer
	renderer *renderer
	handlers map[string]handler

	scanner     *bufio.Scanner
	lines       chan input
	startReader sync.Once
	done        chan struct{}
	closeOnce   sync.Once
}

type Option func(*options)

type options struct {
	profile *termenv.Profile
	xColor  string
	oColor  string
}

// WithProfile - forces a colour profile, termenv.Ascii disables colours.
func WithProfile(profile termenv.Profile) Option {
	return func(opts *options) {
		opts.profile = &profile
	}
}

// WithMarkerColors - colours for X and O, anything termenv.Profile.Color accepts.
func WithMarkerColors(xColor, oColor string) Option {
	return func(opts *options) {
		opts.xColor = xColor
		opts.oColor = oColor
	}
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, opts ...Option) *Server {
	settings := options{}
	for _, opt := range opts {
		opt(&settings)
	}

	var outputOpts []termenv.OutputOption
	if settings.profile != nil {
		outputOpts = append(outputOpts, termenv.WithProfile(*settings.profile))
	}

	server := &Server{
		logger:   logger.With("component", "console"),
		out:      out,
		renderer: newRenderer(termenv.NewOutput(out, outputOpts...), settings.xColor, settings.oColor),
		handlers: make(map[string]handler),
		scanner:  bufio.NewScanner(in),
		lines:    make(chan input),
		done:     make(chan struct{}),
	}

	server.handlers["move"] = server.handleMove
	server.handlers["reset"] = server.handleReset
	server.handlers["restart"] = server.handleReset
	server.handlers["board"] = server.handleBoard
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// AskPlayers - asks for both names, a blank answer or end of input keeps the default.
// The first player plays X and moves first.
func (that *Server) AskPlayers(ctx context.Context, firstDefault, secondDefault string) (entity.Player, entity.Player, error) {
	firstName, err := that.askName(ctx, "Player 1 (X)", firstDefault)
	if err != nil {
		return entity.Player{}, entity.Player{}, err
	}

	first, err := entity.NewPlayer(firstName, entity.MarkerX)
	if err != nil {
		return entity.Player{}, entity.Player{}, fmt.Errorf("invalid first player: %w", err)
	}

	secondName, err := that.askName(ctx, "Player 2 (O)", secondDefault)
	if err != nil {
		return entity.Player{}, entity.Player{}, err
	}

	second, err := entity.NewPlayer(secondName, entity.MarkerO)
	if err != nil {
		return entity.Player{}, entity.Player{}, fmt.Errorf("invalid second player: %w", err)
	}

	return first, second, nil
}

// Run - reads commands until quit, end of input or ctx is done.
func (that *Server) Run(ctx context.Context, game gameManager) error {
	log := that.logger.With("method", "Run")

	if err := that.printf("Type 'help' for the list of commands.\n\n"); err != nil {
		return err
	}

	if err := that.render(game.State()); err != nil {
		return err
	}

	for {
		if err := that.printf(prompt); err != nil {
			return err
		}

		line, err := that.readLine(ctx)
		if errors.Is(err, io.EOF) {
			log.Info("input closed")
			return nil
		}
		if err != nil {
			return err
		}

		err = that.dispatch(ctx, game, line)
		if errors.Is(err, errQuit) {
			log.Info("player quit")
			return nil
		}
		if err == nil {
			continue
		}

		message, ok := describe(err)
		if !ok {
			return err
		}

		log.Debug("command rejected", "line", line, "error", err)

		if err = that.printf("%s\n", message); err != nil {
			return err
		}
	}
}

// Close - stops the background reader. Safe to call more than once.
func (that *Server) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

func (that *Server) dispatch(ctx context.Context, game gameManager, line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	// "1 2" is shorthand for "move 1 2"
	if isNumber(fields[0]) {
		fields = append([]string{"move"}, fields...)
	}

	handle, ok := that.handlers[fields[0]]
	if !ok {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, fields[0])
	}

	return handle(ctx, game, fields[1:])
}

func (that *Server) askName(ctx context.Context, label, fallback string) (string, error) {
	if err := that.printf("%s name [%s]: ", label, fallback); err != nil {
		return "", err
	}

	name, err := that.readLine(ctx)
	if errors.Is(err, io.EOF) {
		return fallback, nil
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(name) == "" {
		return fallback, nil
	}

	return name, nil
}

func (that *Server) readLine(ctx context.Context) (string, error) {
	that.startReader.Do(func() {
		go that.readLoop()
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("read input: %w", ctx.Err())
	case in, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		return in.text, in.err
	}
}

// readLoop - feeds lines to readLine, the channel is closed on end of input.
func (that *Server) readLoop() {
	defer close(that.lines)

	for that.scanner.Scan() {
		select {
		case that.lines <- input{text: that.scanner.Text()}:
		case <-that.done:
			return
		}
	}

	if err := that.scanner.Err(); err != nil {
		select {
		case that.lines <- input{err: fmt.Errorf("failed to read input: %w", err)}:
		case <-that.done:
		}
	}
}

func (that *Server) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
