package console

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	boardHeader    = "   0   1   2\n"
	boardSeparator = "  ---+---+---\n"
)

type renderer struct {
	output *termenv.Output
	xColor string
	oColor string
}

func newRenderer(output *termenv.Output, xColor, oColor string) *renderer {
	return &renderer{
		output: output,
		xColor: xColor,
		oColor: oColor,
	}
}

// Board - the grid with row and column numbers around it.
func (that *renderer) Board(grid entity.Grid) string {
	var sb strings.Builder

	sb.WriteString(boardHeader)
	for row, cells := range grid {
		if row > 0 {
			sb.WriteString(boardSeparator)
		}

		fmt.Fprintf(&sb, "%d  %s | %s | %s\n", row, that.cell(cells[0]), that.cell(cells[1]), that.cell(cells[2]))
	}

	return sb.String()
}

// Status - the line shown under the board.
func (that *renderer) Status(state entity.State) string {
	switch {
	case state.Outcome.IsWon():
		return that.bold(state.Outcome.Winner.Name()+" wins!") + "\n" + "Type 'reset' to play again or 'quit' to leave.\n"
	case state.Outcome.IsDraw():
		return that.bold("It's a draw!") + "\n" + "Type 'reset' to play again or 'quit' to leave.\n"
	default:
		return fmt.Sprintf("Make your move %s!\n", state.CurrentPlayer.Name())
	}
}

func (that *renderer) cell(cell entity.Cell) string {
	switch cell {
	case entity.MarkerX:
		return that.colored(cell.String(), that.xColor)
	case entity.MarkerO:
		return that.colored(cell.String(), that.oColor)
	default:
		return " "
	}
}

func (that *renderer) colored(s, color string) string {
	style := that.output.String(s).Bold()
	if color != "" {
		style = style.Foreground(that.output.Color(color))
	}

	return style.String()
}

func (that *renderer) bold(s string) string {
	return that.output.String(s).Bold().String()
}

func (that *Server) render(state entity.State) error {
	return that.printf("\n%s\n%s", that.renderer.Board(state.Board), that.renderer.Status(state))
}
