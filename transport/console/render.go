package console

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	colorX = "1" // red
	colorO = "4" // blue
)

type renderer struct {
	out *termenv.Output
}

// renderGame - prints the banner and the grid with 1-indexed row and column headers.
func (that *renderer) renderGame(game *entity.Game) {
	fmt.Fprintf(that.out, "PLAYER: %s --- COMPUTER: %s\n", that.mark(game.Human().Mark), that.mark(game.Bot().Mark))
	that.renderBoard(game.Board)
	fmt.Fprintln(that.out)
}

func (that *renderer) renderBoard(board *entity.Board) {
	var sb strings.Builder

	sb.WriteString("  ")
	for c := 0; c < board.Cols(); c++ {
		fmt.Fprintf(&sb, "%d ", c+1)
	}
	sb.WriteByte('\n')

	for r := 0; r < board.Rows(); r++ {
		fmt.Fprintf(&sb, "%d ", r+1)
		for c := 0; c < board.Cols(); c++ {
			sb.WriteString(that.mark(board.Cell(r, c)))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	fmt.Fprint(that.out, sb.String())
}

func (that *renderer) mark(mark entity.Mark) string {
	style := that.out.String(mark.String())
	switch mark {
	case entity.PlayerX:
		return style.Foreground(that.out.Color(colorX)).Bold().String()
	case entity.PlayerO:
		return style.Foreground(that.out.Color(colorO)).Bold().String()
	default:
		return style.String()
	}
}
