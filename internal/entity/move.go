package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

type Mark byte

const (
	EmptyCell Mark = ' '
	PlayerX   Mark = 'X'
	PlayerO   Mark = 'O'
)

// ParseMark - accepts "x" or "o" in any case, surrounding spaces are ignored.
func ParseMark(value string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, value)
	}
}

// IsPlayer - true for X and O.
func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) String() string {
	return string(rune(that))
}

// Move is a zero-based (row, column) pair.
type Move struct {
	Row int
	Col int
}

// NoMove marks the root of a search tree, which no move leads to.
var NoMove = Move{Row: -1, Col: -1}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}
