package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const defaultBoardSize = 3

var ErrRaggedBoard = errors.New("board rows have different lengths")

// Board is a grid of marks. Search code never mutates a shared board,
// it works on clones produced by Next.
type Board struct {
	cells     []Mark
	rows      int
	cols      int
	moveCount int
}

// NewBoard - creates an empty 3x3 board.
func NewBoard() *Board {
	return NewBoardWithSize(defaultBoardSize, defaultBoardSize)
}

func NewBoardWithSize(rows, cols int) *Board {
	cells := make([]Mark, rows*cols)
	for i := range cells {
		cells[i] = EmptyCell
	}

	return &Board{
		cells: cells,
		rows:  rows,
		cols:  cols,
	}
}

// NewBoardFromCells - builds a board snapshot from rows of marks; the move count is derived from the non-empty cells.
func NewBoardFromCells(rows [][]Mark) (*Board, error) {
	if len(rows) == 0 {
		return NewBoardWithSize(0, 0), nil
	}

	board := NewBoardWithSize(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != board.cols {
			return nil, fmt.Errorf("%w: row %d", ErrRaggedBoard, r)
		}

		for c, mark := range row {
			if mark == EmptyCell {
				continue
			}
			if !mark.IsPlayer() {
				return nil, fmt.Errorf("%w: %q at (%d, %d)", apperror.ErrInvalidMark, mark, r, c)
			}
			board.cells[board.index(r, c)] = mark
			board.moveCount++
		}
	}

	return board, nil
}

func (that *Board) Rows() int {
	return that.rows
}

func (that *Board) Cols() int {
	return that.cols
}

// MoveCount - number of non-empty cells.
func (that *Board) MoveCount() int {
	return that.moveCount
}

// Cell - returns the mark at (row, col); out of bounds reads as EmptyCell.
func (that *Board) Cell(row, col int) Mark {
	if !that.inBounds(row, col) {
		return EmptyCell
	}
	return that.cells[that.index(row, col)]
}

// Clone - returns a deep copy; placements on either board never affect the other.
func (that *Board) Clone() *Board {
	cells := make([]Mark, len(that.cells))
	copy(cells, that.cells)

	return &Board{
		cells:     cells,
		rows:      that.rows,
		cols:      that.cols,
		moveCount: that.moveCount,
	}
}

// IsValidMove - true if (row, col) is on the board and empty.
func (that *Board) IsValidMove(row, col int) bool {
	return that.inBounds(row, col) && that.cells[that.index(row, col)] == EmptyCell
}

// Place - writes mark into (row, col). Returns false without effect if the move is invalid
// or mark is not a player's.
func (that *Board) Place(row, col int, mark Mark) bool {
	if !mark.IsPlayer() || !that.IsValidMove(row, col) {
		return false
	}

	that.cells[that.index(row, col)] = mark
	that.moveCount++

	return true
}

// Moves - the empty cells in row-major order.
func (that *Board) Moves() []Move {
	moves := make([]Move, 0, len(that.cells)-that.moveCount)
	for r := 0; r < that.rows; r++ {
		for c := 0; c < that.cols; c++ {
			if that.cells[that.index(r, c)] == EmptyCell {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// Next - returns a copy of the board with mark placed at move; the receiver is untouched.
// Reports false, with a nil board, if the placement is rejected.
func (that *Board) Next(move Move, mark Mark) (*Board, bool) {
	next := that.Clone()
	if !next.Place(move.Row, move.Col, mark) {
		return nil, false
	}
	return next, true
}

// Terminal - true if any line is a streak or the board is full.
func (that *Board) Terminal() bool {
	if that.hasStreak(PlayerX) || that.hasStreak(PlayerO) {
		return true
	}
	return that.moveCount == that.rows*that.cols
}

// Utility - +1 if mark owns a streak, -1 if its opponent does, 0 otherwise.
// Only meaningful on a terminal board.
func (that *Board) Utility(mark Mark) int {
	switch {
	case that.hasStreak(mark):
		return 1
	case that.hasStreak(mark.Opponent()):
		return -1
	default:
		return 0
	}
}

func (that *Board) String() string {
	var sb strings.Builder
	for r := 0; r < that.rows; r++ {
		sb.WriteByte('[')
		for c := 0; c < that.cols; c++ {
			if c > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(that.cells[that.index(r, c)].String())
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

func (that *Board) hasStreak(mark Mark) bool {
	for r := 0; r < that.rows; r++ {
		if that.lineHasStreak(mark, r, 0, 0, 1, that.cols) {
			return true
		}
	}

	for c := 0; c < that.cols; c++ {
		if that.lineHasStreak(mark, 0, c, 1, 0, that.rows) {
			return true
		}
	}

	diagonal := min(that.rows, that.cols)
	return that.lineHasStreak(mark, 0, 0, 1, 1, diagonal) ||
		that.lineHasStreak(mark, 0, that.cols-1, 1, -1, diagonal)
}

// lineHasStreak - walks length cells from (row, col) in direction (dRow, dCol).
func (that *Board) lineHasStreak(mark Mark, row, col, dRow, dCol, length int) bool {
	if mark == EmptyCell || length == 0 {
		return false
	}

	for i := 0; i < length; i++ {
		if that.cells[that.index(row+i*dRow, col+i*dCol)] != mark {
			return false
		}
	}
	return true
}

func (that *Board) inBounds(row, col int) bool {
	return row >= 0 && row < that.rows && col >= 0 && col < that.cols
}

func (that *Board) index(row, col int) int {
	return row*that.cols + col
}
