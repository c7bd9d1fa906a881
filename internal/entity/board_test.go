package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	x = PlayerX
	o = PlayerO
	e = EmptyCell
)

func mustBoard(t *testing.T, rows [][]Mark) *Board {
	t.Helper()

	board, err := NewBoardFromCells(rows)
	require.NoError(t, err)

	return board
}

func TestNewBoard(t *testing.T) {
	// When: create a new board
	board := NewBoard()

	// Then: it is an empty 3x3 grid
	assert.Equal(t, 3, board.Rows())
	assert.Equal(t, 3, board.Cols())
	assert.Equal(t, 0, board.MoveCount())
	assert.Len(t, board.Moves(), 9)
	assert.False(t, board.Terminal())
}

func TestNewBoardFromCells(t *testing.T) {
	t.Run("Counts non-empty cells", func(t *testing.T) {
		// Given: rows with three marks
		rows := [][]Mark{
			{x, e, o},
			{e, x, e},
			{e, e, e},
		}

		// When: building the board
		board := mustBoard(t, rows)

		// Then: the move count matches the marks
		assert.Equal(t, 3, board.MoveCount())
		assert.Equal(t, o, board.Cell(0, 2))
	})

	t.Run("Rejects ragged rows", func(t *testing.T) {
		// When: rows have different lengths
		_, err := NewBoardFromCells([][]Mark{{x, e, o}, {e, x}})

		// Then: ErrRaggedBoard is returned
		require.ErrorIs(t, err, ErrRaggedBoard)
	})

	t.Run("Rejects marks that belong to no player", func(t *testing.T) {
		// When: a row holds an unknown mark
		board, err := NewBoardFromCells([][]Mark{{'Z', 'Z', 'Z'}, {e, e, e}, {e, e, e}})

		// Then: ErrInvalidMark is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
		assert.Nil(t, board)
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Places on an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: X places at (1, 2)
		ok := board.Place(1, 2, x)

		// Then: the cell holds X and the move is counted
		require.True(t, ok)
		assert.Equal(t, x, board.Cell(1, 2))
		assert.Equal(t, 1, board.MoveCount())
	})

	t.Run("Rejects occupied and out of bounds cells without effect", func(t *testing.T) {
		// Given: a board with X at (0, 0)
		board := NewBoard()
		require.True(t, board.Place(0, 0, x))
		before := board.Clone()

		for _, move := range []Move{{0, 0}, {-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
			// When: placing on an invalid cell
			ok := board.Place(move.Row, move.Col, o)

			// Then: nothing changes
			assert.False(t, ok, "move %s", move)
			assert.False(t, board.IsValidMove(move.Row, move.Col), "move %s", move)
			assert.Equal(t, before, board)
		}
	})

	t.Run("Rejects marks that belong to no player", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		for r := 0; r < board.Rows(); r++ {
			for c := 0; c < board.Cols(); c++ {
				// When: placing an empty or unknown mark
				assert.False(t, board.Place(r, c, EmptyCell))
				assert.False(t, board.Place(r, c, Mark('Z')))
			}
		}

		// Then: the move count still matches the empty cells
		assert.Equal(t, 0, board.MoveCount())
		assert.Len(t, board.Moves(), 9)
		assert.False(t, board.Terminal())
	})
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board and its clone
	board := NewBoard()
	require.True(t, board.Place(0, 0, x))
	clone := board.Clone()

	// When: both are mutated independently
	require.True(t, clone.Place(1, 1, o))
	require.True(t, board.Place(2, 2, x))

	// Then: neither sees the other's placement
	assert.Equal(t, e, board.Cell(1, 1))
	assert.Equal(t, e, clone.Cell(2, 2))
	assert.Equal(t, 2, board.MoveCount())
	assert.Equal(t, 2, clone.MoveCount())
}

func TestBoard_Next(t *testing.T) {
	// Given: an empty board
	board := NewBoard()

	// When: deriving the next state
	next, ok := board.Next(Move{Row: 1, Col: 1}, o)

	// Then: only the derived board holds the mark
	require.True(t, ok)
	assert.Equal(t, o, next.Cell(1, 1))
	assert.Equal(t, 1, next.MoveCount())
	assert.Equal(t, e, board.Cell(1, 1))
	assert.Equal(t, 0, board.MoveCount())

	// Then: a rejected placement yields no board
	for _, move := range []Move{{Row: 1, Col: 1}, {Row: 3, Col: 0}} {
		rejected, ok := next.Next(move, x)
		assert.False(t, ok, "move %s", move)
		assert.Nil(t, rejected)
	}
	_, ok = board.Next(Move{Row: 0, Col: 0}, EmptyCell)
	assert.False(t, ok)
}

func TestBoard_Moves(t *testing.T) {
	// Given: a board with the corners taken
	board := mustBoard(t, [][]Mark{
		{x, e, o},
		{e, e, e},
		{o, e, x},
	})

	// When: listing moves
	moves := board.Moves()

	// Then: the empty cells come in row-major order
	assert.Equal(t, []Move{{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}}, moves)
}

func TestBoard_Terminal(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]Mark
		terminal bool
	}{
		{"Empty board", [][]Mark{{e, e, e}, {e, e, e}, {e, e, e}}, false},
		{"Row streak", [][]Mark{{e, e, e}, {o, o, o}, {x, x, e}}, true},
		{"Column streak", [][]Mark{{x, o, e}, {x, o, e}, {x, e, e}}, true},
		{"Main diagonal", [][]Mark{{x, o, e}, {o, x, e}, {e, e, x}}, true},
		{"Anti diagonal", [][]Mark{{x, x, o}, {e, o, e}, {o, e, x}}, true},
		{"Full board without streak", [][]Mark{{x, o, x}, {x, o, o}, {o, x, x}}, true},
		{"Mixed line is not a streak", [][]Mark{{x, x, o}, {e, e, e}, {e, e, e}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: the board
			board := mustBoard(t, tt.rows)

			// Then: terminal matches
			assert.Equal(t, tt.terminal, board.Terminal())
		})
	}
}

func TestBoard_Utility(t *testing.T) {
	t.Run("Winner scores +1 and loser -1", func(t *testing.T) {
		// Given: a board X won through the middle column
		board := mustBoard(t, [][]Mark{
			{o, x, o},
			{e, x, e},
			{e, x, e},
		})

		// Then: utility is symmetric
		require.True(t, board.Terminal())
		assert.Equal(t, 1, board.Utility(x))
		assert.Equal(t, -1, board.Utility(o))
	})

	t.Run("Full board without a line is a tie for both marks", func(t *testing.T) {
		// Given: a drawn board
		board := mustBoard(t, [][]Mark{
			{x, o, x},
			{x, o, o},
			{o, x, x},
		})

		// Then: both marks score zero
		require.True(t, board.Terminal())
		assert.Equal(t, 0, board.Utility(x))
		assert.Equal(t, 0, board.Utility(o))
	})

	t.Run("Non-terminal board scores zero", func(t *testing.T) {
		// Given: an ongoing board
		board := mustBoard(t, [][]Mark{
			{x, e, e},
			{e, o, e},
			{e, e, e},
		})

		// Then: neither side has a win
		assert.Equal(t, 0, board.Utility(x))
	})
}

func TestBoard_LargerSquare(t *testing.T) {
	// Given: a 4x4 board with a full anti diagonal for O
	board := NewBoardWithSize(4, 4)
	for i := 0; i < 4; i++ {
		require.True(t, board.Place(i, 3-i, o))
	}

	// Then: the streak spans the whole diagonal
	assert.True(t, board.Terminal())
	assert.Equal(t, 1, board.Utility(o))
	assert.Len(t, board.Moves(), 12)
}

func TestBoard_String(t *testing.T) {
	board := mustBoard(t, [][]Mark{
		{x, e, o},
		{e, e, e},
		{e, e, e},
	})

	assert.Equal(t, "[X, ,O][ , , ][ , , ]", board.String())
}

func TestParseMark(t *testing.T) {
	for input, want := range map[string]Mark{"x": x, "X": x, " o ": o, "O": o} {
		mark, err := ParseMark(input)
		require.NoError(t, err)
		assert.Equal(t, want, mark)
	}

	_, err := ParseMark("z")
	require.Error(t, err)

	assert.Equal(t, o, x.Opponent())
	assert.Equal(t, x, o.Opponent())
}
