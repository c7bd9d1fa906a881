package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

const TieMessage = "Tie!"

// Game is the authoritative state of one human vs computer game. Only the game loop mutates it.
type Game struct {
	Board   *Board
	Turn    Mark
	Status  string
	Players []*Player
}

// NewGame - creates a game on an empty board; the computer plays the opposite mark of the human.
func NewGame(humanMark, firstMark Mark) (*Game, error) {
	if humanMark != PlayerX && humanMark != PlayerO {
		return nil, fmt.Errorf("%w: human mark %q", apperror.ErrInvalidMark, humanMark)
	}

	if firstMark != PlayerX && firstMark != PlayerO {
		return nil, fmt.Errorf("%w: first mark %q", apperror.ErrInvalidMark, firstMark)
	}

	return &Game{
		Board:  NewBoard(),
		Turn:   firstMark,
		Status: StatusOngoing,
		Players: []*Player{
			NewHumanPlayer(humanMark),
			NewBotPlayer(humanMark.Opponent()),
		},
	}, nil
}

func (that *Game) Human() *Player {
	for _, player := range that.Players {
		if !player.IsBot() {
			return player
		}
	}
	return nil
}

func (that *Game) Bot() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}
	return nil
}

// MakeTurn - places mark at move and passes the turn, or finishes the game on a terminal board.
func (that *Game) MakeTurn(mark Mark, move Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if move.Row < 0 || move.Row >= that.Board.Rows() || move.Col < 0 || move.Col >= that.Board.Cols() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if !that.Board.Place(move.Row, move.Col, mark) {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	if that.Board.Terminal() {
		that.Status = StatusFinished
		return
	}

	that.Status = StatusOngoing
	that.Turn = that.Turn.Opponent()
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsBotTurn() bool {
	bot := that.Bot()
	return bot != nil && that.Turn == bot.Mark
}

// Outcome - the end of game message, scored from the computer's side: "<mark> wins!" or "Tie!".
func (that *Game) Outcome() string {
	bot := that.Bot()
	switch that.Board.Utility(bot.Mark) {
	case 1:
		return fmt.Sprintf("%s wins!", bot.Mark)
	case -1:
		return fmt.Sprintf("%s wins!", bot.Mark.Opponent())
	default:
		return TieMessage
	}
}
