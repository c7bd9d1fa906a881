package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

const (
	promptPlayerMark = "Enter the player's icon (X/O)"
	promptFirstMark  = "Which player will go first (X/O)?"
	promptRow        = "  Enter a row (1-indexed)"
	promptCol        = "  Enter a column (1-indexed)"
)

// Settings preset answers to the opening prompts; EmptyCell means ask.
type Settings struct {
	PlayerMark entity.Mark
	FirstMark  entity.Mark
}

// Session plays one interactive game on a text terminal.
type Session struct {
	logger   *slog.Logger
	bot      service.BotService
	settings Settings
	out      *termenv.Output

	prompter
	renderer
}

func New(logger *slog.Logger, bot service.BotService, in io.Reader, out *termenv.Output, settings Settings) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Session{
		logger:   logger.With("component", "console"),
		bot:      bot,
		settings: settings,
		out:      out,
		prompter: prompter{scanner: scanner, out: out},
		renderer: renderer{out: out},
	}
}

// Run - plays a game until it is won, tied, the input closes or ctx is canceled.
func (that *Session) Run(ctx context.Context) error {
	game, err := that.newGame()
	if err != nil {
		return err
	}

	log := that.logger.With("human", game.Human().Mark.String(), "bot", game.Bot().Mark.String())
	log.Info("game started", "first", game.Turn.String())

	that.renderGame(game)

	for !game.IsFinished() {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		if game.IsBotTurn() {
			err = that.botTurn(game)
		} else {
			err = that.humanTurn(game)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(that.out)
		that.renderGame(game)
	}

	outcome := game.Outcome()
	fmt.Fprintln(that.out, outcome)
	log.Info("game finished", "outcome", outcome)

	return nil
}

func (that *Session) newGame() (*entity.Game, error) {
	var err error

	humanMark := that.settings.PlayerMark
	if humanMark == entity.EmptyCell {
		if humanMark, err = that.promptMark(promptPlayerMark); err != nil {
			return nil, err
		}
	}

	firstMark := that.settings.FirstMark
	if firstMark == entity.EmptyCell {
		if firstMark, err = that.promptMark(promptFirstMark); err != nil {
			return nil, err
		}
	}

	game, err := entity.NewGame(humanMark, firstMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

// humanTurn - asks for a move until the game accepts one.
func (that *Session) humanTurn(game *entity.Game) error {
	human := game.Human()

	for {
		fmt.Fprintln(that.out, "Your turn -")

		row, err := that.promptInt(promptRow)
		if err != nil {
			return err
		}

		col, err := that.promptInt(promptCol)
		if err != nil {
			return err
		}

		move := entity.Move{Row: row - 1, Col: col - 1}
		err = game.MakeTurn(human.Mark, move)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, apperror.ErrInvalidCell), errors.Is(err, apperror.ErrCellOccupied):
			fmt.Fprintf(that.out, "(%d, %d) is not a valid move. Try again.\n", row, col)
		default:
			return fmt.Errorf("failed to make turn: %w", err)
		}
	}
}

func (that *Session) botTurn(game *entity.Game) error {
	fmt.Fprintln(that.out, "Opponent's turn:")

	move, err := that.bot.MakeTurn(game)
	if err != nil {
		return fmt.Errorf("failed to make bot turn: %w", err)
	}

	fmt.Fprintf(that.out, "%s: %d\n", promptRow, move.Row+1)
	fmt.Fprintf(that.out, "%s: %d\n", promptCol, move.Col+1)

	return nil
}
