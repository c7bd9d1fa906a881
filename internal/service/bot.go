package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn - searches a snapshot of the game board and plays the best move for the bot.
func (that *botService) MakeTurn(game *entity.Game) (entity.Move, error) {
	botPlayer := game.Bot()
	if botPlayer == nil {
		return entity.NoMove, ErrBotNotFound
	}

	root, err := minimax.Search(game.Board.Clone(), botPlayer.Mark)
	if err != nil {
		return entity.NoMove, fmt.Errorf("bot failed to search: %w", err)
	}

	best, err := minimax.BestChild(root)
	if err != nil {
		return entity.NoMove, fmt.Errorf("bot failed to choose move: %w", err)
	}

	// counting nodes walks the whole tree
	if that.logger.Enabled(context.Background(), slog.LevelDebug) {
		that.logger.Debug("move chosen",
			"mark", botPlayer.Mark.String(),
			"move", best.Move.String(),
			"rank", best.Rank,
			"nodes", root.Size(),
		)
	}

	if err = game.MakeTurn(botPlayer.Mark, best.Move); err != nil {
		return entity.NoMove, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return best.Move, nil
}
