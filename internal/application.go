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

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/console"
)

type gameSession interface {
	Run(ctx context.Context) error
}

// RunApp - plays one console game against the minimax bot on stdin/stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var outputOptions []termenv.OutputOption
	if conf.NoColor {
		outputOptions = append(outputOptions, termenv.WithProfile(termenv.Ascii))
	}

	playerMark, firstMark := conf.Marks()
	session := console.New(logger, service.NewBotService(logger), os.Stdin, termenv.NewOutput(os.Stdout, outputOptions...), console.Settings{
		PlayerMark: playerMark,
		FirstMark:  firstMark,
	})

	return play(ctx, logger.With("component", "app"), session)
}

// play - runs the session aside, since stdin reads can't be interrupted, and waits for it or ctx.
// Closing the input or stopping the process ends the game without an error.
func play(ctx context.Context, log *slog.Logger, session gameSession) error {
	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx)
	}()

	select {
	case err := <-done:
		switch {
		case err == nil:
			return nil
		case errors.Is(err, console.ErrInputClosed), errors.Is(err, context.Canceled):
			log.Info("input closed, leaving the game")
			return nil
		default:
			return fmt.Errorf("console session error: %w", err)
		}
	case <-ctx.Done():
		log.Info("stopped by signal")
		return nil
	}
}
