package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/transport/board"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

// shutdownTimeout - how long to wait for the front-end to release the terminal after a signal.
const shutdownTimeout = time.Second

type frontend interface {
	Run(ctx context.Context) error
}

// RunApp - runs one game session in the configured front-end.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameController := tictactoe.NewGameController(logger, entity.NewGame())

	ui, err := newFrontend(logger, conf, gameController)
	if err != nil {
		return err
	}

	log.Info("Starting game", "mode", conf.Mode, "session", gameController.SessionID())

	// stdin reads cannot be interrupted, so the front-end runs aside and a signal wins the race
	errCh := make(chan error, 1)
	go func() {
		errCh <- ui.Run(ctx)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("%s front-end error: %w", conf.Mode, err)
		}

		log.Info("Game finished", "state", gameController.State())
		return nil
	case <-ctx.Done():
		select {
		case <-errCh:
		case <-time.After(shutdownTimeout):
		}

		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newFrontend(logger *slog.Logger, conf *config.Config, ctrl *tictactoe.GameController) (frontend, error) {
	switch conf.Mode {
	case config.ModeConsole:
		return console.New(logger, ctrl, os.Stdin, os.Stdout, conf.Console), nil
	case config.ModeBoard:
		return board.New(logger, ctrl, conf.Board), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownMode, conf.Mode)
	}
}
