package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Game       *entity.Game
	Controller *tictactoe.GameController
}

// New - builds a fresh game session with a silent logger for one test.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	game := entity.NewGame()

	return ctx, &Suite{
		T:          t,
		Logger:     logger,
		Game:       game,
		Controller: tictactoe.NewGameController(logger, game),
	}
}

// PlayTiles - plays tiles in order and fails the test on the first rejected move.
func (that *Suite) PlayTiles(tiles ...int) tictactoe.Result {
	that.Helper()

	var (
		result tictactoe.Result
		err    error
	)

	for _, tile := range tiles {
		result, err = that.Controller.PlayTile(tile)
		if err != nil {
			that.Fatalf("tile %d rejected: %v", tile, err)
		}
	}

	return result
}
