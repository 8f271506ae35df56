package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	msgInvalidInput = "Invalid input!"
	msgOccupiedTile = "Invalid move. Tile already occupied!"
	msgDraw         = "DRAW!"
)

type gameController interface {
	Game() *entity.Game
	Choose(raw string) (tictactoe.Result, error)
	Exit() tictactoe.Result
}

// Console plays one game over a line-oriented reader and writer.
type Console struct {
	logger *slog.Logger
	ctrl   gameController

	in      *bufio.Scanner
	out     *bufio.Writer
	symbols [3]string
	noPause bool
}

func New(logger *slog.Logger, ctrl gameController, in io.Reader, out io.Writer, conf config.Console) *Console {
	return &Console{
		logger:  logger.With("component", "console"),
		ctrl:    ctrl,
		in:      bufio.NewScanner(in),
		out:     bufio.NewWriter(out),
		symbols: conf.Symbols(),
		noPause: conf.NoPause,
	}
}

// Run - prompts until someone wins, the board is full, the player exits or input ends.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")
	game := that.ctrl.Game()

	for {
		if ctx.Err() != nil {
			that.ctrl.Exit()
			log.Info("context canceled, leaving game")
			return nil
		}

		that.displayBoard(game)
		fmt.Fprintf(that.out, "Player %s's turn\n", game.Turn())
		fmt.Fprintf(that.out, "Choice (1-%d, %d to exit the game): ", game.TileCount(), entity.ExitChoice)

		if err := that.out.Flush(); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		choice, err := that.readLine()
		if err != nil {
			that.ctrl.Exit()
			return ignoreEOF(err)
		}

		result, err := that.ctrl.Choose(choice)
		if errors.Is(err, apperror.ErrGameFinished) {
			return nil
		}

		if err != nil {
			that.reportInvalid(err)

			if err = that.pause(); err != nil {
				that.ctrl.Exit()
				return ignoreEOF(err)
			}

			continue
		}

		switch result.State {
		case tictactoe.StateAwaitingMove:
			continue
		case tictactoe.StateWon:
			that.displayBoard(game)
			fmt.Fprintf(that.out, "PLAYER %s WINS!\n", result.Player)
		case tictactoe.StateDrawn:
			fmt.Fprintln(that.out, msgDraw)
		case tictactoe.StateExited:
			log.Debug("exit requested")
		}

		if err = that.out.Flush(); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}

		return nil
	}
}

// displayBoard - one row per line, each cell followed by two spaces, blank line between rows.
func (that *Console) displayBoard(game *entity.Game) {
	for _, row := range game.Board() {
		for _, cell := range row {
			fmt.Fprint(that.out, that.symbols[cell], "  ")
		}
		fmt.Fprint(that.out, "\n\n")
	}
}

func (that *Console) reportInvalid(err error) {
	if errors.Is(err, apperror.ErrOccupiedTile) {
		fmt.Fprintln(that.out, msgOccupiedTile)
		return
	}

	fmt.Fprintln(that.out, msgInvalidInput)
}

// pause - waits for Enter so the message stays on screen before the board is redrawn.
func (that *Console) pause() error {
	if err := that.out.Flush(); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	if that.noPause {
		return nil
	}

	_, err := that.readLine()

	return err
}

func (that *Console) readLine() (string, error) {
	if that.in.Scan() {
		return that.in.Text(), nil
	}

	if err := that.in.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return "", io.EOF
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}
