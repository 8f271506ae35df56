package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// State is the caller-side game state machine.
type State string

const (
	StateAwaitingMove State = "awaiting_move"
	StateWon          State = "won"
	StateDrawn        State = "drawn"
	StateExited       State = "exited"
)

// Result describes what a move did. Player is the winner for StateWon and the
// player to move next for StateAwaitingMove.
type Result struct {
	State    State
	Player   entity.Player
	Position entity.Position
}

// GameController drives one game session for a single front-end.
type GameController struct {
	logger    *slog.Logger
	game      *entity.Game
	sessionID string
	state     State
	moves     int
}

func NewGameController(logger *slog.Logger, game *entity.Game) *GameController {
	sessionID := uuid.NewString()

	return &GameController{
		logger:    logger.With("component", "controller", "session", sessionID),
		game:      game,
		sessionID: sessionID,
		state:     StateAwaitingMove,
	}
}

func (that *GameController) SessionID() string {
	return that.sessionID
}

// Game - read access for rendering. Front-ends must not mutate it directly.
func (that *GameController) Game() *entity.Game {
	return that.game
}

func (that *GameController) State() State {
	return that.state
}

func (that *GameController) IsOver() bool {
	return that.state != StateAwaitingMove
}

// Choose - handles one line of console input: a tile index or the exit sentinel.
func (that *GameController) Choose(raw string) (Result, error) {
	if that.IsOver() {
		return that.result(entity.Position{}), apperror.ErrGameFinished
	}

	choice, err := that.game.ValidateChoice(raw)
	if err != nil {
		that.logger.Debug("rejected choice", "input", raw, "error", err)
		return that.result(entity.Position{}), fmt.Errorf("invalid choice: %w", err)
	}

	if choice == entity.ExitChoice {
		return that.Exit(), nil
	}

	return that.PlayTile(choice)
}

// PlayTile - plays the current player's move on a 1-based tile index.
func (that *GameController) PlayTile(index int) (Result, error) {
	pos, err := that.game.TileIndexToPosition(index)
	if err != nil {
		return that.result(entity.Position{}), fmt.Errorf("invalid turn: %w", err)
	}

	return that.Play(pos.Row, pos.Col)
}

// Play - runs one move cycle: apply, check win, check draw, then pass the turn.
func (that *GameController) Play(row, col int) (Result, error) {
	log := that.logger.With("method", "Play")
	pos := entity.Position{Row: row, Col: col}

	if that.IsOver() {
		return that.result(pos), apperror.ErrGameFinished
	}

	if err := validateMove(that.game, row, col); err != nil {
		log.Debug("rejected move", "row", row, "col", col, "error", err)
		return that.result(pos), fmt.Errorf("invalid turn: %w", err)
	}

	player := that.game.Turn()
	if err := that.game.ApplyMove(row, col); err != nil {
		return that.result(pos), fmt.Errorf("invalid turn: %w", err)
	}
	that.moves++

	log.Debug("move applied", "player", int(player), "row", row, "col", col, "moves", that.moves)

	switch {
	case that.game.IsWinning():
		that.state = StateWon
		log.Info("game won", "player", int(player))
	case that.game.IsDraw():
		that.state = StateDrawn
		log.Info("game drawn")
	default:
		that.game.ChangeTurn()
	}

	return that.result(pos), nil
}

// Exit - ends the session without a result.
func (that *GameController) Exit() Result {
	if !that.IsOver() {
		that.state = StateExited
		that.logger.Info("player exited", "player", int(that.game.Turn()), "moves", that.moves)
	}

	return that.result(entity.Position{})
}

func (that *GameController) result(pos entity.Position) Result {
	return Result{
		State:    that.state,
		Player:   that.game.Turn(),
		Position: pos,
	}
}

// validateMove - checks the move before any state changes.
func validateMove(game *entity.Game, row, col int) error {
	if _, err := game.Cell(row, col); err != nil {
		return err
	}

	if !game.IsEmpty(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOccupiedTile, row, col)
	}

	return nil
}
