package tictactoe_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
)

func TestNewGameController(t *testing.T) {
	_, st := suite.New(t)

	// Then: a session starts awaiting player one with a UUID session id
	assert.Equal(t, tictactoe.StateAwaitingMove, st.Controller.State())
	assert.False(t, st.Controller.IsOver())
	assert.Equal(t, entity.PlayerOne, st.Controller.Game().Turn())

	_, err := uuid.Parse(st.Controller.SessionID())
	require.NoError(t, err)
}

func TestGameController_Play(t *testing.T) {
	t.Run("Valid move passes the turn", func(t *testing.T) {
		_, st := suite.New(t)

		// When: player one plays the centre
		result, err := st.Controller.Play(1, 1)

		// Then: the mark is placed and player two is up
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Result{
			State:    tictactoe.StateAwaitingMove,
			Player:   entity.PlayerTwo,
			Position: entity.Position{Row: 1, Col: 1},
		}, result)

		mark, err := st.Game.Cell(1, 1)
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerOneMark, mark)
	})

	t.Run("Occupied cell is rejected without changing state", func(t *testing.T) {
		_, st := suite.New(t)
		_, err := st.Controller.Play(0, 0)
		require.NoError(t, err)
		before := st.Game.Board()

		// When: player two targets the same cell
		result, err := st.Controller.Play(0, 0)

		// Then: ErrOccupiedTile and player two keeps the turn
		require.ErrorIs(t, err, apperror.ErrOccupiedTile)
		assert.Equal(t, entity.PlayerTwo, result.Player)
		assert.Equal(t, before, st.Game.Board())
	})

	t.Run("Out-of-bounds cell is rejected", func(t *testing.T) {
		_, st := suite.New(t)

		_, err := st.Controller.Play(0, 3)

		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
		assert.Equal(t, entity.PlayerOne, st.Game.Turn())
	})

	t.Run("Win keeps the winner on turn", func(t *testing.T) {
		_, st := suite.New(t)

		// When: player one completes 1-5-9 while player two plays 2 and 3
		result := st.PlayTiles(1, 2, 5, 3, 9)

		// Then: the game is won by player one
		assert.Equal(t, tictactoe.StateWon, result.State)
		assert.Equal(t, entity.PlayerOne, result.Player)
		assert.Equal(t, entity.PlayerOne, st.Game.Turn())
		assert.True(t, st.Controller.IsOver())
	})

	t.Run("Winning move that fills the board is a win, not a draw", func(t *testing.T) {
		_, st := suite.New(t)

		// When: the ninth move completes the 1-5-9 diagonal
		result := st.PlayTiles(1, 3, 2, 4, 5, 7, 6, 8, 9)

		// Then: the board is full but the result is a win
		assert.True(t, st.Game.IsDraw())
		assert.Equal(t, tictactoe.StateWon, result.State)
		assert.Equal(t, entity.PlayerOne, result.Player)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		_, st := suite.New(t)

		result := st.PlayTiles(1, 2, 3, 5, 4, 6, 8, 7, 9)

		assert.Equal(t, tictactoe.StateDrawn, result.State)
		assert.False(t, st.Game.IsWinning())
	})

	t.Run("Moves after the game is over are rejected", func(t *testing.T) {
		_, st := suite.New(t)
		st.PlayTiles(1, 4, 2, 5, 3)
		before := st.Game.Board()

		// When: another move is attempted
		result, err := st.Controller.Play(2, 2)

		// Then: ErrGameFinished and nothing changes
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, tictactoe.StateWon, result.State)
		assert.Equal(t, before, st.Game.Board())
	})
}

func TestGameController_Choose(t *testing.T) {
	t.Run("Tile index plays the move", func(t *testing.T) {
		_, st := suite.New(t)

		result, err := st.Controller.Choose("5")

		require.NoError(t, err)
		assert.Equal(t, entity.Position{Row: 1, Col: 1}, result.Position)
		assert.Equal(t, entity.PlayerTwo, result.Player)
	})

	t.Run("Exit sentinel ends the session", func(t *testing.T) {
		_, st := suite.New(t)

		result, err := st.Controller.Choose("-1")

		require.NoError(t, err)
		assert.Equal(t, tictactoe.StateExited, result.State)
		assert.True(t, st.Controller.IsOver())
	})

	t.Run("Errors keep their kind", func(t *testing.T) {
		_, st := suite.New(t)
		_, err := st.Controller.Choose("1")
		require.NoError(t, err)

		_, err = st.Controller.Choose("abc")
		require.ErrorIs(t, err, apperror.ErrParse)

		_, err = st.Controller.Choose("99")
		require.ErrorIs(t, err, apperror.ErrInvalidTile)

		_, err = st.Controller.Choose("1")
		require.ErrorIs(t, err, apperror.ErrOccupiedTile)

		// And: player two still has the turn
		assert.Equal(t, entity.PlayerTwo, st.Game.Turn())
	})

	t.Run("Input after exit is rejected", func(t *testing.T) {
		_, st := suite.New(t)
		st.Controller.Exit()

		_, err := st.Controller.Choose("1")

		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.True(t, st.Game.IsEmpty(0, 0))
	})
}

func TestGameController_PlayTile(t *testing.T) {
	_, st := suite.New(t)

	_, err := st.Controller.PlayTile(10)

	require.ErrorIs(t, err, apperror.ErrInvalidTile)
}

func TestGameController_Exit(t *testing.T) {
	t.Run("Exit after a win keeps the win", func(t *testing.T) {
		_, st := suite.New(t)
		st.PlayTiles(1, 4, 2, 5, 3)

		result := st.Controller.Exit()

		assert.Equal(t, tictactoe.StateWon, result.State)
	})
}
