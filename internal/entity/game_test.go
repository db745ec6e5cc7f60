package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

func TestNewGame(t *testing.T) {
	t.Run("Creates an empty human vs human game with X to move", func(t *testing.T) {
		// When: creating a human vs human game
		game, err := NewGame("123", HumanVsHumanMode, PlayerO)

		// Then: the game starts empty, ongoing, X first and without a human mark
		require.NoError(t, err)
		expectedGame := &Game{
			ID:     "123",
			Board:  Board{},
			Turn:   PlayerX,
			Status: StatusOngoing,
			Mode:   HumanVsHumanMode,
		}
		require.Equal(t, expectedGame, game)
	})

	t.Run("Keeps the human mark against the computer", func(t *testing.T) {
		// When: creating a game where the human plays O
		game, err := NewGame("123", HumanVsComputerMode, PlayerO)

		// Then: the computer plays X and moves first
		require.NoError(t, err)
		assert.Equal(t, PlayerO, game.HumanMark)
		assert.Equal(t, PlayerX, game.ComputerMark())
		assert.True(t, game.IsComputerTurn())
	})

	t.Run("Returns ErrUnknownMode for an unknown mode", func(t *testing.T) {
		// When: creating a game with an unsupported mode
		_, err := NewGame("123", "online", PlayerX)

		// Then: ErrUnknownMode is returned
		assert.ErrorIs(t, err, apperror.ErrUnknownMode)
	})

	t.Run("Returns ErrInvalidMark when the human has no mark against the computer", func(t *testing.T) {
		// When: creating a computer game with an empty mark
		_, err := NewGame("123", HumanVsComputerMode, EmptyCell)

		// Then: ErrInvalidMark is returned
		assert.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.True(t, game.IsFinished())
		assert.False(t, game.IsOngoing())
	})

	t.Run("Human vs human game has no computer mark", func(t *testing.T) {
		game := &Game{Status: StatusOngoing, Mode: HumanVsHumanMode, Turn: PlayerX}

		assert.Equal(t, EmptyCell, game.ComputerMark())
		assert.False(t, game.IsComputerTurn())
	})

	t.Run("Finished game is never the computer's turn", func(t *testing.T) {
		game := &Game{Status: StatusFinished, Mode: HumanVsComputerMode, HumanMark: PlayerX, Turn: PlayerO}

		assert.False(t, game.IsComputerTurn())
	})
}

func TestGame_ApplyOutcome(t *testing.T) {
	t.Run("Finishes the game when Player X wins", func(t *testing.T) {
		// Given: an ongoing game
		game := &Game{Status: StatusOngoing, Turn: PlayerX}

		// When: applying a win for X
		game.ApplyOutcome(WinX, PlayerO)

		// Then: the game is finished with X as the winner and no turn
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerX, game.Winner)
		assert.Equal(t, EmptyCell, game.Turn)
	})

	t.Run("Finishes the game with a tie on draw", func(t *testing.T) {
		game := &Game{Status: StatusOngoing, Turn: PlayerO}

		game.ApplyOutcome(Draw, PlayerX)

		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerTie, game.Winner)
		assert.Equal(t, EmptyCell, game.Turn)
	})

	t.Run("Passes the turn while the game is in progress", func(t *testing.T) {
		game := &Game{Status: StatusOngoing, Turn: PlayerX}

		game.ApplyOutcome(InProgress, PlayerO)

		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, EmptyCell, game.Winner)
		assert.Equal(t, PlayerO, game.Turn)
	})
}
