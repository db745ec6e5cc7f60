package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestComputerPlayer_ChooseMove(t *testing.T) {
	computer := NewComputerPlayer()

	t.Run("Computer as X takes the win", func(t *testing.T) {
		board := entity.Board{x, x, e, o, o, e, e, e, e}

		move, ok := computer.ChooseMove(board, x)

		require.True(t, ok)
		assert.Equal(t, 2, move)
	})

	t.Run("Computer as O does not reuse X's best cell", func(t *testing.T) {
		// Given: O to move, X threatens 1 and 8, O can win on 8
		board := entity.Board{x, e, o, e, x, o, e, x, e}
		require.Equal(t, o, board.NextMark())

		// When: the X-maximizing search is asked directly
		_, xMove, ok := BestMove(&board, x)
		require.True(t, ok)
		require.Equal(t, 1, xMove)

		// Then: taking that cell as O hands X the game
		lost := board
		lost[xMove] = o
		value, _, _ := BestMove(&lost, x)
		require.Equal(t, 1, value)

		// When: the computer chooses as O
		move, ok := computer.ChooseMove(board, o)

		// Then: it completes its own column instead
		require.True(t, ok)
		assert.Equal(t, 8, move)
		board[move] = o
		assert.Equal(t, entity.WinO, Outcome(board))
	})

	t.Run("Computer as O blocks a single threat", func(t *testing.T) {
		// Given: X threatens the top row, O has nothing
		board := entity.Board{x, x, e, e, o, e, e, e, e}

		move, ok := computer.ChooseMove(board, o)

		require.True(t, ok)
		assert.Equal(t, 2, move)
	})

	t.Run("Terminal board yields no move", func(t *testing.T) {
		board := entity.Board{o, x, o, o, x, x, x, o, x}

		move, ok := computer.ChooseMove(board, o)

		assert.False(t, ok)
		assert.Equal(t, NoMove, move)
	})

	t.Run("Does not modify the caller's board", func(t *testing.T) {
		board := entity.Board{x, e, e, e, o, e, e, e, x}
		before := board

		_, _ = computer.ChooseMove(board, o)

		assert.Equal(t, before, board)
	})
}

func TestComputerPlayer_ChooseMove_MatchesMinimizingSearch(t *testing.T) {
	computer := NewComputerPlayer()

	// every position after three plies has O to move
	for first := 0; first < entity.BoardSize; first++ {
		for second := 0; second < entity.BoardSize; second++ {
			for third := 0; third < entity.BoardSize; third++ {
				if first == second || second == third || first == third {
					continue
				}

				board := entity.Board{}
				board[first], board[second], board[third] = x, o, x

				_, want, ok := BestMove(&board, o)
				require.True(t, ok)

				got, ok := computer.ChooseMove(board, o)
				require.True(t, ok)
				assert.Equal(t, want, got, "X on %d and %d, O on %d", first, third, second)
			}
		}
	}
}
