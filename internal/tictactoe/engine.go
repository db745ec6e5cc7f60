package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Outcome - reports the first completed line in WinCombos order, then a draw for a full board.
func Outcome(board entity.Board) entity.Outcome {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			if a == entity.PlayerX {
				return entity.WinX
			}
			return entity.WinO
		}
	}

	for _, cell := range board {
		if cell == entity.EmptyCell {
			return entity.InProgress
		}
	}

	return entity.Draw
}

// LegalMoves - indices of the empty cells in ascending order.
func LegalMoves(board entity.Board) []int {
	moves := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == entity.EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}
