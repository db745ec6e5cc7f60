package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// NoMove is returned in place of a cell index when the position is terminal.
const NoMove = -1

// BestMove - exhaustive minimax over board with mover to play.
//
// The value is always from X's side: X maximizes, O minimizes, +1/-1/0 for an
// X win, an O win and a draw. Ties keep the lowest cell index. The board is
// mutated while searching and is back in its original state on return.
func BestMove(board *entity.Board, mover entity.Mark) (value, move int, ok bool) {
	if outcome := Outcome(*board); outcome.IsTerminal() {
		return outcome.Score(), NoMove, false
	}

	maximizing := mover == entity.PlayerX

	bestScore := math.MaxInt
	if maximizing {
		bestScore = math.MinInt
	}
	bestMove := NoMove

	for _, cell := range LegalMoves(*board) {
		score := scoreAfter(board, cell, mover)
		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore = score
			bestMove = cell
		}
	}

	return bestScore, bestMove, true
}

// scoreAfter - value of the position once mark is placed on cell, opponent to move.
func scoreAfter(board *entity.Board, cell int, mark entity.Mark) int {
	defer place(board, cell, mark)()

	score, _, _ := BestMove(board, mark.Opponent())
	return score
}

// place - puts mark on cell and returns the undo.
func place(board *entity.Board, cell int, mark entity.Mark) func() {
	board[cell] = mark

	return func() {
		board[cell] = entity.EmptyCell
	}
}
