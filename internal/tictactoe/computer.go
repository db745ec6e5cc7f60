package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// ComputerPlayer picks optimal moves for either mark.
type ComputerPlayer struct{}

func NewComputerPlayer() *ComputerPlayer {
	return &ComputerPlayer{}
}

// ChooseMove - returns the cell the computer should take as mark.
//
// X takes the searched move directly. For O every candidate is placed and the
// resulting position is searched with X to move; the candidate leaving X the
// lowest value wins. Returns false on a terminal board.
func (that *ComputerPlayer) ChooseMove(board entity.Board, mark entity.Mark) (int, bool) {
	if Outcome(board).IsTerminal() {
		return NoMove, false
	}

	if mark == entity.PlayerX {
		_, move, ok := BestMove(&board, entity.PlayerX)
		return move, ok
	}

	bestScore := math.MaxInt
	bestMove := NoMove
	for _, cell := range LegalMoves(board) {
		if score := scoreAfter(&board, cell, entity.PlayerO); score < bestScore {
			bestScore = score
			bestMove = cell
		}
	}

	return bestMove, bestMove != NoMove
}
