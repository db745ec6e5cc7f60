package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrGameNotFound = errors.New("game not found")
	ErrNotYourTurn  = errors.New("it's not your turn")

	// ErrIllegalMove is wrapped by every rejected cell selection.
	ErrIllegalMove  = errors.New("illegal move request")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")

	ErrUnknownMode = errors.New("unknown game mode")
	ErrInvalidMark = errors.New("invalid player mark")
)
