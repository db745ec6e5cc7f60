package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

const (
	HumanVsHumanMode    = "hvh"
	HumanVsComputerMode = "hvc"
)

type Game struct {
	ID        string `json:"id"`
	Board     Board  `json:"board"`
	Winner    Mark   `json:"winner"`
	Status    string `json:"status"`
	Turn      Mark   `json:"player_turn"`
	Mode      string `json:"mode"`
	HumanMark Mark   `json:"human_mark,omitempty"`
}

// NewGame - creates an empty ongoing game. humanMark is only meaningful against the computer.
func NewGame(id, mode string, humanMark Mark) (*Game, error) {
	switch mode {
	case HumanVsHumanMode:
		humanMark = EmptyCell
	case HumanVsComputerMode:
		if !humanMark.IsPlayer() {
			return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, humanMark)
		}
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, mode)
	}

	return &Game{
		ID:        id,
		Turn:      PlayerX,
		Status:    StatusOngoing,
		Mode:      mode,
		HumanMark: humanMark,
	}, nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWithComputer() bool {
	return that.Mode == HumanVsComputerMode
}

// ComputerMark - the computer's mark, or EmptyCell when two humans play.
func (that *Game) ComputerMark() Mark {
	if !that.IsWithComputer() {
		return EmptyCell
	}
	return that.HumanMark.Opponent()
}

func (that *Game) IsComputerTurn() bool {
	return that.IsOngoing() && that.IsWithComputer() && that.Turn == that.ComputerMark()
}

// ApplyOutcome - records a terminal outcome, or hands the turn to next while the game goes on.
func (that *Game) ApplyOutcome(outcome Outcome, next Mark) {
	if outcome.IsTerminal() {
		that.Winner = outcome.Winner()
		that.Status = StatusFinished
		that.Turn = EmptyCell
		return
	}

	that.Status = StatusOngoing
	that.Turn = next
}
