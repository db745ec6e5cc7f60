package entity

import "fmt"

type Outcome int

const (
	InProgress Outcome = iota
	WinX
	WinO
	Draw
)

func (that Outcome) String() string {
	switch that {
	case WinX:
		return "win_x"
	case WinO:
		return "win_o"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

func (that Outcome) IsTerminal() bool {
	return that != InProgress
}

// Winner - X or O for a won game, PlayerTie for a draw, EmptyCell otherwise.
func (that Outcome) Winner() Mark {
	switch that {
	case WinX:
		return PlayerX
	case WinO:
		return PlayerO
	case Draw:
		return PlayerTie
	default:
		return EmptyCell
	}
}

// Score - value of a terminal position from X's side: +1, -1 or 0.
func (that Outcome) Score() int {
	switch that {
	case WinX:
		return 1
	case WinO:
		return -1
	default:
		return 0
	}
}

func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Outcome) UnmarshalText(text []byte) error {
	for _, outcome := range []Outcome{InProgress, WinX, WinO, Draw} {
		if outcome.String() == string(text) {
			*that = outcome
			return nil
		}
	}

	return fmt.Errorf("unknown outcome %q", text)
}
