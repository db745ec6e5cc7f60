package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	actionNewGame = "game:new"
	actionGetGame = "game:get"
	actionTurn    = "game:turn"
	actionAnalyze = "game:analyze"
	actionError   = "error"
)

// Message - a websocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type newGamePayload struct {
	Mode      string      `json:"mode"`
	HumanMark entity.Mark `json:"human_mark"`
}

type gamePayload struct {
	GameID string `json:"game_id"`
	Cell   *int   `json:"cell,omitempty"`
}

type analyzePayload struct {
	Board entity.Board `json:"board"`
	Mover entity.Mark  `json:"mover"`
}

type ResponsePayload struct {
	Game     *entity.Game     `json:"game,omitempty"`
	Analysis *entity.Analysis `json:"analysis,omitempty"`
	Error    string           `json:"error,omitempty"`
}
