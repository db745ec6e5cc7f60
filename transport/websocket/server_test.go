package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

type memoryGameRepo struct {
	mu    sync.Mutex
	games map[string]entity.Game
}

func (that *memoryGameRepo) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = *game
	return nil
}

func (that *memoryGameRepo) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.games[id]
	if !ok {
		return &entity.Game{}, apperror.ErrGameNotFound
	}
	return &game, nil
}

func (that *memoryGameRepo) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return apperror.ErrGameNotFound
	}
	delete(that.games, id)
	return nil
}

func dial(t *testing.T) *websocket.Conn {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	repo := &memoryGameRepo{games: make(map[string]entity.Game)}
	manager := usecase.NewGameManager(logger, repo, tictactoe.NewComputerPlayer())

	srv := httptest.NewServer(New(logger, manager).Handler())
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, action, payload string) (string, ResponsePayload) {
	t.Helper()

	require.NoError(t, conn.WriteJSON(Message{Action: action, Payload: json.RawMessage(payload)}))

	var response Message
	require.NoError(t, conn.ReadJSON(&response))

	var body ResponsePayload
	require.NoError(t, json.Unmarshal(response.Payload, &body))

	return response.Action, body
}

func TestServer_PlayAgainstComputer(t *testing.T) {
	conn := dial(t)

	// Given: a new game where the human plays X
	action, body := roundTrip(t, conn, actionNewGame, `{"mode":"hvc","human_mark":"X"}`)
	require.Equal(t, actionNewGame, action)
	require.Empty(t, body.Error)
	require.NotNil(t, body.Game)
	gameID := body.Game.ID

	// When: the human takes the center
	action, body = roundTrip(t, conn, actionTurn, `{"game_id":"`+gameID+`","cell":4}`)

	// Then: the computer has answered in the first corner
	require.Equal(t, actionTurn, action)
	require.Empty(t, body.Error)
	assert.Equal(t, entity.PlayerX, body.Game.Board[4])
	assert.Equal(t, entity.PlayerO, body.Game.Board[0])
	assert.Equal(t, entity.PlayerX, body.Game.Turn)

	// Then: the stored session matches
	_, body = roundTrip(t, conn, actionGetGame, `{"game_id":"`+gameID+`"}`)
	require.NotNil(t, body.Game)
	assert.Equal(t, entity.PlayerO, body.Game.Board[0])
}

func TestServer_Errors(t *testing.T) {
	conn := dial(t)

	t.Run("Occupied cell is reported, not fatal", func(t *testing.T) {
		_, body := roundTrip(t, conn, actionNewGame, `{"mode":"hvh"}`)
		gameID := body.Game.ID

		_, body = roundTrip(t, conn, actionTurn, `{"game_id":"`+gameID+`","cell":0}`)
		require.Empty(t, body.Error)

		_, body = roundTrip(t, conn, actionTurn, `{"game_id":"`+gameID+`","cell":0}`)
		assert.Contains(t, body.Error, apperror.ErrCellOccupied.Error())

		// the connection keeps working
		_, body = roundTrip(t, conn, actionTurn, `{"game_id":"`+gameID+`","cell":1}`)
		require.Empty(t, body.Error)
		assert.Equal(t, entity.PlayerO, body.Game.Board[1])
	})

	t.Run("Unknown game", func(t *testing.T) {
		_, body := roundTrip(t, conn, actionGetGame, `{"game_id":"missing"}`)

		assert.Contains(t, body.Error, apperror.ErrGameNotFound.Error())
	})

	t.Run("Missing cell", func(t *testing.T) {
		_, body := roundTrip(t, conn, actionTurn, `{"game_id":"g"}`)

		assert.Equal(t, errCellRequired.Error(), body.Error)
	})

	t.Run("Unknown action", func(t *testing.T) {
		action, body := roundTrip(t, conn, "game:resign", `{}`)

		assert.Equal(t, actionError, action)
		assert.Contains(t, body.Error, "game:resign")
	})
}

func TestServer_Analyze(t *testing.T) {
	conn := dial(t)

	// When: analyzing a board where X can finish the top row
	_, body := roundTrip(t, conn, actionAnalyze, `{"board":["X","X","","O","O","","","",""]}`)

	// Then: X is inferred as mover and cell 2 wins
	require.Empty(t, body.Error)
	require.NotNil(t, body.Analysis)
	assert.Equal(t, entity.PlayerX, body.Analysis.Mover)
	assert.Equal(t, 1, body.Analysis.Value)
	require.NotNil(t, body.Analysis.BestMove)
	assert.Equal(t, 2, *body.Analysis.BestMove)
}
