package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	StartGame(ctx context.Context, mode string, humanMark entity.Mark) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error)
	Analyze(board entity.Board, mover entity.Mark) (*entity.Analysis, error)
}

type handlerFunc func(ctx context.Context, payload json.RawMessage) (*ResponsePayload, error)

type Server struct {
	logger   *slog.Logger
	uGame    gameUseCase
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame gameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionGetGame] = server.handleGetGame
	server.handlers[actionTurn] = server.handleGameTurn
	server.handlers[actionAnalyze] = server.handleAnalyze

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down WebSocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveWS - upgrades the connection and answers messages until the client leaves.
func (that *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log.Info("WebSocket connection established", "remote", r.RemoteAddr)

	ctx := r.Context()
	for {
		var message Message
		if err = conn.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		response := that.dispatch(ctx, &message)
		if err = conn.WriteJSON(response); err != nil {
			log.Error("error writing message", "error", err)
			return
		}
	}
}

func (that *Server) dispatch(ctx context.Context, message *Message) *Message {
	handler, ok := that.handlers[message.Action]
	if !ok {
		return that.reply(actionError, &ResponsePayload{Error: fmt.Sprintf("unknown action %q", message.Action)})
	}

	payload, err := handler(ctx, message.Payload)
	if err != nil {
		that.logger.Warn("error processing message", "action", message.Action, "error", err)
		return that.reply(message.Action, &ResponsePayload{Error: err.Error()})
	}

	return that.reply(message.Action, payload)
}

func (that *Server) reply(action string, payload *ResponsePayload) *Message {
	raw, err := json.Marshal(payload)
	if err != nil {
		that.logger.Error("failed to marshal response", "error", err)
		raw = []byte(`{"error":"internal error"}`)
	}

	return &Message{Action: action, Payload: raw}
}
