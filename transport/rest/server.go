package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	StartGame(ctx context.Context, mode string, humanMark entity.Mark) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error)
	Analyze(board entity.Board, mover entity.Mark) (*entity.Analysis, error)
}

type Server struct {
	logger *slog.Logger
	uGame  gameUseCase
}

func New(logger *slog.Logger, uGame gameUseCase) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
	}
}

// Router - JSON API for playing sessions and analyzing positions.
func (that *Server) Router() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/ping", that.handlePing).Methods(http.MethodGet)
	router.HandleFunc("/games", that.handleCreateGame).Methods(http.MethodPost)
	router.HandleFunc("/games/{gameID}", that.handleGetGame).Methods(http.MethodGet)
	router.HandleFunc("/games/{gameID}/turns", that.handleMakeTurn).Methods(http.MethodPost)
	router.HandleFunc("/analyze", that.handleAnalyze).Methods(http.MethodPost)

	return router
}

// Start - serves the router on port until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
