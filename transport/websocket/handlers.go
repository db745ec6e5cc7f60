package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var (
	errGameIDRequired = errors.New("game_id is required")
	errCellRequired   = errors.New("cell is required")
	errInternal       = errors.New("internal error")
)

func (that *Server) handleNewGame(ctx context.Context, raw json.RawMessage) (*ResponsePayload, error) {
	var payload newGamePayload
	if err := decode(raw, &payload); err != nil {
		return nil, err
	}

	game, err := that.uGame.StartGame(ctx, payload.Mode, payload.HumanMark)
	if err != nil {
		return nil, that.clientError(err)
	}

	return &ResponsePayload{Game: game}, nil
}

func (that *Server) handleGetGame(ctx context.Context, raw json.RawMessage) (*ResponsePayload, error) {
	var payload gamePayload
	if err := decode(raw, &payload); err != nil {
		return nil, err
	}

	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	game, err := that.uGame.GetGame(ctx, payload.GameID)
	if err != nil {
		return nil, that.clientError(err)
	}

	return &ResponsePayload{Game: game}, nil
}

func (that *Server) handleGameTurn(ctx context.Context, raw json.RawMessage) (*ResponsePayload, error) {
	var payload gamePayload
	if err := decode(raw, &payload); err != nil {
		return nil, err
	}

	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	if payload.Cell == nil {
		return nil, errCellRequired
	}

	game, err := that.uGame.MakeTurn(ctx, payload.GameID, *payload.Cell)
	if err != nil {
		return nil, that.clientError(err)
	}

	return &ResponsePayload{Game: game}, nil
}

func (that *Server) handleAnalyze(_ context.Context, raw json.RawMessage) (*ResponsePayload, error) {
	var payload analyzePayload
	if err := decode(raw, &payload); err != nil {
		return nil, err
	}

	if payload.Mover == entity.EmptyCell {
		payload.Mover = payload.Board.NextMark()
	}

	analysis, err := that.uGame.Analyze(payload.Board, payload.Mover)
	if err != nil {
		return nil, that.clientError(err)
	}

	return &ResponsePayload{Analysis: analysis}, nil
}

// clientError - passes domain errors through and hides everything else.
func (that *Server) clientError(err error) error {
	for _, known := range []error{
		apperror.ErrGameNotFound,
		apperror.ErrGameFinished,
		apperror.ErrNotYourTurn,
		apperror.ErrIllegalMove,
		apperror.ErrUnknownMode,
		apperror.ErrInvalidMark,
	} {
		if errors.Is(err, known) {
			return err
		}
	}

	that.logger.Error("use case failed", "error", err)

	return errInternal
}

func decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}

	return nil
}
