package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type computerPlayer interface {
	ChooseMove(board entity.Board, mark entity.Mark) (int, bool)
}

type GameManager struct {
	logger *slog.Logger

	gameRepo gameRepo
	computer computerPlayer
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, computer computerPlayer) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		computer: computer,
	}
}

// StartGame - creates a session; when the computer plays X it moves right away.
func (that *GameManager) StartGame(ctx context.Context, mode string, humanMark entity.Mark) (*entity.Game, error) {
	game, err := entity.NewGame(uuid.NewString(), mode, humanMark)
	if err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	if game.IsComputerTurn() {
		if err = that.computerTurn(game); err != nil {
			return nil, err
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed save game: %w", err)
	}

	that.logger.Info("game started", "game_id", game.ID, "mode", game.Mode, "human_mark", game.HumanMark)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed get game by id: %w", err)
	}

	return game, nil
}

// MakeTurn - plays cell for whoever's turn it is, then lets the computer answer.
// A finished game is removed from the store and returned with its final state.
func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if game.IsComputerTurn() {
		return nil, apperror.ErrNotYourTurn
	}

	if err = tictactoe.MakeTurn(game, game.Turn, cell); err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if game.IsComputerTurn() {
		if err = that.computerTurn(game); err != nil {
			return nil, err
		}
	}

	if game.IsFinished() {
		that.logger.Info("game finished", "game_id", game.ID, "winner", game.Winner)

		if err = that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
			return nil, fmt.Errorf("failed delete game: %w", err)
		}

		return game, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	return game, nil
}

// Analyze - outcome, legal moves and the searched value and move for any position.
func (that *GameManager) Analyze(board entity.Board, mover entity.Mark) (*entity.Analysis, error) {
	if !mover.IsPlayer() {
		return nil, fmt.Errorf("%w: mover %q", apperror.ErrInvalidMark, mover)
	}

	for i, cell := range board {
		if cell != entity.EmptyCell && !cell.IsPlayer() {
			return nil, fmt.Errorf("%w: cell %d holds %q", apperror.ErrInvalidMark, i, cell)
		}
	}

	analysis := &entity.Analysis{
		Board:      board,
		Mover:      mover,
		Outcome:    tictactoe.Outcome(board),
		LegalMoves: tictactoe.LegalMoves(board),
	}

	value, move, ok := tictactoe.BestMove(&board, mover)
	analysis.Value = value
	if ok {
		analysis.BestMove = &move
	}

	return analysis, nil
}

func (that *GameManager) computerTurn(game *entity.Game) error {
	mark := game.ComputerMark()

	move, ok := that.computer.ChooseMove(game.Board, mark)
	if !ok {
		moves := tictactoe.LegalMoves(game.Board)
		if tictactoe.Outcome(game.Board).IsTerminal() || len(moves) == 0 {
			return nil
		}

		that.logger.Warn("computer returned no move, falling back to first empty cell", "game_id", game.ID)
		move = moves[0]
	}

	if err := tictactoe.MakeTurn(game, mark, move); err != nil {
		return fmt.Errorf("computer failed to make turn: %w", err)
	}

	that.logger.Debug("computer moved", "game_id", game.ID, "mark", mark, "cell", move)

	return nil
}
