package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/handy-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/handy-tictactoe/internal/entity"
	"github.com/rocketscienceinc/handy-tictactoe/internal/minimax"
)

type BotService interface {
	ChooseMove(ctx context.Context, board entity.Board, botMark entity.Mark) (entity.Cell, error)
}

type searcher interface {
	BestMove(ctx context.Context, board entity.Board, cs, ps entity.Mark) (minimax.Result, bool, error)
}

type botService struct {
	logger *slog.Logger
	engine searcher
}

func NewBotService(logger *slog.Logger, engine searcher) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		engine: engine,
	}
}

type searchOutcome struct {
	result minimax.Result
	found  bool
	err    error
}

// ChooseMove runs the search on its own goroutine so the caller can give up on
// ctx. The board is passed by value; the caller's copy is never touched.
func (that *botService) ChooseMove(ctx context.Context, board entity.Board, botMark entity.Mark) (entity.Cell, error) {
	log := that.logger.With("method", "ChooseMove", "mark", botMark.String())

	done := make(chan searchOutcome, 1)
	go func() {
		result, found, err := that.engine.BestMove(ctx, board, botMark, botMark.Opponent())
		done <- searchOutcome{result: result, found: found, err: err}
	}()

	select {
	case <-ctx.Done():
		return entity.Cell{}, fmt.Errorf("bot move canceled: %w", ctx.Err())
	case out := <-done:
		if out.err != nil {
			return entity.Cell{}, fmt.Errorf("bot failed to search: %w", out.err)
		}

		if !out.found {
			return entity.Cell{}, apperror.ErrNoAvailableMoves
		}

		log.Debug("bot chose move", "cell", out.result.Cell.String(), "score", out.result.Score, "nodes", out.result.Nodes)

		return out.result.Cell, nil
	}
}
