// Package minimax implements the automated opponent: a full-depth minimax
// search with alpha-beta pruning over the whole remaining game tree.
//
// Terminal positions score +1 when the searching side has won, -1 when the
// opponent has won and 0 for a draw. These scores ignore depth, so the engine
// is optimal but indifferent to how fast a win comes or how late a loss does.
// WithFastestWin makes the scores depth-aware for callers that want the
// quickest win and the slowest loss.
package minimax

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/handy-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/handy-tictactoe/internal/entity"
	"github.com/rocketscienceinc/handy-tictactoe/internal/tictactoe"
)

const (
	infinity = 1 << 10

	// maxPlies bounds the depth bonus so depth-aware scores keep their sign.
	maxPlies = entity.CellCount + 1
)

type Option func(*Engine)

// WithFastestWin scores a win found at depth d as maxPlies-d and a loss as
// d-maxPlies.
func WithFastestWin() Option {
	return func(e *Engine) {
		e.fastestWin = true
	}
}

// Engine is stateless between calls and safe for concurrent use.
type Engine struct {
	fastestWin bool
}

func New(opts ...Option) *Engine {
	engine := &Engine{}
	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// Result is the outcome of a root search.
type Result struct {
	Cell  entity.Cell
	Score int
	Nodes int
}

// BestMove returns the move that maximizes cs's outcome against optimal play
// by ps. Candidates are tried in row-major order and only a strictly better
// score replaces the current choice, so ties go to the first candidate.
// The bool is false when the board is full or already decided.
func (that *Engine) BestMove(ctx context.Context, board entity.Board, cs, ps entity.Mark) (Result, bool, error) {
	if err := validateMarks(cs, ps); err != nil {
		return Result{}, false, err
	}

	if err := validateBoard(board); err != nil {
		return Result{}, false, err
	}

	if outcome, _ := tictactoe.Result(board); outcome != entity.InProgress {
		return Result{}, false, nil
	}

	if board.Turn() != cs {
		return Result{}, false, fmt.Errorf("%w: %s searched but %s is on turn", apperror.ErrNotYourTurn, cs, board.Turn())
	}

	s := &search{engine: that, cs: cs, ps: ps}

	best := Result{Score: -infinity}
	found := false
	for _, cell := range board.EmptyCells() {
		if err := ctx.Err(); err != nil {
			return Result{}, false, fmt.Errorf("search interrupted: %w", err)
		}

		score := s.alphaBeta(play(board, cell, cs), 1, -infinity, infinity, false)
		if score > best.Score {
			best.Score = score
			best.Cell = cell
			found = true
		}
	}
	best.Nodes = s.nodes

	return best, found, nil
}

// Evaluate returns the minimax value of board from cs's point of view, with
// whichever mark is on turn moving next.
func (that *Engine) Evaluate(board entity.Board, cs, ps entity.Mark) (int, error) {
	if err := validateMarks(cs, ps); err != nil {
		return 0, err
	}

	if err := validateBoard(board); err != nil {
		return 0, err
	}

	s := &search{engine: that, cs: cs, ps: ps}

	return s.alphaBeta(board, 0, -infinity, infinity, board.Turn() == cs), nil
}

type search struct {
	engine *Engine
	cs, ps entity.Mark
	nodes  int
}

func (that *search) alphaBeta(board entity.Board, depth, alpha, beta int, maximizing bool) int {
	that.nodes++

	switch {
	case tictactoe.IsWin(board, that.cs):
		return that.terminal(1, depth)
	case tictactoe.IsWin(board, that.ps):
		return that.terminal(-1, depth)
	case tictactoe.IsDraw(board):
		return 0
	}

	// one flat loop over the free cells, so a cut-off leaves the whole node
	if maximizing {
		value := -infinity
		for _, cell := range board.EmptyCells() {
			value = max(value, that.alphaBeta(play(board, cell, that.cs), depth+1, alpha, beta, false))
			alpha = max(alpha, value)
			if beta <= alpha {
				break
			}
		}
		return value
	}

	value := infinity
	for _, cell := range board.EmptyCells() {
		value = min(value, that.alphaBeta(play(board, cell, that.ps), depth+1, alpha, beta, true))
		beta = min(beta, value)
		if beta <= alpha {
			break
		}
	}
	return value
}

func (that *search) terminal(sign, depth int) int {
	if !that.engine.fastestWin {
		return sign
	}
	return sign * (maxPlies - depth)
}

// play returns a copy of board with mark on cell. Callers only pass empty
// cells with mark on turn, so a failure is a programming error.
func play(board entity.Board, cell entity.Cell, mark entity.Mark) entity.Board {
	if err := board.Place(cell.Row, cell.Col, mark); err != nil {
		panic(fmt.Sprintf("minimax: %v", err))
	}
	return board
}

func validateMarks(cs, ps entity.Mark) error {
	if !cs.IsPlayer() || ps != cs.Opponent() {
		return fmt.Errorf("%w: marks %s and %s", apperror.ErrInvalidConfiguration, cs, ps)
	}
	return nil
}

// validateBoard rejects positions that alternate play from an empty board
// cannot reach: MarkA is either level with MarkB or one mark ahead.
func validateBoard(board entity.Board) error {
	lead := board.Count(entity.MarkA) - board.Count(entity.MarkB)
	if lead < 0 || lead > 1 {
		return fmt.Errorf("%w: unbalanced board %s", apperror.ErrInvalidConfiguration, board.String())
	}
	return nil
}
