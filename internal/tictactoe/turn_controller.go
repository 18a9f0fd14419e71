package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/handy-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/handy-tictactoe/internal/debounce"
	"github.com/rocketscienceinc/handy-tictactoe/internal/entity"
)

// Settings are fixed for the lifetime of a session.
type Settings struct {
	// Threshold is the number of identical ticks a selection must exceed.
	Threshold int
	// Symbols and Names are indexed by mark: 0 for MarkA, 1 for MarkB.
	Symbols [2]string
	Names   [2]string
	// Automated is the mark played by the search engine, Empty when both
	// sides are human.
	Automated entity.Mark
}

func DefaultSettings() Settings {
	return Settings{
		Threshold: debounce.DefaultThreshold,
		Symbols:   [2]string{"X", "O"},
		Names:     [2]string{"Player", "Computer"},
		Automated: entity.MarkB,
	}
}

func (that Settings) Validate() error {
	if that.Threshold <= 0 {
		return fmt.Errorf("%w: debounce threshold must be positive, got %d", apperror.ErrInvalidConfiguration, that.Threshold)
	}

	if that.Symbols[0] == "" || that.Symbols[1] == "" || that.Symbols[0] == that.Symbols[1] {
		return fmt.Errorf("%w: symbols must be two distinct non-empty strings, got %q", apperror.ErrInvalidConfiguration, that.Symbols)
	}

	if that.Automated != entity.Empty && !that.Automated.IsPlayer() {
		return fmt.Errorf("%w: unknown automated mark %d", apperror.ErrInvalidConfiguration, that.Automated)
	}

	return nil
}

func (that Settings) Symbol(mark entity.Mark) string {
	if !mark.IsPlayer() {
		return ""
	}
	return that.Symbols[mark-entity.MarkA]
}

func (that Settings) Name(mark entity.Mark) string {
	if !mark.IsPlayer() {
		return ""
	}
	if name := that.Names[mark-entity.MarkA]; name != "" {
		return name
	}
	return that.Symbol(mark)
}

type opponent interface {
	ChooseMove(ctx context.Context, board entity.Board, mark entity.Mark) (entity.Cell, error)
}

// TurnController owns the board and the debouncer of one session and
// alternates turns between pointing input and the automated opponent.
// It is not safe for concurrent use; hosts serialize calls per session.
type TurnController struct {
	logger    *slog.Logger
	settings  Settings
	opponent  opponent
	debouncer *debounce.Debouncer

	board    entity.Board
	outcome  entity.Outcome
	winner   entity.Mark
	lastMove *entity.Cell
	quit     bool
}

func NewTurnController(logger *slog.Logger, settings Settings, opponent opponent) (*TurnController, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if settings.Automated != entity.Empty && opponent == nil {
		return nil, fmt.Errorf("%w: automated mark %s has no opponent", apperror.ErrInvalidConfiguration, settings.Automated)
	}

	debouncer, err := debounce.New(settings.Threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to create debouncer: %w", err)
	}

	return &TurnController{
		logger:    logger.With("component", "turn_controller"),
		settings:  settings,
		opponent:  opponent,
		debouncer: debouncer,
		board:     entity.NewBoard(),
	}, nil
}

// Tick advances the session by one input frame and reports whether a move
// was applied. On the automated side's turn the signal is ignored and the
// engine moves instead. A confirmed cell that is already taken is dropped
// without changing the turn.
func (that *TurnController) Tick(ctx context.Context, obs debounce.Signal) (bool, error) {
	log := that.logger.With("method", "Tick")

	if that.IsOver() {
		return false, nil
	}

	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("tick canceled: %w", err)
	}

	if that.IsAutomatedTurn() {
		return that.playAutomated(ctx)
	}

	index, confirmed := that.debouncer.Observe(obs)
	if !confirmed {
		return false, nil
	}

	cell, err := entity.CellFromIndex(index)
	if err != nil {
		return false, fmt.Errorf("confirmed cell: %w", err)
	}

	if err = that.ApplyMove(cell); err != nil {
		if errors.Is(err, apperror.ErrIllegalMove) {
			log.Debug("confirmed cell ignored", "cell", cell.String(), "error", err)
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (that *TurnController) playAutomated(ctx context.Context) (bool, error) {
	mark := that.settings.Automated

	cell, err := that.opponent.ChooseMove(ctx, that.board, mark)
	if err != nil {
		return false, fmt.Errorf("automated move for %s: %w", that.settings.Symbol(mark), err)
	}

	if err = that.ApplyMove(cell); err != nil {
		return false, fmt.Errorf("failed to apply automated move: %w", err)
	}

	// pointing done while the engine was on turn does not carry over
	that.debouncer.Reset()

	return true, nil
}

// ApplyMove places the mark on turn at cell, then checks the mover for a win
// and the board for a draw. The turn passes to the other mark otherwise.
func (that *TurnController) ApplyMove(cell entity.Cell) error {
	log := that.logger.With("method", "ApplyMove")

	if that.IsOver() {
		return apperror.ErrGameFinished
	}

	valid, err := IsValidMove(that.board, cell.Row, cell.Col)
	if err != nil {
		return err
	}

	if !valid {
		return fmt.Errorf("%w: %s", apperror.ErrIllegalMove, cell)
	}

	mover := that.board.Turn()
	if err = Place(&that.board, cell.Row, cell.Col, mover); err != nil {
		return err
	}
	that.lastMove = &cell

	switch {
	case IsWin(that.board, mover):
		that.outcome = entity.Win
		that.winner = mover
	case IsDraw(that.board):
		that.outcome = entity.Draw
	}

	log.Debug("move applied", "mark", that.settings.Symbol(mover), "cell", cell.String(), "outcome", that.outcome.String())

	if that.outcome != entity.InProgress {
		log.Info("game finished", "outcome", that.outcome.String(), "winner", that.settings.Symbol(that.winner))
	}

	return nil
}

// Reset starts a new game with the same settings.
func (that *TurnController) Reset() {
	that.board = entity.NewBoard()
	that.debouncer.Reset()
	that.outcome = entity.InProgress
	that.winner = entity.Empty
	that.lastMove = nil
	that.quit = false
}

// Quit ends the session; no further moves are accepted until Reset.
func (that *TurnController) Quit() {
	that.quit = true
}

func (that *TurnController) IsOver() bool {
	return that.quit || that.outcome != entity.InProgress
}

func (that *TurnController) IsAutomatedTurn() bool {
	return !that.IsOver() && that.settings.Automated != entity.Empty && that.board.Turn() == that.settings.Automated
}

// Board returns a copy of the current board.
func (that *TurnController) Board() entity.Board {
	return that.board
}

func (that *TurnController) Outcome() (entity.Outcome, entity.Mark) {
	return that.outcome, that.winner
}

func (that *TurnController) Settings() Settings {
	return that.settings
}

// Snapshot renders the read-only view of the session.
func (that *TurnController) Snapshot(sessionID string) entity.Snapshot {
	snapshot := entity.Snapshot{
		SessionID: sessionID,
		Automated: that.settings.Symbol(that.settings.Automated),
		Players: map[string]string{
			that.settings.Symbol(entity.MarkA): that.settings.Name(entity.MarkA),
			that.settings.Symbol(entity.MarkB): that.settings.Name(entity.MarkB),
		},
	}

	for r, row := range that.board.Rows() {
		for c, mark := range row {
			snapshot.Board[r][c] = that.settings.Symbol(mark)
		}
	}

	if that.lastMove != nil {
		lastMove := *that.lastMove
		snapshot.LastMove = &lastMove
	}

	switch {
	case that.quit:
		snapshot.Status = entity.StatusQuit
		snapshot.Message = "Game closed"
	case that.outcome == entity.Win:
		snapshot.Status = entity.StatusFinished
		snapshot.Winner = that.settings.Symbol(that.winner)
		snapshot.Message = that.settings.Name(that.winner) + " Wins!"
	case that.outcome == entity.Draw:
		snapshot.Status = entity.StatusFinished
		snapshot.Winner = entity.PlayerTie
		snapshot.Message = "Draw!"
	default:
		turn := that.board.Turn()
		snapshot.Status = entity.StatusOngoing
		snapshot.Turn = that.settings.Symbol(turn)
		snapshot.Message = that.settings.Name(turn) + "'s Turn"

		if candidate, streak := that.debouncer.Progress(); streak > 0 {
			cell, _ := candidate.Cell()
			snapshot.Pointer = &entity.Pointer{Cell: cell, Streak: streak, Threshold: that.debouncer.Threshold()}
		}
	}

	return snapshot
}
