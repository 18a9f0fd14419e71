package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/handy-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/handy-tictactoe/internal/config"
	"github.com/rocketscienceinc/handy-tictactoe/internal/debounce"
	"github.com/rocketscienceinc/handy-tictactoe/internal/entity"
	"github.com/rocketscienceinc/handy-tictactoe/internal/repository"
	"github.com/rocketscienceinc/handy-tictactoe/internal/tictactoe"
)

type snapshotRepo interface {
	Save(ctx context.Context, snapshot *entity.Snapshot) error
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	ChooseMove(ctx context.Context, board entity.Board, botMark entity.Mark) (entity.Cell, error)
}

// SessionOptions override the configured session defaults for one session.
type SessionOptions struct {
	DebounceThreshold *int     `json:"debounce_threshold,omitempty"`
	Symbols           []string `json:"symbols,omitempty"`
	PlayerNames       []string `json:"player_names,omitempty"`
	Opponent          string   `json:"opponent,omitempty"`
	BotMovesFirst     *bool    `json:"bot_moves_first,omitempty"`
}

// SessionManager keeps the live sessions. Every session has a single writer:
// all controller calls happen under the session's own mutex.
type SessionManager struct {
	logger   *slog.Logger
	defaults config.Session
	bot      botService
	repo     snapshotRepo

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewSessionManager(logger *slog.Logger, defaults config.Session, bot botService, repo snapshotRepo) *SessionManager {
	return &SessionManager{
		logger:   logger.With("component", "session_manager"),
		defaults: defaults,
		bot:      bot,
		repo:     repo,
		sessions: make(map[string]*session),
	}
}

func (that *SessionManager) CreateSession(ctx context.Context, opts SessionOptions) (*entity.Snapshot, error) {
	settings, err := that.settings(opts)
	if err != nil {
		return nil, err
	}

	var bot botService
	if settings.Automated != entity.Empty {
		bot = that.bot
	}

	controller, err := tictactoe.NewTurnController(that.logger, settings, bot)
	if err != nil {
		return nil, fmt.Errorf("failed to create turn controller: %w", err)
	}

	id := uuid.NewString()
	that.mu.Lock()
	that.sessions[id] = newSession(controller)
	that.mu.Unlock()

	snapshot := controller.Snapshot(id)
	that.publish(ctx, &snapshot)

	that.logger.Info("session created", "sessionID", id, "automated", snapshot.Automated)

	return &snapshot, nil
}

// Tick feeds the signals to the session in order, one tick each.
func (that *SessionManager) Tick(ctx context.Context, id string, signals ...debounce.Signal) (*entity.Snapshot, error) {
	s, err := that.get(id)
	if err != nil {
		return nil, err
	}

	tickCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.abortContext(), cancel)
	defer stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	moved := false
	for _, signal := range signals {
		ok, err := s.controller.Tick(tickCtx, signal)
		if err != nil {
			// a reset or quit arrived while this tick was waiting or searching
			if ctx.Err() == nil && errors.Is(err, context.Canceled) {
				break
			}
			return nil, fmt.Errorf("failed to tick session %s: %w", id, err)
		}
		moved = moved || ok
	}

	snapshot := s.controller.Snapshot(id)
	if moved {
		that.publish(ctx, &snapshot)
	}

	return &snapshot, nil
}

// Reset starts a new game in the session. A search in flight is abandoned
// before the board is cleared.
func (that *SessionManager) Reset(ctx context.Context, id string) (*entity.Snapshot, error) {
	s, err := that.get(id)
	if err != nil {
		return nil, err
	}

	s.interrupt(true)

	s.mu.Lock()
	s.controller.Reset()
	snapshot := s.controller.Snapshot(id)
	s.mu.Unlock()

	that.publish(ctx, &snapshot)

	return &snapshot, nil
}

// Quit ends the session and forgets it.
func (that *SessionManager) Quit(ctx context.Context, id string) (*entity.Snapshot, error) {
	log := that.logger.With("method", "Quit", "sessionID", id)

	s, err := that.get(id)
	if err != nil {
		return nil, err
	}

	s.interrupt(false)

	s.mu.Lock()
	s.controller.Quit()
	snapshot := s.controller.Snapshot(id)
	s.mu.Unlock()

	that.mu.Lock()
	delete(that.sessions, id)
	that.mu.Unlock()

	// watchers see the closing snapshot before the stored one goes away
	that.publish(ctx, &snapshot)

	// the stored snapshot may already have expired
	if err = that.repo.DeleteByID(ctx, id); err != nil && !errors.Is(err, repository.ErrSnapshotNotFound) {
		log.Error("failed to delete snapshot", "error", err)
	}

	log.Info("session closed")

	return &snapshot, nil
}

func (that *SessionManager) GetSnapshot(_ context.Context, id string) (*entity.Snapshot, error) {
	s, err := that.get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	snapshot := s.controller.Snapshot(id)
	s.mu.Unlock()

	return &snapshot, nil
}

// Close abandons every session, used on shutdown.
func (that *SessionManager) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for id, s := range that.sessions {
		s.interrupt(false)
		delete(that.sessions, id)
	}
}

func (that *SessionManager) get(id string) (*session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	s, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	return s, nil
}

func (that *SessionManager) publish(ctx context.Context, snapshot *entity.Snapshot) {
	if err := that.repo.Save(ctx, snapshot); err != nil {
		that.logger.Error("failed to publish snapshot", "sessionID", snapshot.SessionID, "error", err)
	}
}

func (that *SessionManager) settings(opts SessionOptions) (tictactoe.Settings, error) {
	defaults := that.defaults
	settings := tictactoe.Settings{Threshold: defaults.DebounceThreshold}

	if opts.DebounceThreshold != nil {
		settings.Threshold = *opts.DebounceThreshold
	}

	symbols := defaults.Symbols
	if len(opts.Symbols) > 0 {
		symbols = opts.Symbols
	}
	if len(symbols) != 2 {
		return tictactoe.Settings{}, fmt.Errorf("%w: need exactly two symbols, got %d", apperror.ErrInvalidConfiguration, len(symbols))
	}
	settings.Symbols = [2]string{symbols[0], symbols[1]}

	opponent := defaults.Opponent
	if opts.Opponent != "" {
		opponent = opts.Opponent
	}

	botFirst := defaults.BotMovesFirst
	if opts.BotMovesFirst != nil {
		botFirst = *opts.BotMovesFirst
	}

	names := defaults.PlayerNames
	if len(opts.PlayerNames) > 0 {
		names = opts.PlayerNames
	}

	// names are given as (first human, second human or computer)
	switch opponent {
	case config.OpponentBot:
		human, bot := nameAt(names, 0, "Player"), nameAt(names, 1, "Computer")
		settings.Automated = entity.MarkB
		settings.Names = [2]string{human, bot}
		if botFirst {
			settings.Automated = entity.MarkA
			settings.Names = [2]string{bot, human}
		}
	case config.OpponentHuman:
		// configured names only apply when the configuration itself is two-human
		humans := opts.PlayerNames
		if len(humans) == 0 && defaults.Opponent == config.OpponentHuman {
			humans = defaults.PlayerNames
		}
		settings.Names = [2]string{nameAt(humans, 0, "Player 1"), nameAt(humans, 1, "Player 2")}
	default:
		return tictactoe.Settings{}, fmt.Errorf("%w: unknown opponent %q", apperror.ErrInvalidConfiguration, opponent)
	}

	if err := settings.Validate(); err != nil {
		return tictactoe.Settings{}, err
	}

	return settings, nil
}

func nameAt(names []string, i int, fallback string) string {
	if i < len(names) && names[i] != "" {
		return names[i]
	}
	return fallback
}

type session struct {
	mu         sync.Mutex
	controller *tictactoe.TurnController

	abortMu sync.Mutex
	aborted context.Context
	abort   context.CancelFunc
}

func newSession(controller *tictactoe.TurnController) *session {
	aborted, abort := context.WithCancel(context.Background())

	return &session{
		controller: controller,
		aborted:    aborted,
		abort:      abort,
	}
}

// abortContext is canceled by the next reset or quit.
func (that *session) abortContext() context.Context {
	that.abortMu.Lock()
	defer that.abortMu.Unlock()

	return that.aborted
}

func (that *session) interrupt(renew bool) {
	that.abortMu.Lock()
	defer that.abortMu.Unlock()

	that.abort()
	if renew {
		that.aborted, that.abort = context.WithCancel(context.Background())
	}
}
