package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/handy-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/handy-tictactoe/internal/debounce"
	"github.com/rocketscienceinc/handy-tictactoe/internal/entity"
	"github.com/rocketscienceinc/handy-tictactoe/internal/usecase"
)

type sessionUseCase interface {
	CreateSession(ctx context.Context, opts usecase.SessionOptions) (*entity.Snapshot, error)
	Tick(ctx context.Context, id string, signals ...debounce.Signal) (*entity.Snapshot, error)
	Reset(ctx context.Context, id string) (*entity.Snapshot, error)
	Quit(ctx context.Context, id string) (*entity.Snapshot, error)
	GetSnapshot(ctx context.Context, id string) (*entity.Snapshot, error)
}

// TickRequest carries one pointing signal per tick; null means no hand.
type TickRequest struct {
	Signals []*int `json:"signals"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type SessionHandler struct {
	logger   *slog.Logger
	sessions sessionUseCase
}

func NewSessionHandler(logger *slog.Logger, sessions sessionUseCase) *SessionHandler {
	return &SessionHandler{
		logger:   logger.With("component", "rest"),
		sessions: sessions,
	}
}

func (that *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var opts usecase.SessionOptions
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
			that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed session options"})
			return
		}
	}

	snapshot, err := that.sessions.CreateSession(r.Context(), opts)
	if err != nil {
		that.writeError(w, "Create", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, snapshot)
}

func (that *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	snapshot, err := that.sessions.GetSnapshot(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "Get", err)
		return
	}

	that.writeJSON(w, http.StatusOK, snapshot)
}

// limits on one tick batch, which is replayed under the session lock
const (
	maxTicksPerRequest = 256
	maxTickBodyBytes   = 8 << 10
)

func (that *SessionHandler) Tick(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxTickBodyBytes)

	var req TickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed tick request"})
		return
	}

	if len(req.Signals) > maxTicksPerRequest {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("at most %d ticks per request", maxTicksPerRequest),
		})
		return
	}

	signals, err := toSignals(req.Signals)
	if err != nil {
		that.writeError(w, "Tick", err)
		return
	}

	snapshot, err := that.sessions.Tick(r.Context(), chi.URLParam(r, "id"), signals...)
	if err != nil {
		that.writeError(w, "Tick", err)
		return
	}

	that.writeJSON(w, http.StatusOK, snapshot)
}

func (that *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	snapshot, err := that.sessions.Reset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "Reset", err)
		return
	}

	that.writeJSON(w, http.StatusOK, snapshot)
}

func (that *SessionHandler) Quit(w http.ResponseWriter, r *http.Request) {
	snapshot, err := that.sessions.Quit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "Quit", err)
		return
	}

	that.writeJSON(w, http.StatusOK, snapshot)
}

func toSignals(cells []*int) ([]debounce.Signal, error) {
	signals := make([]debounce.Signal, 0, len(cells))
	for _, cell := range cells {
		if cell == nil {
			signals = append(signals, debounce.None())
			continue
		}

		signal, err := debounce.At(*cell)
		if err != nil {
			return nil, err
		}
		signals = append(signals, signal)
	}

	return signals, nil
}

func (that *SessionHandler) writeError(w http.ResponseWriter, method string, err error) {
	status := StatusFromError(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// StatusFromError maps application errors to HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidConfiguration), errors.Is(err, apperror.ErrOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameFinished), errors.Is(err, apperror.ErrIllegalMove):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *SessionHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
