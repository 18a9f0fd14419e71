package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/handy-tictactoe/internal/debounce"
	"github.com/rocketscienceinc/handy-tictactoe/internal/entity"
	"github.com/rocketscienceinc/handy-tictactoe/internal/usecase"
)

type sessionUseCase interface {
	CreateSession(ctx context.Context, opts usecase.SessionOptions) (*entity.Snapshot, error)
	Tick(ctx context.Context, id string, signals ...debounce.Signal) (*entity.Snapshot, error)
	Reset(ctx context.Context, id string) (*entity.Snapshot, error)
	Quit(ctx context.Context, id string) (*entity.Snapshot, error)
}

type handlerFunc func(ctx context.Context, sessionID string, msg *Message) (*entity.Snapshot, error)

var errUnknownAction = errors.New("unknown action")

// Server owns one game session per connection. The session is created from
// the query parameters and closed when the connection goes away.
type Server struct {
	logger   *slog.Logger
	sessions sessionUseCase

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, sessions sessionUseCase) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		sessions: sessions,

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionTick] = server.handleTick
	server.handlers[actionReset] = server.handleReset
	server.handlers[actionQuit] = server.handleQuit

	return server
}

func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	opts, err := optionsFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Error("failed to accept websocket", "error", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()

	snapshot, err := that.sessions.CreateSession(ctx, opts)
	if err != nil {
		_ = wsjson.Write(ctx, conn, Response{Action: actionConnect, Error: err.Error()})
		_ = conn.Close(websocket.StatusPolicyViolation, "invalid session options")
		return
	}

	sessionID := snapshot.SessionID
	log = log.With("sessionID", sessionID)
	log.Info("WebSocket connection established")

	if err = wsjson.Write(ctx, conn, Response{Action: actionConnect, Snapshot: snapshot}); err != nil {
		log.Error("failed to send snapshot", "error", err)
		that.closeSession(sessionID)
		return
	}

	closed, err := that.handleMessages(ctx, conn, sessionID)
	if !closed {
		that.closeSession(sessionID)
	}

	switch {
	case err == nil:
		_ = conn.Close(websocket.StatusNormalClosure, "")
	case websocket.CloseStatus(err) == websocket.StatusNormalClosure, websocket.CloseStatus(err) == websocket.StatusGoingAway:
		log.Info("client disconnected")
	default:
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages answers messages until the client quits or the connection
// breaks. It reports whether the session was already closed by a quit.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn, sessionID string) (bool, error) {
	for {
		var msg Message
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			return false, fmt.Errorf("failed to read message: %w", err)
		}

		response := Response{Action: msg.Action}

		handler, ok := that.handlers[msg.Action]
		if !ok {
			response.Error = fmt.Sprintf("%v: %q", errUnknownAction, msg.Action)
		} else {
			snapshot, err := handler(ctx, sessionID, &msg)
			if err != nil {
				response.Error = err.Error()
			}
			response.Snapshot = snapshot
		}

		if err := wsjson.Write(ctx, conn, response); err != nil {
			return msg.Action == actionQuit && response.Error == "", fmt.Errorf("failed to send response: %w", err)
		}

		if msg.Action == actionQuit && response.Error == "" {
			return true, nil
		}
	}
}

func (that *Server) closeSession(sessionID string) {
	if _, err := that.sessions.Quit(context.Background(), sessionID); err != nil {
		that.logger.Warn("failed to close session", "sessionID", sessionID, "error", err)
	}
}

func optionsFromQuery(r *http.Request) (usecase.SessionOptions, error) {
	query := r.URL.Query()
	opts := usecase.SessionOptions{
		Opponent: query.Get("opponent"),
	}

	if threshold := query.Get("threshold"); threshold != "" {
		value, err := strconv.Atoi(threshold)
		if err != nil {
			return usecase.SessionOptions{}, fmt.Errorf("invalid threshold %q", threshold)
		}
		opts.DebounceThreshold = &value
	}

	if botFirst := query.Get("bot_first"); botFirst != "" {
		value, err := strconv.ParseBool(botFirst)
		if err != nil {
			return usecase.SessionOptions{}, fmt.Errorf("invalid bot_first %q", botFirst)
		}
		opts.BotMovesFirst = &value
	}

	if symbols := query.Get("symbols"); symbols != "" {
		opts.Symbols = strings.Split(symbols, ",")
	}

	if names := query.Get("names"); names != "" {
		opts.PlayerNames = strings.Split(names, ",")
	}

	return opts, nil
}
