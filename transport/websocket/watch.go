package websocket

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/handy-tictactoe/internal/entity"
	"github.com/rocketscienceinc/handy-tictactoe/internal/repository"
)

const actionSnapshot = "snapshot"

type snapshotFeed interface {
	GetByID(ctx context.Context, id string) (*entity.Snapshot, error)
	Subscribe(ctx context.Context, id string) (<-chan *entity.Snapshot, error)
}

// Watcher streams the published snapshots of one session to a read-only
// renderer.
type Watcher struct {
	logger *slog.Logger
	feed   snapshotFeed
}

func NewWatcher(logger *slog.Logger, feed snapshotFeed) *Watcher {
	return &Watcher{
		logger: logger.With("component", "watcher"),
		feed:   feed,
	}
}

func (that *Watcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	log := that.logger.With("method", "ServeHTTP", "sessionID", sessionID)

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Error("failed to accept websocket", "error", err)
		return
	}
	defer conn.CloseNow()

	// renderers never write; CloseRead cancels ctx once the client goes away
	ctx := conn.CloseRead(r.Context())

	updates, err := that.feed.Subscribe(ctx, sessionID)
	if err != nil {
		log.Error("failed to subscribe", "error", err)
		_ = conn.Close(websocket.StatusInternalError, "subscription failed")
		return
	}

	current, err := that.feed.GetByID(ctx, sessionID)
	switch {
	case errors.Is(err, repository.ErrSnapshotNotFound):
	case err != nil:
		log.Error("failed to load snapshot", "error", err)
	default:
		if err = wsjson.Write(ctx, conn, Response{Action: actionSnapshot, Snapshot: current}); err != nil {
			return
		}
	}

	for snapshot := range updates {
		if err = wsjson.Write(ctx, conn, Response{Action: actionSnapshot, Snapshot: snapshot}); err != nil {
			log.Info("watcher left", "error", err)
			return
		}

		if snapshot.Status == entity.StatusQuit {
			_ = conn.Close(websocket.StatusNormalClosure, "session closed")
			return
		}
	}
}
