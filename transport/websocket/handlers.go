package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/handy-tictactoe/internal/debounce"
	"github.com/rocketscienceinc/handy-tictactoe/internal/entity"
)

func (that *Server) handleTick(ctx context.Context, sessionID string, msg *Message) (*entity.Snapshot, error) {
	var payload TickPayload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	signal, err := payload.signal()
	if err != nil {
		return nil, err
	}

	return that.sessions.Tick(ctx, sessionID, signal)
}

func (that *Server) handleReset(ctx context.Context, sessionID string, _ *Message) (*entity.Snapshot, error) {
	return that.sessions.Reset(ctx, sessionID)
}

func (that *Server) handleQuit(ctx context.Context, sessionID string, _ *Message) (*entity.Snapshot, error) {
	that.logger.Info("player quit", "sessionID", sessionID)
	return that.sessions.Quit(ctx, sessionID)
}

func (that TickPayload) signal() (debounce.Signal, error) {
	switch {
	case that.Cell != nil:
		return debounce.At(*that.Cell)
	case that.Point != nil:
		return debounce.FromPoint(that.Point.X, that.Point.Y)
	default:
		return debounce.None(), nil
	}
}
