package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/handy-tictactoe/internal/entity"
)

const (
	actionConnect = "connect"
	actionTick    = "tick"
	actionReset   = "reset"
	actionQuit    = "quit"
)

// Message is what a client sends: an action type and its payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response answers every message with the session snapshot, or an error.
type Response struct {
	Action   string           `json:"action"`
	Snapshot *entity.Snapshot `json:"snapshot,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// TickPayload is a single pointing observation. Cell wins over Point; both
// absent means no hand was seen.
type TickPayload struct {
	Cell  *int   `json:"cell,omitempty"`
	Point *Point `json:"point,omitempty"`
}

// Point is a fingertip position normalized to the frame, 0..1 on both axes.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
