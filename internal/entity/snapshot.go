package entity

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
	StatusQuit     = "quit"

	PlayerTie = "-"
)

// Outcome of a board position.
type Outcome uint8

const (
	InProgress Outcome = iota
	Win
	Draw
)

func (that Outcome) String() string {
	switch that {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Pointer is the pending pointing selection shown while the debouncer
// accumulates a streak.
type Pointer struct {
	Cell      int `json:"cell"`
	Streak    int `json:"streak"`
	Threshold int `json:"threshold"`
}

// Snapshot is the read-only view of a session handed to renderers.
type Snapshot struct {
	SessionID string                       `json:"session_id"`
	Board     [BoardSize][BoardSize]string `json:"board"`
	Turn      string                       `json:"turn"`
	Status    string                       `json:"status"`
	Winner    string                       `json:"winner"`
	Message   string                       `json:"message"`
	Players   map[string]string            `json:"players"`
	Automated string                       `json:"automated,omitempty"`
	LastMove  *Cell                        `json:"last_move,omitempty"`
	Pointer   *Pointer                     `json:"pointer,omitempty"`
}
