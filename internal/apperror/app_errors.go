package apperror

import "errors"

var (
	ErrOutOfRange           = errors.New("cell is out of range")
	ErrIllegalMove          = errors.New("cell is already occupied")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrNotYourTurn          = errors.New("it's not your turn")
	ErrGameFinished         = errors.New("game is already finished")
	ErrSessionNotFound      = errors.New("session not found")
	ErrNoAvailableMoves     = errors.New("no available moves")
)
