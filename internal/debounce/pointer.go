package debounce

import (
	"fmt"

	"github.com/rocketscienceinc/handy-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/handy-tictactoe/internal/entity"
)

// FromPoint maps a pointer position, normalized to [0,1] on both axes of the
// board area, to a signal. Positions on or past the far edge clamp to the
// last row or column; negative positions are off the board.
func FromPoint(x, y float64) (Signal, error) {
	if x < 0 || y < 0 {
		return Signal{}, fmt.Errorf("%w: point (%.3f,%.3f)", apperror.ErrOutOfRange, x, y)
	}

	col := min(int(x*entity.BoardSize), entity.BoardSize-1)
	row := min(int(y*entity.BoardSize), entity.BoardSize-1)

	return At(row*entity.BoardSize + col)
}
