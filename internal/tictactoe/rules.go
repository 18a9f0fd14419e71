package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/handy-tictactoe/internal/entity"
)

// WinCombos are the row-major indices of the 3 rows, 3 columns and 2 diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// IsValidMove reports whether (row, col) is free. Indices outside the board
// fail with apperror.ErrOutOfRange.
func IsValidMove(board entity.Board, row, col int) (bool, error) {
	mark, err := board.At(row, col)
	if err != nil {
		return false, fmt.Errorf("invalid move: %w", err)
	}

	return mark == entity.Empty, nil
}

// Place puts mark on (row, col) of board.
func Place(board *entity.Board, row, col int, mark entity.Mark) error {
	if err := board.Place(row, col, mark); err != nil {
		return fmt.Errorf("failed to place %s: %w", mark, err)
	}

	return nil
}

// IsWin reports whether any line is entirely mark.
func IsWin(board entity.Board, mark entity.Mark) bool {
	if !mark.IsPlayer() {
		return false
	}

	rows := board.Rows()
	for _, combo := range WinCombos {
		if at(rows, combo[0]) == mark && at(rows, combo[1]) == mark && at(rows, combo[2]) == mark {
			return true
		}
	}

	return false
}

// IsDraw reports whether every cell is taken. It does not exclude a win; check
// IsWin for both marks first.
func IsDraw(board entity.Board) bool {
	return len(board.EmptyCells()) == 0
}

// Result classifies a position: a win for either mark, a full board, or still
// in progress. Wins are checked before the draw.
func Result(board entity.Board) (entity.Outcome, entity.Mark) {
	switch {
	case IsWin(board, entity.MarkA):
		return entity.Win, entity.MarkA
	case IsWin(board, entity.MarkB):
		return entity.Win, entity.MarkB
	case IsDraw(board):
		return entity.Draw, entity.Empty
	default:
		return entity.InProgress, entity.Empty
	}
}

func at(rows [entity.BoardSize][entity.BoardSize]entity.Mark, index int) entity.Mark {
	return rows[index/entity.BoardSize][index%entity.BoardSize]
}
