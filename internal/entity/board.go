package entity

import (
	"fmt"

	"github.com/rocketscienceinc/handy-tictactoe/internal/apperror"
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

// Mark is the value of a single cell. MarkA always moves first.
type Mark uint8

const (
	Empty Mark = iota
	MarkA
	MarkB
)

// Opponent returns the mark that moves after m. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case MarkA:
		return MarkB
	case MarkB:
		return MarkA
	default:
		return Empty
	}
}

func (m Mark) IsPlayer() bool {
	return m == MarkA || m == MarkB
}

func (m Mark) String() string {
	switch m {
	case MarkA:
		return "A"
	case MarkB:
		return "B"
	default:
		return "."
	}
}

// Cell addresses a board square by row and column.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CellFromIndex converts a row-major index in [0,8] to a Cell.
func CellFromIndex(index int) (Cell, error) {
	if index < 0 || index >= CellCount {
		return Cell{}, fmt.Errorf("%w: index %d", apperror.ErrOutOfRange, index)
	}

	return Cell{Row: index / BoardSize, Col: index % BoardSize}, nil
}

func (that Cell) Index() int {
	return that.Row*BoardSize + that.Col
}

func (that Cell) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Cell) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is the 3x3 grid of a single game. The zero value is an empty board
// with MarkA to move. Board is a plain value; copying it copies the game.
type Board struct {
	cells [CellCount]Mark
}

func NewBoard() Board {
	return Board{}
}

// BoardFromRows builds a board from row-major rows. It is meant for setting up
// positions and does not check that the position is reachable.
func BoardFromRows(rows [BoardSize][BoardSize]Mark) Board {
	var board Board
	for r := range rows {
		for c := range rows[r] {
			board.cells[r*BoardSize+c] = rows[r][c]
		}
	}

	return board
}

// At returns the mark at (row, col).
func (that *Board) At(row, col int) (Mark, error) {
	cell := Cell{Row: row, Col: col}
	if !cell.InRange() {
		return Empty, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, cell)
	}

	return that.cells[cell.Index()], nil
}

// Turn is derived from the mark counts: MarkA moves whenever it has not placed
// more marks than MarkB.
func (that *Board) Turn() Mark {
	if that.Count(MarkA) <= that.Count(MarkB) {
		return MarkA
	}
	return MarkB
}

func (that *Board) Count(mark Mark) int {
	n := 0
	for _, cell := range that.cells {
		if cell == mark {
			n++
		}
	}
	return n
}

// Place puts mark on (row, col). The board is left untouched on error.
func (that *Board) Place(row, col int, mark Mark) error {
	cell := Cell{Row: row, Col: col}
	if !cell.InRange() {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfRange, cell)
	}

	if that.cells[cell.Index()] != Empty {
		return fmt.Errorf("%w: %s", apperror.ErrIllegalMove, cell)
	}

	if !mark.IsPlayer() || mark != that.Turn() {
		return fmt.Errorf("%w: %s", apperror.ErrNotYourTurn, mark)
	}

	that.cells[cell.Index()] = mark

	return nil
}

// EmptyCells lists the free cells in row-major order.
func (that *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, CellCount)
	for i, mark := range that.cells {
		if mark == Empty {
			cells = append(cells, Cell{Row: i / BoardSize, Col: i % BoardSize})
		}
	}
	return cells
}

// Rows returns a copy of the grid for read-only consumers.
func (that *Board) Rows() [BoardSize][BoardSize]Mark {
	var rows [BoardSize][BoardSize]Mark
	for i, mark := range that.cells {
		rows[i/BoardSize][i%BoardSize] = mark
	}
	return rows
}

func (that *Board) String() string {
	s := ""
	for i, mark := range that.cells {
		s += mark.String()
		if i%BoardSize == BoardSize-1 && i != CellCount-1 {
			s += "/"
		}
	}
	return s
}
