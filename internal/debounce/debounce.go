// Package debounce turns a noisy per-tick "pointed cell" signal into single
// confirmed selections.
package debounce

import (
	"fmt"

	"github.com/rocketscienceinc/handy-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/handy-tictactoe/internal/entity"
)

const DefaultThreshold = 30

// Signal is one tick of pointing input: a cell index in [0,8] or nothing.
type Signal struct {
	cell  int
	valid bool
}

// None is the tick where no pointing was detected.
func None() Signal {
	return Signal{}
}

// At is the tick where cell is pointed at. Indices outside the board fail with
// apperror.ErrOutOfRange.
func At(cell int) (Signal, error) {
	if cell < 0 || cell >= entity.CellCount {
		return Signal{}, fmt.Errorf("%w: signal cell %d", apperror.ErrOutOfRange, cell)
	}

	return Signal{cell: cell, valid: true}, nil
}

// Cell returns the pointed cell and whether there is one.
func (that Signal) Cell() (int, bool) {
	return that.cell, that.valid
}

func (that Signal) String() string {
	if !that.valid {
		return "none"
	}
	return fmt.Sprintf("cell %d", that.cell)
}

// Debouncer confirms a cell once the same cell has been observed on more than
// threshold consecutive ticks. It is not safe for concurrent use.
type Debouncer struct {
	threshold int
	candidate Signal
	count     int
}

func New(threshold int) (*Debouncer, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("%w: debounce threshold must be positive, got %d", apperror.ErrInvalidConfiguration, threshold)
	}

	return &Debouncer{threshold: threshold}, nil
}

// Observe feeds one tick. It returns the confirmed cell index and true on the
// tick that completes a streak of threshold+1 identical cells; the streak is
// then cleared so a steady signal has to build a fresh streak to fire again.
func (that *Debouncer) Observe(obs Signal) (int, bool) {
	switch {
	case obs != that.candidate:
		that.candidate = obs
		that.count = 0
		if obs.valid {
			that.count = 1
		}
	case obs.valid:
		that.count++
	}

	if that.count > that.threshold {
		cell := that.candidate.cell
		that.Reset()

		return cell, true
	}

	return 0, false
}

// Progress returns the current candidate and its streak length.
func (that *Debouncer) Progress() (Signal, int) {
	return that.candidate, that.count
}

func (that *Debouncer) Threshold() int {
	return that.threshold
}

func (that *Debouncer) Reset() {
	that.candidate = None()
	that.count = 0
}
