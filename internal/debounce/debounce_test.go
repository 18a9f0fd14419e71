package debounce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/handy-tictactoe/internal/apperror"
)

func at(t *testing.T, cell int) Signal {
	t.Helper()

	signal, err := At(cell)
	require.NoError(t, err)

	return signal
}

// feed returns the tick numbers (1-based) on which a confirmation fired and
// the confirmed cells.
func feed(d *Debouncer, signals ...Signal) ([]int, []int) {
	var ticks, cells []int
	for i, signal := range signals {
		if cell, ok := d.Observe(signal); ok {
			ticks = append(ticks, i+1)
			cells = append(cells, cell)
		}
	}
	return ticks, cells
}

func TestNew(t *testing.T) {
	t.Run("Rejects a non-positive threshold", func(t *testing.T) {
		for _, threshold := range []int{0, -1} {
			d, err := New(threshold)

			require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
			assert.Nil(t, d)
		}
	})

	t.Run("Starts with no candidate", func(t *testing.T) {
		d, err := New(DefaultThreshold)
		require.NoError(t, err)

		candidate, streak := d.Progress()
		assert.Equal(t, None(), candidate)
		assert.Zero(t, streak)
		assert.Equal(t, DefaultThreshold, d.Threshold())
	})
}

func TestDebouncer_Observe(t *testing.T) {
	t.Run("Fires once on the tick after the threshold", func(t *testing.T) {
		// Given: a debouncer with threshold 3
		d, err := New(3)
		require.NoError(t, err)

		// When: cell 2 is seen on four ticks
		cell := at(t, 2)
		ticks, cells := feed(d, cell, cell, cell, cell)

		// Then: exactly one confirmation of cell 2 fires, on the 4th tick
		assert.Equal(t, []int{4}, ticks)
		assert.Equal(t, []int{2}, cells)
	})

	t.Run("Threshold ticks are not enough", func(t *testing.T) {
		d, err := New(3)
		require.NoError(t, err)

		cell := at(t, 5)
		ticks, _ := feed(d, cell, cell, cell)

		assert.Empty(t, ticks)

		candidate, streak := d.Progress()
		assert.Equal(t, cell, candidate)
		assert.Equal(t, 3, streak)
	})

	t.Run("Steady signal has to build a fresh streak", func(t *testing.T) {
		// Given: a debouncer with threshold 2
		d, err := New(2)
		require.NoError(t, err)

		// When: the same cell is held for seven ticks
		cell := at(t, 0)
		ticks, _ := feed(d, cell, cell, cell, cell, cell, cell, cell)

		// Then: it fires on every third tick
		assert.Equal(t, []int{3, 6}, ticks)
	})

	t.Run("A different cell restarts the streak", func(t *testing.T) {
		d, err := New(2)
		require.NoError(t, err)

		first, second := at(t, 1), at(t, 7)
		ticks, cells := feed(d, first, first, second, first, first, first)

		assert.Equal(t, []int{6}, ticks)
		assert.Equal(t, []int{1}, cells)
	})

	t.Run("No hand restarts the streak", func(t *testing.T) {
		d, err := New(2)
		require.NoError(t, err)

		cell := at(t, 4)
		ticks, _ := feed(d, cell, cell, None(), cell, cell)

		assert.Empty(t, ticks)
	})

	t.Run("No hand never fires", func(t *testing.T) {
		d, err := New(1)
		require.NoError(t, err)

		signals := make([]Signal, 10)
		for i := range signals {
			signals[i] = None()
		}

		ticks, _ := feed(d, signals...)

		assert.Empty(t, ticks)

		_, streak := d.Progress()
		assert.Zero(t, streak)
	})

	t.Run("Threshold of one fires on the second tick", func(t *testing.T) {
		d, err := New(1)
		require.NoError(t, err)

		cell := at(t, 8)
		ticks, cells := feed(d, cell, cell)

		assert.Equal(t, []int{2}, ticks)
		assert.Equal(t, []int{8}, cells)
	})
}

func TestDebouncer_Reset(t *testing.T) {
	// Given: a streak one tick short of firing
	d, err := New(2)
	require.NoError(t, err)

	cell := at(t, 3)
	ticks, _ := feed(d, cell, cell)
	require.Empty(t, ticks)

	// When: the debouncer is reset
	d.Reset()

	// Then: the next identical tick starts over
	_, ok := d.Observe(cell)
	assert.False(t, ok)

	_, streak := d.Progress()
	assert.Equal(t, 1, streak)
}

func TestAt(t *testing.T) {
	for _, cell := range []int{-1, 9, 42} {
		_, err := At(cell)
		require.ErrorIs(t, err, apperror.ErrOutOfRange)
	}

	signal := at(t, 6)
	cell, ok := signal.Cell()
	assert.True(t, ok)
	assert.Equal(t, 6, cell)
	assert.Equal(t, "cell 6", signal.String())

	_, ok = None().Cell()
	assert.False(t, ok)
	assert.Equal(t, "none", None().String())
}
