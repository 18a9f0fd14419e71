package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/handy-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/handy-tictactoe/internal/entity"
	"github.com/rocketscienceinc/handy-tictactoe/internal/minimax"
	mockedService "github.com/rocketscienceinc/handy-tictactoe/mocks/service"
)

var errEngineBroken = errors.New("engine broken")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestBotService_ChooseMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Takes the winning cell", func(t *testing.T) {
		// Given: a bot backed by the real engine and a board MarkA can win
		bot := NewBotService(discardLogger(), minimax.New())
		board := entity.BoardFromRows([3][3]entity.Mark{
			{entity.MarkA, entity.MarkA, entity.Empty},
			{entity.MarkB, entity.MarkB, entity.Empty},
			{entity.Empty, entity.Empty, entity.Empty},
		})

		// When: the bot moves as MarkA
		cell, err := bot.ChooseMove(ctx, board, entity.MarkA)

		// Then: it completes the top row
		require.NoError(t, err)
		assert.Equal(t, entity.Cell{Row: 0, Col: 2}, cell)
	})

	t.Run("Searches against the opposite mark", func(t *testing.T) {
		mockSearcher := mockedService.NewMocksearcher(t)
		bot := NewBotService(discardLogger(), mockSearcher)

		board := entity.NewBoard()
		mockSearcher.EXPECT().
			BestMove(mock.Anything, board, entity.MarkA, entity.MarkB).
			Return(minimax.Result{Cell: entity.Cell{Row: 1, Col: 1}}, true, nil).
			Once()

		cell, err := bot.ChooseMove(ctx, board, entity.MarkA)

		require.NoError(t, err)
		assert.Equal(t, entity.Cell{Row: 1, Col: 1}, cell)
	})

	t.Run("No available moves", func(t *testing.T) {
		mockSearcher := mockedService.NewMocksearcher(t)
		bot := NewBotService(discardLogger(), mockSearcher)

		mockSearcher.EXPECT().
			BestMove(mock.Anything, mock.Anything, entity.MarkB, entity.MarkA).
			Return(minimax.Result{}, false, nil).
			Once()

		_, err := bot.ChooseMove(ctx, entity.NewBoard(), entity.MarkB)

		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})

	t.Run("Search error is wrapped", func(t *testing.T) {
		mockSearcher := mockedService.NewMocksearcher(t)
		bot := NewBotService(discardLogger(), mockSearcher)

		mockSearcher.EXPECT().
			BestMove(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minimax.Result{}, false, errEngineBroken).
			Once()

		_, err := bot.ChooseMove(ctx, entity.NewBoard(), entity.MarkA)

		require.ErrorIs(t, err, errEngineBroken)
	})

	t.Run("Gives up when the context is canceled", func(t *testing.T) {
		// Given: a search that never finishes on its own
		mockSearcher := mockedService.NewMocksearcher(t)
		bot := NewBotService(discardLogger(), mockSearcher)

		release := make(chan struct{})
		t.Cleanup(func() { close(release) })

		mockSearcher.EXPECT().
			BestMove(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, entity.Board, entity.Mark, entity.Mark) (minimax.Result, bool, error) {
				<-release
				return minimax.Result{}, false, nil
			}).
			Maybe()

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		// When: the bot is asked to move
		_, err := bot.ChooseMove(canceled, entity.NewBoard(), entity.MarkA)

		// Then: it returns the cancellation
		require.ErrorIs(t, err, context.Canceled)
	})
}
