package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/handy-tictactoe/internal/config"
	"github.com/rocketscienceinc/handy-tictactoe/internal/minimax"
	"github.com/rocketscienceinc/handy-tictactoe/internal/repository"
	"github.com/rocketscienceinc/handy-tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/handy-tictactoe/internal/service"
	"github.com/rocketscienceinc/handy-tictactoe/internal/usecase"
	"github.com/rocketscienceinc/handy-tictactoe/transport/rest"
	"github.com/rocketscienceinc/handy-tictactoe/transport/websocket"
)

const shutdownTimeout = 5 * time.Second

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, closeRepo, err := newSnapshotRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	var engineOpts []minimax.Option
	if conf.Session.FastestWin {
		engineOpts = append(engineOpts, minimax.WithFastestWin())
	}

	bot := service.NewBotService(logger, minimax.New(engineOpts...))
	sessions := usecase.NewSessionManager(logger, conf.Session, bot, repo)
	defer sessions.Close()

	router := rest.NewRouter(logger, sessions, map[string]http.Handler{
		"/ws":         websocket.New(logger, sessions),
		"/watch/{id}": websocket.NewWatcher(logger, repo),
	})

	srv := &http.Server{
		Addr:        ":" + conf.HTTPPort,
		Handler:     router,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("Application context canceled, shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down HTTP server: %w", err)
		}
		return nil
	})

	return group.Wait()
}

func newSnapshotRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.SnapshotRepository, func(), error) {
	if !conf.Redis.Enabled {
		log.Info("redis disabled, snapshots are not published")
		return repository.NewDiscardRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedis(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewSnapshotRepository(redisStorage, conf.Redis.SnapshotTTL), closeStorage, nil
}
