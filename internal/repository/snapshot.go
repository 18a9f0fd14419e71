package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/handy-tictactoe/internal/entity"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotRepository hands session snapshots to renderers. Entries expire and
// are never loaded back into a session.
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot *entity.Snapshot) error
	GetByID(ctx context.Context, id string) (*entity.Snapshot, error)
	DeleteByID(ctx context.Context, id string) error
	Subscribe(ctx context.Context, id string) (<-chan *entity.Snapshot, error)
}

type dbSnapshot struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotRepository(client *redis.Client, ttl time.Duration) SnapshotRepository {
	return &dbSnapshot{
		client: client,
		ttl:    ttl,
	}
}

func SnapshotKey(id string) string {
	return "session:" + id
}

func UpdatesChannel(id string) string {
	return "session:" + id + ":updates"
}

// Save stores the latest snapshot and publishes it to the session's channel.
func (that *dbSnapshot) Save(ctx context.Context, snapshot *entity.Snapshot) error {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}

	pipe := that.client.TxPipeline()
	pipe.Set(ctx, SnapshotKey(snapshot.SessionID), snapshotJSON, that.ttl)
	pipe.Publish(ctx, UpdatesChannel(snapshot.SessionID), snapshotJSON)

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

func (that *dbSnapshot) GetByID(ctx context.Context, id string) (*entity.Snapshot, error) {
	response, err := that.client.Get(ctx, SnapshotKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot by id: %w", err)
	}

	var snapshot entity.Snapshot
	if err = json.Unmarshal([]byte(response), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}

func (that *dbSnapshot) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, SnapshotKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete snapshot by id: %w", err)
	}

	if deleted == 0 {
		return ErrSnapshotNotFound
	}

	return nil
}

// Subscribe streams the snapshots published for id until ctx is done.
func (that *dbSnapshot) Subscribe(ctx context.Context, id string) (<-chan *entity.Snapshot, error) {
	pubsub := that.client.Subscribe(ctx, UpdatesChannel(id))

	// wait for the subscription to be confirmed so no publish is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to snapshots: %w", err)
	}

	out := make(chan *entity.Snapshot)
	go func() {
		defer close(out)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var snapshot entity.Snapshot
				if err := json.Unmarshal([]byte(msg.Payload), &snapshot); err != nil {
					continue
				}

				select {
				case out <- &snapshot:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
