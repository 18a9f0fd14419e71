package repository

import (
	"context"

	"github.com/rocketscienceinc/handy-tictactoe/internal/entity"
)

// discardSnapshot is used when no renderer feed is configured.
type discardSnapshot struct{}

func NewDiscardRepository() SnapshotRepository {
	return discardSnapshot{}
}

func (discardSnapshot) Save(context.Context, *entity.Snapshot) error {
	return nil
}

func (discardSnapshot) GetByID(context.Context, string) (*entity.Snapshot, error) {
	return nil, ErrSnapshotNotFound
}

func (discardSnapshot) DeleteByID(context.Context, string) error {
	return nil
}

func (discardSnapshot) Subscribe(ctx context.Context, _ string) (<-chan *entity.Snapshot, error) {
	out := make(chan *entity.Snapshot)
	go func() {
		<-ctx.Done()
		close(out)
	}()
	return out, nil
}
