package lock

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	redisclient "github.com/redis/go-redis/v9"
)

// Locker serializes writers that touch the same booking across instances.
// The database transaction is still the authority; the lock just keeps two
// completion calls from interleaving their read-modify-write windows.
type Locker interface {
	Lock(ctx context.Context, key string) (func() error, error)
}

type redsyncLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
}

func NewRedsyncLocker(client *redisclient.Client) Locker {
	pool := goredis.NewPool(client)
	return &redsyncLocker{
		rs:     redsync.New(pool),
		expiry: 8 * time.Second,
	}
}

func (l *redsyncLocker) Lock(ctx context.Context, key string) (func() error, error) {
	mutex := l.rs.NewMutex(key, redsync.WithExpiry(l.expiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() error {
		_, err := mutex.UnlockContext(ctx)
		return err
	}, nil
}
