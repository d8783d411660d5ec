package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"reservation-service/internal/pkg/errors"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	goredislib "github.com/redis/go-redis/v9"
)

// Unlock releases a lock obtained from a Locker.
type Unlock func(ctx context.Context) error

// Locker serializes work on a named resource across service instances.
type Locker interface {
	Acquire(ctx context.Context, name string) (Unlock, error)
}

type redisLocker struct {
	rs  *redsync.Redsync
	ttl time.Duration
}

func NewRedis(client *goredislib.Client, ttl time.Duration) Locker {
	return &redisLocker{
		rs:  redsync.New(goredis.NewPool(client)),
		ttl: ttl,
	}
}

func (l *redisLocker) Acquire(ctx context.Context, name string) (Unlock, error) {
	mutex := l.rs.NewMutex(
		fmt.Sprintf("lock:%s", name),
		redsync.WithExpiry(l.ttl),
		redsync.WithTries(64),
		redsync.WithRetryDelay(50*time.Millisecond),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, errors.ServiceUnavailable(fmt.Sprintf("resource %s is busy, please retry", name))
	}

	return func(ctx context.Context) error {
		_, err := mutex.UnlockContext(ctx)
		return err
	}, nil
}

type localLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLocal returns an in-process Locker for single-instance runs and tests.
func NewLocal() Locker {
	return &localLocker{locks: map[string]*sync.Mutex{}}
}

func (l *localLocker) Acquire(_ context.Context, name string) (Unlock, error) {
	l.mu.Lock()
	m, ok := l.locks[name]
	if !ok {
		m = &sync.Mutex{}
		l.locks[name] = m
	}
	l.mu.Unlock()

	m.Lock()
	return func(context.Context) error {
		m.Unlock()
		return nil
	}, nil
}
