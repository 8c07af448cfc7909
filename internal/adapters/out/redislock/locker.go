// Package redislock serializes assignment runs across service instances.
package redislock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dispatch/internal/core/ports"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultKey is the Redis key holding the run lock.
const DefaultKey = "dispatch:assignment-run"

// ErrLockLost is returned by release when the lock expired and was taken by someone else.
var ErrLockLost = errors.New("run lock expired before release")

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker is a ports.RunLocker backed by a single Redis key with a TTL.
// The TTL bounds how long a crashed instance can block runs.
type Locker struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

// NewLocker creates a lock on key. ttl must cover the longest expected run.
func NewLocker(client redis.Cmdable, key string, ttl time.Duration) *Locker {
	if key == "" {
		key = DefaultKey
	}
	return &Locker{client: client, key: key, ttl: ttl}
}

// Acquire takes the lock or returns ports.ErrRunInProgress.
func (l *Locker) Acquire(ctx context.Context) (func(context.Context) error, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, ports.ErrRunInProgress
	}

	return func(ctx context.Context) error {
		deleted, err := releaseScript.Run(ctx, l.client, []string{l.key}, token).Int()
		if err != nil {
			return fmt.Errorf("release run lock: %w", err)
		}
		if deleted == 0 {
			return ErrLockLost
		}
		return nil
	}, nil
}

// LocalLocker is the in-process ports.RunLocker used when no Redis is configured.
// It only serializes runs within one process.
type LocalLocker struct {
	mu sync.Mutex
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{}
}

// Acquire takes the lock or returns ports.ErrRunInProgress without waiting.
func (l *LocalLocker) Acquire(_ context.Context) (func(context.Context) error, error) {
	if !l.mu.TryLock() {
		return nil, ports.ErrRunInProgress
	}

	var once sync.Once
	return func(context.Context) error {
		once.Do(l.mu.Unlock)
		return nil
	}, nil
}
