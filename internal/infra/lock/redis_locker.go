package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
)

const (
	userLockKeyPrefix = "planner:lock:user:"

	defaultTTL        = 3 * time.Minute
	defaultMaxWait    = 5 * time.Second
	defaultRetryDelay = 50 * time.Millisecond
)

// releaseScript deletes the key only while it still holds our token, so an expired
// lock taken over by another holder is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type Config struct {
	// TTL bounds how long a crashed holder can block the user.
	TTL        time.Duration
	MaxWait    time.Duration
	RetryDelay time.Duration
}

type RedisLocker struct {
	client *redis.Client
	cfg    Config
}

func NewRedisLocker(client *redis.Client, cfg Config) *RedisLocker {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.MaxWait < 0 {
		cfg.MaxWait = defaultMaxWait
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	return &RedisLocker{
		client: client,
		cfg:    cfg,
	}
}

var _ domain.UserLocker = (*RedisLocker)(nil)

// Lock takes the user's lock, retrying until MaxWait elapses. It returns
// domain.ErrConflict when the lock stays held by someone else.
func (l *RedisLocker) Lock(ctx context.Context, userID string) (func(ctx context.Context) error, error) {
	key := userLockKeyPrefix + userID
	token := uuid.NewString()
	deadline := time.Now().Add(l.cfg.MaxWait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.cfg.TTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire user lock: %w", err)
		}
		if ok {
			return l.unlockFunc(key, token), nil
		}

		if !time.Now().Add(l.cfg.RetryDelay).Before(deadline) {
			slog.WarnContext(ctx, "user lock busy",
				slog.String("user_id", userID),
				slog.Duration("waited", l.cfg.MaxWait),
			)
			return nil, fmt.Errorf("%w: another operation for this user is running", domain.ErrConflict)
		}

		timer := time.NewTimer(l.cfg.RetryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (l *RedisLocker) unlockFunc(key, token string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		released, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("release user lock: %w", err)
		}
		if released == 0 {
			return errLockLost
		}
		return nil
	}
}

var errLockLost = errors.New("user lock expired before release")
