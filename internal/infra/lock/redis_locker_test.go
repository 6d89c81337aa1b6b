package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
	"github.com/KasumiMercury/primind-learning-planner/internal/testutil"
)

func TestRedisLockerExclusive(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	locker := NewRedisLocker(client, Config{
		TTL:        time.Minute,
		MaxWait:    100 * time.Millisecond,
		RetryDelay: 10 * time.Millisecond,
	})

	unlock, err := locker.Lock(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := locker.Lock(ctx, "user-1"); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	other, err := locker.Lock(ctx, "user-2")
	if err != nil {
		t.Fatalf("other user should not be blocked: %v", err)
	}
	if err := other(ctx); err != nil {
		t.Fatalf("unexpected unlock error: %v", err)
	}

	if err := unlock(ctx); err != nil {
		t.Fatalf("unexpected unlock error: %v", err)
	}

	again, err := locker.Lock(ctx, "user-1")
	if err != nil {
		t.Fatalf("lock should be free after unlock: %v", err)
	}
	if err := again(ctx); err != nil {
		t.Fatalf("unexpected unlock error: %v", err)
	}
}

func TestRedisLockerWaitsForRelease(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	locker := NewRedisLocker(client, Config{
		TTL:        time.Minute,
		MaxWait:    2 * time.Second,
		RetryDelay: 10 * time.Millisecond,
	})

	unlock, err := locker.Lock(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = unlock(context.Background())
	}()

	second, err := locker.Lock(ctx, "user-1")
	if err != nil {
		t.Fatalf("expected lock after release, got %v", err)
	}
	if err := second(ctx); err != nil {
		t.Fatalf("unexpected unlock error: %v", err)
	}
}

func TestRedisLockerDoesNotReleaseForeignLock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	locker := NewRedisLocker(client, Config{TTL: time.Minute, MaxWait: 0})

	unlock, err := locker.Lock(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Simulate expiry followed by another holder taking the key.
	if err := client.Set(ctx, userLockKeyPrefix+"user-1", "someone-else", time.Minute).Err(); err != nil {
		t.Fatalf("failed to set up test data: %v", err)
	}

	if err := unlock(ctx); !errors.Is(err, errLockLost) {
		t.Fatalf("expected errLockLost, got %v", err)
	}

	val, err := client.Get(ctx, userLockKeyPrefix+"user-1").Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != "someone-else" {
		t.Errorf("foreign lock was released, got %q", val)
	}
}
