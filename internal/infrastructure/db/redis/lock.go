package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const lockTTL = 30 * time.Second

// AccountLocker serializes moderation actions per account with a Redis
// SETNX lock. The TTL bounds how long a crashed holder can block an
// account; Release frees it early on the normal path.
// Key format: moderation_lock:<account_id>
type AccountLocker struct {
	client *redis.Client
}

// NewAccountLocker creates an AccountLocker wrapping the given Redis client.
func NewAccountLocker(client *redis.Client) *AccountLocker {
	return &AccountLocker{client: client}
}

// Acquire attempts to take the lock. It returns false without error when
// the lock is already held elsewhere.
func (l *AccountLocker) Acquire(ctx context.Context, accountID string) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(accountID), "1", lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("acquire moderation lock: %w", err)
	}
	return ok, nil
}

// Release frees the lock.
func (l *AccountLocker) Release(ctx context.Context, accountID string) error {
	return l.client.Del(ctx, l.key(accountID)).Err()
}

func (l *AccountLocker) key(accountID string) string {
	return fmt.Sprintf("moderation_lock:%s", accountID)
}
