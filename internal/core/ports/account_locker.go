package ports

import "context"

// AccountLocker serializes moderation actions on a single account so that
// a ban cannot resurrect an account that is concurrently being deleted.
// Acquire returns false when another moderation request holds the lock.
type AccountLocker interface {
	Acquire(ctx context.Context, accountID string) (bool, error)
	Release(ctx context.Context, accountID string) error
}
