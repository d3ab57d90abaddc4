package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a previously acquired lock.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker serializes session access across processes. Optional:
// a single-process host relies on the session manager's local locks alone.
type DistributedLocker interface {
	// Lock acquires a lock on key, expiring after ttl if never released.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
