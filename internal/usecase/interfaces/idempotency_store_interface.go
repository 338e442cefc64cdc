package interfaces

import (
	"context"
	"time"
)

// IIdempotencyStore remembers request keys for a limited time.
// Reserve returns false when the key was already reserved.
type IIdempotencyStore interface {
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
