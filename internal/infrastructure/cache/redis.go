package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"oficina_insufilm/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const idempotencyKeyPrefix = "insufilm:idempotency:"

// New creates a Redis client and checks the connection.
func New(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("infrastructure/cache: ping: %w", err)
	}

	return client, nil
}

// IdempotencyStore reserves request keys with SET NX so that a retried
// mutation (same Idempotency-Key header) is applied once.
type IdempotencyStore struct {
	client *redis.Client
}

var _ interfaces.IIdempotencyStore = (*IdempotencyStore)(nil)

func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

func (s *IdempotencyStore) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, idempotencyKeyPrefix+key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		log.Printf("[idempotency][cache] reserve failed key=%s err=%v", key, err)
		return false, err
	}
	return ok, nil
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, idempotencyKeyPrefix+key).Err(); err != nil {
		log.Printf("[idempotency][cache] release failed key=%s err=%v", key, err)
		return err
	}
	return nil
}
