package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore maps Idempotency-Key headers to the shipment created
// under them, so retried create requests replay instead of double-inserting.
// Key format: idem:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Get returns the shipment id recorded for key, or "" when the key is unseen.
func (s *IdempotencyStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("idempotency get: %w", err)
	}
	return v, nil
}

// Set records the shipment created under key (expires after idempotencyTTL).
func (s *IdempotencyStore) Set(ctx context.Context, key, shipmentID string) error {
	return s.client.Set(ctx, s.key(key), shipmentID, idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(key string) string {
	return "idem:" + key
}
