package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DeleteLockStore serializes trip deletion per owner across service
// replicas with a Redis lease.
type DeleteLockStore struct {
	client *redis.Client
}

// NewDeleteLockStore creates a new DeleteLockStore.
func NewDeleteLockStore(client *redis.Client) *DeleteLockStore {
	return &DeleteLockStore{client: client}
}

func deleteLockKey(ownerID string) string {
	return fmt.Sprintf("lock:trip-delete:%s", ownerID)
}

// Acquire attempts to take the delete lock for the owner. Returns true if
// acquired, false if another delete holds it.
func (s *DeleteLockStore) Acquire(ctx context.Context, ownerID string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, deleteLockKey(ownerID), "1", ttl).Result()
}

// Release frees the delete lock for the owner.
func (s *DeleteLockStore) Release(ctx context.Context, ownerID string) error {
	return s.client.Del(ctx, deleteLockKey(ownerID)).Err()
}
