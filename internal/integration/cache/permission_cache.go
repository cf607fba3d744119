// Package cache implements Redis-backed caches for the integration layer.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/rbac"
)

const (
	// matrixKey is the Redis key holding the serialized permission matrix.
	matrixKey = "rbac:matrix"

	// matrixTTL bounds staleness if an invalidation is ever lost.
	matrixTTL = 15 * time.Minute
)

// permissionCache implements adapter.PermissionCache on Redis. Every failure
// mode surfaces as adapter.ErrCacheMiss so callers degrade to the repository.
type permissionCache struct {
	client *redis.Client
}

// NewPermissionCache creates a new Redis permission cache instance.
func NewPermissionCache(client *redis.Client) adapter.PermissionCache {
	return &permissionCache{
		client: client,
	}
}

// Get retrieves the cached matrix.
func (c *permissionCache) Get(ctx context.Context) (rbac.Matrix, error) {
	data, err := c.client.Get(ctx, matrixKey).Bytes()
	if err != nil {
		return nil, adapter.ErrCacheMiss
	}

	var matrix rbac.Matrix
	if err := json.Unmarshal(data, &matrix); err != nil {
		return nil, adapter.ErrCacheMiss
	}
	return matrix, nil
}

// Set stores the matrix with a bounded TTL.
func (c *permissionCache) Set(ctx context.Context, m rbac.Matrix) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, matrixKey, data, matrixTTL).Err()
}

// Invalidate drops the cached matrix after an update.
func (c *permissionCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, matrixKey).Err()
}
