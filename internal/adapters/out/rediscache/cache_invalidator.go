// Package rediscache drops cached order projections from Redis.
package rediscache

import (
	"context"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// CacheInvalidator implements ports.CacheInvalidator on a Redis client.
type CacheInvalidator struct {
	client *redis.Client
}

// NewCacheInvalidator creates an invalidator on the given client.
func NewCacheInvalidator(client *redis.Client) *CacheInvalidator {
	return &CacheInvalidator{client: client}
}

// OrderCacheKey builds the cache key read paths use for one order.
func OrderCacheKey(orderID kernel.UUID, tenantID kernel.UUID) string {
	return fmt.Sprintf("order:%s:%s", tenantID.String(), orderID.String())
}

// InvalidateOrder deletes the cached projection of one order. Deleting a key
// that is not cached is not an error.
func (i *CacheInvalidator) InvalidateOrder(ctx context.Context, orderID kernel.UUID, tenantID kernel.UUID) error {
	return i.client.Del(ctx, OrderCacheKey(orderID, tenantID)).Err()
}
