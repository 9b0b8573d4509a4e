package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
)

// CacheInvalidator drops cached order projections after a committed
// mutation so read paths never serve a stale status. Invalidation failures
// are logged and dropped; the cache entry expires on its own TTL anyway.
type CacheInvalidator interface {
	InvalidateOrder(ctx context.Context, orderID kernel.UUID, tenantID kernel.UUID) error
}
