package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every lookup and write is tenant-scoped; an order belonging to another
// tenant is indistinguishable from a missing one.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate through a
	// conditional write. When expectedVersion is non-nil the write only
	// succeeds if the stored row still carries that version; a stale version
	// yields errs.ConcurrencyConflictError and leaves the row untouched.
	// A nil expectedVersion bypasses the version check entirely.
	//
	// Update never retries; the caller must re-read and decide.
	Update(ctx context.Context, aggregate *order.Order, expectedVersion *int64) error

	// Get retrieves an order aggregate by identifier and tenant.
	// Returns errs.ObjectNotFoundError when no such order exists for the tenant.
	Get(ctx context.Context, id kernel.UUID, tenantID kernel.UUID) (*order.Order, error)

	// GetAllAwaitingChildren retrieves orders whose status is derived from
	// child purchase orders or install tasks. The status refresh sweep uses
	// it to find candidates for synchronization.
	GetAllAwaitingChildren(ctx context.Context) ([]*order.Order, error)
}
