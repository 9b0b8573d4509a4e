package ports

import (
	"context"

	"orderflow/internal/core/domain/model/change"
	"orderflow/internal/core/domain/model/kernel"
)

// OrderChangeRepository defines the persistence contract for order change
// requests.
type OrderChangeRepository interface {
	// Add persists a new change request.
	Add(ctx context.Context, aggregate *change.OrderChange) error

	// Update persists changes to an existing change request.
	Update(ctx context.Context, aggregate *change.OrderChange) error

	// Get retrieves a change request by identifier and tenant.
	// Returns errs.ObjectNotFoundError when no such request exists for the tenant.
	Get(ctx context.Context, id kernel.UUID, tenantID kernel.UUID) (*change.OrderChange, error)

	// GetAllPendingForOrder retrieves the pending change requests targeting
	// the given order.
	GetAllPendingForOrder(ctx context.Context, orderID kernel.UUID, tenantID kernel.UUID) ([]*change.OrderChange, error)
}
