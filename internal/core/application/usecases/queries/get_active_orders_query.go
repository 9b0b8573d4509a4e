package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves a tenant's orders currently waiting on child
// purchase orders or install tasks. These are the orders the status refresh
// sweep watches, surfaced here for monitoring.
type GetActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query scoped to the given tenant.
func NewGetActiveOrdersQuery(tenantID kernel.UUID) (GetActiveOrdersQuery, error) {
	query := GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := query.setTenantID(tenantID); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// TenantID returns the tenant the listing is scoped to.
func (q GetActiveOrdersQuery) TenantID() kernel.UUID {
	return q.tenantID
}

func (q *GetActiveOrdersQuery) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	q.tenantID = tenantID
	return nil
}

// GetActiveOrdersQueryResponse is one row of the active-orders listing.
type GetActiveOrdersQueryResponse struct {
	ID          kernel.UUID
	OrderNo     string
	Status      order.Status
	Version     int64
	TotalAmount float64
}
