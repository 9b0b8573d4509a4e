// Package procurement holds the read-only view of purchase orders owned by
// the procurement subsystem. The lifecycle engine only ever reads their
// status to derive the parent order's status; it never writes them.
package procurement

import (
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// Status is the procurement-owned purchase order status. Its internal
// transitions are out of scope here; the lifecycle engine only asks two
// questions of it: has the PO been placed with a supplier, and has it been
// fulfilled.
type Status string

const (
	StatusDraft        Status = "DRAFT"
	StatusOrdered      Status = "ORDERED"
	StatusInProduction Status = "IN_PRODUCTION"
	StatusShipped      Status = "SHIPPED"
	StatusReceived     Status = "RECEIVED"
	StatusCompleted    Status = "COMPLETED"
	StatusCancelled    Status = "CANCELLED"
)

// Validate checks membership in the procurement status enum.
func (s Status) Validate() error {
	switch s {
	case StatusDraft, StatusOrdered, StatusInProduction, StatusShipped,
		StatusReceived, StatusCompleted, StatusCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("purchase order status is invalid",
			fmt.Errorf("%q is not a valid purchase order status", string(s)))
	}
}

// IsPlaced reports whether the PO has been placed with a supplier, i.e. it
// reached ORDERED or any later non-cancelled state.
func (s Status) IsPlaced() bool {
	switch s {
	case StatusOrdered, StatusInProduction, StatusShipped, StatusReceived, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsFulfilled reports whether the goods have arrived: RECEIVED or COMPLETED.
// SHIPPED deliberately does not count; goods in transit still block the
// parent order's delivery barrier.
func (s Status) IsFulfilled() bool {
	return s == StatusReceived || s == StatusCompleted
}

// PurchaseOrder is a read-only projection of a procurement purchase order,
// reduced to the fields the status synchronizer needs.
type PurchaseOrder struct {
	id      kernel.UUID
	orderID kernel.UUID
	status  Status
}

// NewPurchaseOrder creates a read view of a purchase order.
func NewPurchaseOrder(id kernel.UUID, orderID kernel.UUID, status Status) (*PurchaseOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return &PurchaseOrder{id: id, orderID: orderID, status: status}, nil
}

// ID returns the purchase order's identifier.
func (p *PurchaseOrder) ID() kernel.UUID {
	return p.id
}

// OrderID returns the parent sales order's identifier.
func (p *PurchaseOrder) OrderID() kernel.UUID {
	return p.orderID
}

// Status returns the procurement-owned status.
func (p *PurchaseOrder) Status() Status {
	return p.status
}
