package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/procurement"
)

// PurchaseOrderRepository is the read-only contract for the procurement
// subsystem's purchase orders. The lifecycle engine never writes them.
type PurchaseOrderRepository interface {
	// GetAllForOrder retrieves the purchase orders raised for the given
	// sales order. An order without purchase orders yields an empty slice,
	// not an error.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID, tenantID kernel.UUID) ([]*procurement.PurchaseOrder, error)
}
