// Package porepo reads the procurement subsystem's purchase orders. The
// lifecycle engine only consumes their statuses, so the package carries no
// write path.
package porepo

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/procurement"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PurchaseOrderDTO is the projection of a purchase order row. Only the
// columns the synchronizer needs are mapped.
type PurchaseOrderDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;index"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	Status   string
}

// TableName overrides GORM's default naming to use "purchase_orders".
func (PurchaseOrderDTO) TableName() string {
	return "purchase_orders"
}

// GormPurchaseOrderRepository implements ports.PurchaseOrderRepository using GORM.
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GORM purchase order repository.
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// GetAllForOrder retrieves the purchase orders raised for a sales order.
// An order without purchase orders yields an empty slice.
func (r *GormPurchaseOrderRepository) GetAllForOrder(
	ctx context.Context,
	orderID kernel.UUID,
	tenantID kernel.UUID,
) ([]*procurement.PurchaseOrder, error) {
	if err := errors.Join(orderID.Validate(), tenantID.Validate()); err != nil {
		return nil, err
	}

	var dtos []PurchaseOrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "order_id = ? AND tenant_id = ?", orderID.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	purchaseOrders := make([]*procurement.PurchaseOrder, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		po, poErr := procurement.NewPurchaseOrder(id, orderID, procurement.Status(dto.Status))
		if poErr != nil {
			return nil, poErr
		}
		purchaseOrders = append(purchaseOrders, po)
	}

	return purchaseOrders, nil
}
