// Package orderrepo persists the order aggregate. It maps between the domain
// model and the orders table and implements the conditional, version-guarded
// write that backs optimistic concurrency control.
package orderrepo

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row behind an order aggregate. The status column
// stores the literal enum names, so the persisted values and the domain enum
// must stay in lockstep.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID            uuid.UUID `gorm:"type:uuid;index:idx_orders_tenant_status"`
	OrderNo             string    `gorm:"uniqueIndex"`
	Status              string    `gorm:"index:idx_orders_tenant_status"`
	Version             int64
	TotalAmount         float64
	PaidAmount          float64
	BalanceAmount       float64
	SettlementType      string
	PausedAt            *time.Time
	PauseReason         *string
	PauseCumulativeDays int
	CompletedAt         *time.Time
	ClosedAt            *time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var pauseReason *string
	if r := aggregate.PauseReason(); r != nil {
		raw, err := r.Serialize()
		if err != nil {
			return OrderDTO{}, err
		}
		pauseReason = &raw
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		TenantID:            aggregate.TenantID().Bytes(),
		OrderNo:             aggregate.OrderNo(),
		Status:              aggregate.Status().String(),
		Version:             aggregate.Version(),
		TotalAmount:         aggregate.TotalAmount(),
		PaidAmount:          aggregate.PaidAmount(),
		BalanceAmount:       aggregate.BalanceAmount(),
		SettlementType:      string(aggregate.SettlementType()),
		PausedAt:            aggregate.PausedAt(),
		PauseReason:         pauseReason,
		PauseCumulativeDays: aggregate.PauseCumulativeDays(),
		CompletedAt:         aggregate.CompletedAt(),
		ClosedAt:            aggregate.ClosedAt(),
	}, nil
}

// toDomain reconstructs the aggregate from a row using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	var pauseReason *order.PauseReason
	if dto.PauseReason != nil {
		parsed := order.ParsePauseReason(*dto.PauseReason)
		pauseReason = &parsed
	}

	return order.RestoreOrder(
		id,
		tenantID,
		dto.OrderNo,
		order.Status(dto.Status),
		dto.Version,
		dto.TotalAmount,
		dto.PaidAmount,
		order.SettlementType(dto.SettlementType),
		dto.PausedAt,
		pauseReason,
		dto.PauseCumulativeDays,
		dto.CompletedAt,
		dto.ClosedAt,
	)
}
