// Package changerepo persists order change requests.
package changerepo

import (
	"time"

	"orderflow/internal/core/domain/model/change"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// OrderChangeDTO is the database row behind a change request. OriginalData
// and NewData hold JSON snapshots of the fields the change touches.
type OrderChangeDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID `gorm:"type:uuid;index"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	ChangeType   string
	Reason       string
	Status       string `gorm:"index"`
	DiffAmount   float64
	OriginalData string
	NewData      string
	RequestedBy  string
	RequestedAt  time.Time
	ApprovedBy   string
	ApprovedAt   *time.Time
}

// TableName overrides GORM's default naming to use "order_changes".
func (OrderChangeDTO) TableName() string {
	return "order_changes"
}

func fromDomain(aggregate *change.OrderChange) OrderChangeDTO {
	return OrderChangeDTO{
		ID:           aggregate.ID().Bytes(),
		TenantID:     aggregate.TenantID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		ChangeType:   string(aggregate.ChangeType()),
		Reason:       aggregate.Reason(),
		Status:       string(aggregate.Status()),
		DiffAmount:   aggregate.DiffAmount(),
		OriginalData: aggregate.OriginalData(),
		NewData:      aggregate.NewData(),
		RequestedBy:  aggregate.RequestedBy(),
		RequestedAt:  aggregate.RequestedAt(),
		ApprovedBy:   aggregate.ApprovedBy(),
		ApprovedAt:   aggregate.ApprovedAt(),
	}
}

func toDomain(dto OrderChangeDTO) (*change.OrderChange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return change.RestoreOrderChange(
		id,
		tenantID,
		orderID,
		change.Type(dto.ChangeType),
		dto.Reason,
		change.Status(dto.Status),
		dto.DiffAmount,
		dto.OriginalData,
		dto.NewData,
		dto.RequestedBy,
		dto.RequestedAt,
		dto.ApprovedBy,
		dto.ApprovedAt,
	)
}
