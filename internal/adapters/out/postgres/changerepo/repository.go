package changerepo

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/change"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderChangeRepository implements ports.OrderChangeRepository using GORM.
type GormOrderChangeRepository struct {
	db *gorm.DB
}

// NewGormOrderChangeRepository creates a new GORM change request repository.
func NewGormOrderChangeRepository(db *gorm.DB) *GormOrderChangeRepository {
	return &GormOrderChangeRepository{db: db}
}

// Add saves a new change request to the database.
func (r *GormOrderChangeRepository) Add(ctx context.Context, aggregate *change.OrderChange) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes an existing change request back. All columns are written so a
// decision (approver, timestamp) persists even when other fields are zero.
func (r *GormOrderChangeRepository) Update(ctx context.Context, aggregate *change.OrderChange) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderChangeDTO{}).Select("*").Omit("id").
		Where("id = ? AND tenant_id = ?", dto.ID, dto.TenantID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order change", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a change request by ID within a tenant.
func (r *GormOrderChangeRepository) Get(ctx context.Context, id kernel.UUID, tenantID kernel.UUID) (*change.OrderChange, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate()); err != nil {
		return nil, err
	}

	var dto OrderChangeDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order change", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingForOrder retrieves the pending change requests filed against
// an order, oldest first.
func (r *GormOrderChangeRepository) GetAllPendingForOrder(
	ctx context.Context,
	orderID kernel.UUID,
	tenantID kernel.UUID,
) ([]*change.OrderChange, error) {
	if err := errors.Join(orderID.Validate(), tenantID.Validate()); err != nil {
		return nil, err
	}

	var dtos []OrderChangeDTO
	err := r.db.WithContext(ctx).
		Order("requested_at").
		Find(&dtos, "order_id = ? AND tenant_id = ? AND status = ?",
			orderID.Bytes(), tenantID.Bytes(), string(change.StatusPending)).Error
	if err != nil {
		return nil, err
	}

	changes := make([]*change.OrderChange, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		changes = append(changes, aggregate)
	}

	return changes, nil
}
