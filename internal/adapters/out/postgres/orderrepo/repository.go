package orderrepo

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the aggregate back conditionally. With a non-nil
// expectedVersion the UPDATE predicate includes the version column, so a row
// someone else already bumped matches nothing and the write is reported as a
// concurrency conflict without touching the row. The write is never retried
// here; callers re-read and decide.
//
// All columns are written explicitly so cleared fields (a resumed order's
// pause snapshot) actually reach the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, expectedVersion *int64) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	tx := r.db.WithContext(ctx).Model(&OrderDTO{}).Select("*").Omit("id")
	if expectedVersion != nil {
		tx = tx.Where("id = ? AND tenant_id = ? AND version = ?", dto.ID, dto.TenantID, *expectedVersion)
	} else {
		tx = tx.Where("id = ? AND tenant_id = ?", dto.ID, dto.TenantID)
	}

	result := tx.Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if expectedVersion != nil {
			return errs.NewConcurrencyConflictError("order", aggregate.ID().String(), *expectedVersion)
		}
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an order by ID within a tenant.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID, tenantID kernel.UUID) (*order.Order, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAwaitingChildren retrieves every order, across tenants, whose status
// is derived from child entities. The status refresh sweep feeds on it.
func (r *GormOrderRepository) GetAllAwaitingChildren(ctx context.Context) ([]*order.Order, error) {
	waiting := make([]string, 0, 4)
	for _, status := range order.StatusesAwaitingChildren() {
		waiting = append(waiting, status.String())
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status IN ?", waiting).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
