// Package taskrepo reads the field service subsystem's install tasks. The
// lifecycle engine only consumes their statuses, so the package carries no
// write path.
package taskrepo

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/installation"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InstallTaskDTO is the projection of an install task row. Only the columns
// the synchronizer needs are mapped.
type InstallTaskDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;index"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	Status   string
}

// TableName overrides GORM's default naming to use "install_tasks".
func (InstallTaskDTO) TableName() string {
	return "install_tasks"
}

// GormInstallTaskRepository implements ports.InstallTaskRepository using GORM.
type GormInstallTaskRepository struct {
	db *gorm.DB
}

// NewGormInstallTaskRepository creates a new GORM install task repository.
func NewGormInstallTaskRepository(db *gorm.DB) *GormInstallTaskRepository {
	return &GormInstallTaskRepository{db: db}
}

// GetAllForOrder retrieves the install tasks scheduled for a sales order.
// An order without tasks yields an empty slice.
func (r *GormInstallTaskRepository) GetAllForOrder(
	ctx context.Context,
	orderID kernel.UUID,
	tenantID kernel.UUID,
) ([]*installation.InstallTask, error) {
	if err := errors.Join(orderID.Validate(), tenantID.Validate()); err != nil {
		return nil, err
	}

	var dtos []InstallTaskDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "order_id = ? AND tenant_id = ?", orderID.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]*installation.InstallTask, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		task, taskErr := installation.NewInstallTask(id, orderID, installation.Status(dto.Status))
		if taskErr != nil {
			return nil, taskErr
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}
