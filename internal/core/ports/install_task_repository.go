package ports

import (
	"context"

	"orderflow/internal/core/domain/model/installation"
	"orderflow/internal/core/domain/model/kernel"
)

// InstallTaskRepository is the read-only contract for the field service
// subsystem's install tasks. The lifecycle engine never writes them.
type InstallTaskRepository interface {
	// GetAllForOrder retrieves the install tasks scheduled for the given
	// sales order. An order without tasks yields an empty slice, not an
	// error.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID, tenantID kernel.UUID) ([]*installation.InstallTask, error)
}
