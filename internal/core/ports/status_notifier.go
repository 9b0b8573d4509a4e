package ports

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// StatusChangedEvent is published after an order's status transition has
// committed.
type StatusChangedEvent struct {
	OrderID   string       `json:"orderId"`
	TenantID  string       `json:"tenantId"`
	OrderNo   string       `json:"orderNo"`
	OldStatus order.Status `json:"oldStatus"`
	NewStatus order.Status `json:"newStatus"`
	Version   int64        `json:"version"`
}

// StatusNotifier publishes status change events to interested downstream
// systems. Publishing happens strictly after commit; a failed publish is
// logged and dropped, never rolled into the business outcome.
type StatusNotifier interface {
	NotifyStatusChanged(ctx context.Context, event StatusChangedEvent) error
}
