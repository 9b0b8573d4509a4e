package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// StatusChangePublisher fans a committed status transition out to the
// downstream notifier and the cache invalidator. Both calls run strictly
// after commit and are non-fatal: failures are logged and dropped so they
// never unwind the business outcome.
type StatusChangePublisher struct {
	notifier ports.StatusNotifier
	cache    ports.CacheInvalidator
	log      *slog.Logger
}

// NewStatusChangePublisher creates a publisher. Either collaborator may be
// nil, in which case that side effect is skipped.
func NewStatusChangePublisher(
	notifier ports.StatusNotifier,
	cache ports.CacheInvalidator,
	log *slog.Logger,
) StatusChangePublisher {
	if log == nil {
		log = slog.Default()
	}
	return StatusChangePublisher{
		notifier: notifier,
		cache:    cache,
		log:      log.With("component", "status-change-publisher"),
	}
}

// Publish reports a committed transition. It never returns an error.
func (p StatusChangePublisher) Publish(ctx context.Context, aggregate *order.Order, oldStatus order.Status) {
	if p.notifier != nil {
		event := ports.StatusChangedEvent{
			OrderID:   aggregate.ID().String(),
			TenantID:  aggregate.TenantID().String(),
			OrderNo:   aggregate.OrderNo(),
			OldStatus: oldStatus,
			NewStatus: aggregate.Status(),
			Version:   aggregate.Version(),
		}
		if err := p.notifier.NotifyStatusChanged(ctx, event); err != nil {
			p.log.Warn("status change notification failed",
				"orderId", event.OrderID,
				"newStatus", event.NewStatus,
				"error", err)
		}
	}

	if p.cache != nil {
		if err := p.cache.InvalidateOrder(ctx, aggregate.ID(), aggregate.TenantID()); err != nil {
			p.log.Warn("order cache invalidation failed",
				"orderId", aggregate.ID().String(),
				"error", err)
		}
	}
}

// statusValues renders the single-field JSON document audit rows use for
// status mutations.
func statusValues(status order.Status) string {
	raw, _ := json.Marshal(map[string]string{"status": status.String()})
	return string(raw)
}

// statusAuditRecord builds the audit row for a status transition.
func statusAuditRecord(aggregate *order.Order, actorID string, oldStatus order.Status, now time.Time) ports.AuditRecord {
	return ports.AuditRecord{
		TenantID:      aggregate.TenantID().String(),
		UserID:        actorID,
		TableName:     "orders",
		RecordID:      aggregate.ID().String(),
		Action:        "UPDATE",
		OldValues:     statusValues(oldStatus),
		NewValues:     statusValues(aggregate.Status()),
		ChangedFields: []string{"status"},
		OccurredAt:    now,
	}
}
