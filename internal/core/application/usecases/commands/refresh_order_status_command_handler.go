package commands

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
)

// RefreshOrderStatusResult mirrors the synchronizer's output contract:
// Status is the status the pass started from and NewStatus is set only when
// a promotion was persisted.
type RefreshOrderStatusResult struct {
	Status    order.Status
	NewStatus *order.Status
}

// RefreshOrderStatusCommandHandler runs the status synchronizer for one
// order. The derived promotion is itself a mutation: it is persisted through
// the same conditional write path as every other status change, guarded by
// the version the handler loaded inside the transaction. A conflict means
// another writer touched the order first; the refresh is simply retried on
// the next sweep or child event.
type RefreshOrderStatusCommandHandler struct {
	uowFactory   RefreshUoWFactory
	synchronizer services.StatusSynchronizer
	publisher    StatusChangePublisher
}

// NewRefreshOrderStatusCommandHandler creates a handler for status refresh
// operations.
func NewRefreshOrderStatusCommandHandler(
	uowFactory RefreshUoWFactory,
	synchronizer services.StatusSynchronizer,
	publisher StatusChangePublisher,
) RefreshOrderStatusCommandHandler {
	return RefreshOrderStatusCommandHandler{
		uowFactory:   uowFactory,
		synchronizer: synchronizer,
		publisher:    publisher,
	}
}

// Handle processes the refresh command.
func (h RefreshOrderStatusCommandHandler) Handle(
	ctx context.Context,
	command RefreshOrderStatusCommand,
) (RefreshOrderStatusResult, error) {
	if err := command.Validate(); err != nil {
		return RefreshOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RefreshOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID(), command.TenantID())
	if err != nil {
		return RefreshOrderStatusResult{}, err
	}

	oldStatus := aggregate.Status()

	if !oldStatus.AwaitsChildren() {
		return RefreshOrderStatusResult{Status: oldStatus}, nil
	}

	purchaseOrders, err := uow.PurchaseOrderRepository().GetAllForOrder(ctx, command.OrderID(), command.TenantID())
	if err != nil {
		return RefreshOrderStatusResult{}, err
	}

	installTasks, err := uow.InstallTaskRepository().GetAllForOrder(ctx, command.OrderID(), command.TenantID())
	if err != nil {
		return RefreshOrderStatusResult{}, err
	}

	result := h.synchronizer.Sync(oldStatus, purchaseOrders, installTasks)
	if !result.Changed() {
		return RefreshOrderStatusResult{Status: oldStatus}, nil
	}

	loadedVersion := aggregate.Version()
	now := time.Now().UTC()

	for _, hop := range result.Hops {
		if err = aggregate.TransitionTo(hop, now); err != nil {
			return RefreshOrderStatusResult{}, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate, &loadedVersion); err != nil {
		return RefreshOrderStatusResult{}, err
	}

	if err = uow.AuditTrail().Record(ctx, statusAuditRecord(aggregate, command.ActorID(), oldStatus, now)); err != nil {
		return RefreshOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RefreshOrderStatusResult{}, err
	}

	h.publisher.Publish(ctx, aggregate, oldStatus)

	return RefreshOrderStatusResult{Status: oldStatus, NewStatus: result.NewStatus}, nil
}
