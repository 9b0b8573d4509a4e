package commands

import (
	"context"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

// RequestDeliveryCommandHandler moves an order from IN_PRODUCTION into
// PENDING_DELIVERY. The same payment gate as production confirmation
// applies: goods leave for the customer only on a settled balance or a
// credit account.
type RequestDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  StatusChangePublisher
}

// NewRequestDeliveryCommandHandler creates a handler for delivery requests.
func NewRequestDeliveryCommandHandler(uowFactory OrderUoWFactory, publisher StatusChangePublisher) RequestDeliveryCommandHandler {
	return RequestDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delivery request command.
func (h RequestDeliveryCommandHandler) Handle(ctx context.Context, command RequestDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID(), command.TenantID())
	if err != nil {
		return err
	}

	if aggregate.SettlementType() != order.SettlementCredit && !aggregate.IsFullyPaid() {
		return errs.NewInvalidOperationError("request delivery",
			fmt.Sprintf("order has an outstanding balance of %.2f and is not credit settled",
				aggregate.BalanceAmount()))
	}

	oldStatus := aggregate.Status()
	now := time.Now().UTC()

	if err = aggregate.TransitionTo(order.PendingDelivery, now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, command.ExpectedVersion()); err != nil {
		return err
	}

	if err = uow.AuditTrail().Record(ctx, statusAuditRecord(aggregate, command.ActorID(), oldStatus, now)); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, aggregate, oldStatus)

	return nil
}
