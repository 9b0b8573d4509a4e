package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// ConfirmProductionCommandHandler moves an order into PENDING_PRODUCTION.
//
// The payment gate applies on top of the transition table: credit-settled
// orders may enter production on account, everything else must be fully
// paid first. After the transition commits the split-routing collaborator is
// triggered to raise supplier purchase orders; its failure is logged and
// reported out of band, never by reverting the committed transition.
type ConfirmProductionCommandHandler struct {
	uowFactory   OrderUoWFactory
	splitRouting ports.SplitRouting
	publisher    StatusChangePublisher
	log          *slog.Logger
}

// NewConfirmProductionCommandHandler creates a handler for production
// confirmation.
func NewConfirmProductionCommandHandler(
	uowFactory OrderUoWFactory,
	splitRouting ports.SplitRouting,
	publisher StatusChangePublisher,
	log *slog.Logger,
) ConfirmProductionCommandHandler {
	if log == nil {
		log = slog.Default()
	}
	return ConfirmProductionCommandHandler{
		uowFactory:   uowFactory,
		splitRouting: splitRouting,
		publisher:    publisher,
		log:          log.With("component", "confirm-production"),
	}
}

// Handle processes the production confirmation command.
func (h ConfirmProductionCommandHandler) Handle(ctx context.Context, command ConfirmProductionCommand) error {
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
		return errs.NewInvalidOperationError("confirm production",
			fmt.Sprintf("order has an outstanding balance of %.2f and is not credit settled",
				aggregate.BalanceAmount()))
	}

	oldStatus := aggregate.Status()
	now := time.Now().UTC()

	if err = aggregate.TransitionTo(order.PendingProduction, now); err != nil {
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

	if h.splitRouting != nil {
		if err = h.splitRouting.TriggerSplit(ctx, aggregate.ID(), aggregate.TenantID()); err != nil {
			h.log.Warn("split routing trigger failed after production confirmation",
				"orderId", aggregate.ID().String(),
				"error", err)
		}
	}

	h.publisher.Publish(ctx, aggregate, oldStatus)

	return nil
}
