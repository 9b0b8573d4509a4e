package commands

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/order"
)

// HaltOrderResult is returned to the caller after a successful halt.
type HaltOrderResult struct {
	OrderNo  string
	Snapshot order.PauseReason
}

// HaltOrderCommandHandler suspends an in-flight order. The current status is
// snapshotted into the pause reason so ResumeOrderCommandHandler can restore
// it, and the write goes through the optimistic concurrency guard.
type HaltOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  StatusChangePublisher
}

// NewHaltOrderCommandHandler creates a handler for halt operations.
func NewHaltOrderCommandHandler(uowFactory OrderUoWFactory, publisher StatusChangePublisher) HaltOrderCommandHandler {
	return HaltOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the halt command. It loads the order, applies the halt
// through the aggregate, persists it conditionally against the caller's
// expected version and audits the transition in the same transaction.
func (h HaltOrderCommandHandler) Handle(ctx context.Context, command HaltOrderCommand) (HaltOrderResult, error) {
	if err := command.Validate(); err != nil {
		return HaltOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return HaltOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID(), command.TenantID())
	if err != nil {
		return HaltOrderResult{}, err
	}

	oldStatus := aggregate.Status()
	now := time.Now().UTC()

	reason := order.NewPauseReason(command.ReasonCode(), command.Remark())
	if err = aggregate.Halt(reason, now); err != nil {
		return HaltOrderResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate, command.ExpectedVersion()); err != nil {
		return HaltOrderResult{}, err
	}

	if err = uow.AuditTrail().Record(ctx, statusAuditRecord(aggregate, command.ActorID(), oldStatus, now)); err != nil {
		return HaltOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return HaltOrderResult{}, err
	}

	h.publisher.Publish(ctx, aggregate, oldStatus)

	return HaltOrderResult{
		OrderNo:  aggregate.OrderNo(),
		Snapshot: *aggregate.PauseReason(),
	}, nil
}
