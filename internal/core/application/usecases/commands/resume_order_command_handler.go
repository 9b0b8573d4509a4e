package commands

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/order"
)

// ResumeOrderResult is returned to the caller after a successful resume.
type ResumeOrderResult struct {
	OrderNo        string
	RestoredStatus order.Status
}

// ResumeOrderCommandHandler restores a halted order to its pre-halt status.
// The restored status comes from the halt snapshot; a missing or unusable
// snapshot fails the operation rather than guessing a status.
type ResumeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  StatusChangePublisher
}

// NewResumeOrderCommandHandler creates a handler for resume operations.
func NewResumeOrderCommandHandler(uowFactory OrderUoWFactory, publisher StatusChangePublisher) ResumeOrderCommandHandler {
	return ResumeOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the resume command.
func (h ResumeOrderCommandHandler) Handle(ctx context.Context, command ResumeOrderCommand) (ResumeOrderResult, error) {
	if err := command.Validate(); err != nil {
		return ResumeOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ResumeOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID(), command.TenantID())
	if err != nil {
		return ResumeOrderResult{}, err
	}

	oldStatus := aggregate.Status()
	now := time.Now().UTC()

	restored, err := aggregate.Resume(now)
	if err != nil {
		return ResumeOrderResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate, command.ExpectedVersion()); err != nil {
		return ResumeOrderResult{}, err
	}

	if err = uow.AuditTrail().Record(ctx, statusAuditRecord(aggregate, command.ActorID(), oldStatus, now)); err != nil {
		return ResumeOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ResumeOrderResult{}, err
	}

	h.publisher.Publish(ctx, aggregate, oldStatus)

	return ResumeOrderResult{
		OrderNo:        aggregate.OrderNo(),
		RestoredStatus: restored,
	}, nil
}
