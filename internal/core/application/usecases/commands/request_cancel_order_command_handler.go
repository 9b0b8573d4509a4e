package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/change"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// CancelFlowCode identifies the approval flow for order cancellations.
const CancelFlowCode = "ORDER_CANCEL"

// CancelOutcome tells the caller which branch the cancellation request took.
type CancelOutcome string

const (
	// OutcomePendingApproval means the change request was submitted and now
	// awaits an approval decision; the order itself is untouched.
	OutcomePendingApproval CancelOutcome = "PENDING_APPROVAL"

	// OutcomeCancelled means no approval flow was configured and the order
	// was cancelled synchronously.
	OutcomeCancelled CancelOutcome = "CANCELLED"
)

// RequestCancelOrderResult is returned after a cancellation request.
// ApprovalID is set only on the PENDING_APPROVAL branch.
type RequestCancelOrderResult struct {
	Outcome    CancelOutcome
	ChangeID   kernel.UUID
	ApprovalID string
}

// RequestCancelOrderCommandHandler opens a cancellation for an order.
//
// The request is only accepted from the externally configured allow-list of
// cancelable statuses, a stricter policy than the raw transition table. The
// handler files a PENDING OrderChange, submits it for approval and branches
// on the result: an approval instance leaves the order untouched, a missing
// flow configuration executes the cancellation synchronously in a single
// transaction, and any other submission failure propagates while the change
// request stays PENDING for a manual retry.
type RequestCancelOrderCommandHandler struct {
	uowFactory         CancelUoWFactory
	approvalService    ports.ApprovalService
	publisher          StatusChangePublisher
	cancelableStatuses map[order.Status]bool
}

// NewRequestCancelOrderCommandHandler creates a handler for cancellation
// requests. cancelableStatuses is the allow-list of statuses from which a
// request may be opened.
func NewRequestCancelOrderCommandHandler(
	uowFactory CancelUoWFactory,
	approvalService ports.ApprovalService,
	publisher StatusChangePublisher,
	cancelableStatuses []order.Status,
) RequestCancelOrderCommandHandler {
	allowed := make(map[order.Status]bool, len(cancelableStatuses))
	for _, status := range cancelableStatuses {
		allowed[status] = true
	}
	return RequestCancelOrderCommandHandler{
		uowFactory:         uowFactory,
		approvalService:    approvalService,
		publisher:          publisher,
		cancelableStatuses: allowed,
	}
}

// Handle processes the cancellation request.
func (h RequestCancelOrderCommandHandler) Handle(
	ctx context.Context,
	command RequestCancelOrderCommand,
) (RequestCancelOrderResult, error) {
	if err := command.Validate(); err != nil {
		return RequestCancelOrderResult{}, err
	}

	changeRequest, totalAmount, err := h.fileChangeRequest(ctx, command)
	if err != nil {
		return RequestCancelOrderResult{}, err
	}

	approvalID, err := h.approvalService.Submit(ctx, ports.ApprovalSubmission{
		FlowCode:   CancelFlowCode,
		EntityType: "order_change",
		EntityID:   changeRequest.ID().String(),
		TenantID:   command.TenantID().String(),
		Amount:     -totalAmount,
		Comment:    command.Reason(),
	})

	switch {
	case err == nil:
		return RequestCancelOrderResult{
			Outcome:    OutcomePendingApproval,
			ChangeID:   changeRequest.ID(),
			ApprovalID: approvalID,
		}, nil

	case errors.Is(err, ports.ErrApprovalFlowNotConfigured):
		if err = h.cancelSynchronously(ctx, command, changeRequest); err != nil {
			return RequestCancelOrderResult{}, err
		}
		return RequestCancelOrderResult{
			Outcome:  OutcomeCancelled,
			ChangeID: changeRequest.ID(),
		}, nil

	case errors.Is(err, errs.ErrApprovalSubmissionFailed):
		// The PENDING change request survives for a manual retry.
		return RequestCancelOrderResult{}, err

	default:
		return RequestCancelOrderResult{}, errs.NewApprovalSubmissionFailedError(CancelFlowCode, err)
	}
}

// fileChangeRequest persists the PENDING change request with before/after
// snapshots and audits the request itself.
func (h RequestCancelOrderCommandHandler) fileChangeRequest(
	ctx context.Context,
	command RequestCancelOrderCommand,
) (*change.OrderChange, float64, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID(), command.TenantID())
	if err != nil {
		return nil, 0, err
	}

	if !h.cancelableStatuses[aggregate.Status()] {
		return nil, 0, errs.NewInvalidOperationError("request cancel",
			fmt.Sprintf("order status %s is not in the cancelable set", aggregate.Status()))
	}

	now := time.Now().UTC()
	reason := command.Reason()
	if command.Remark() != "" {
		reason = fmt.Sprintf("%s: %s", command.Reason(), command.Remark())
	}

	changeRequest, err := change.NewOrderChange(
		kernel.NewUUID(),
		command.TenantID(),
		command.OrderID(),
		change.TypeCancel,
		reason,
		-aggregate.TotalAmount(),
		statusValues(aggregate.Status()),
		statusValues(order.Cancelled),
		command.ActorID(),
		now,
	)
	if err != nil {
		return nil, 0, err
	}

	if err = uow.OrderChangeRepository().Add(ctx, changeRequest); err != nil {
		return nil, 0, err
	}

	if err = uow.AuditTrail().Record(ctx, ports.AuditRecord{
		TenantID:      command.TenantID().String(),
		UserID:        command.ActorID(),
		TableName:     "order_changes",
		RecordID:      changeRequest.ID().String(),
		Action:        "INSERT",
		OldValues:     "",
		NewValues:     statusValues(aggregate.Status()),
		ChangedFields: []string{"status"},
		OccurredAt:    now,
	}); err != nil {
		return nil, 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, 0, err
	}

	return changeRequest, aggregate.TotalAmount(), nil
}

// cancelSynchronously executes the fallback path in a single transaction:
// the order moves to CANCELLED and the change request is approved by the
// requesting actor. A partial write of either row is an invariant violation,
// so both updates share one transaction.
func (h RequestCancelOrderCommandHandler) cancelSynchronously(
	ctx context.Context,
	command RequestCancelOrderCommand,
	changeRequest *change.OrderChange,
) error {
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

	oldStatus := aggregate.Status()
	now := time.Now().UTC()

	if err = aggregate.Cancel(now); err != nil {
		return err
	}

	loadedVersion := aggregate.Version() - 1
	if err = orderRepo.Update(ctx, aggregate, &loadedVersion); err != nil {
		return err
	}

	if err = changeRequest.Approve(command.ActorID(), now); err != nil {
		return err
	}

	if err = uow.OrderChangeRepository().Update(ctx, changeRequest); err != nil {
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
