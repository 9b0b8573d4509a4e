// Package installation holds the read-only view of install tasks owned by
// the field service subsystem. The lifecycle engine only ever reads their
// status to derive the parent order's status; it never writes them.
package installation

import (
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// Status is the field-service-owned install task status.
type Status string

const (
	StatusPendingDispatch Status = "PENDING_DISPATCH"
	StatusDispatching     Status = "DISPATCHING"
	StatusPendingAccept   Status = "PENDING_ACCEPT"
	StatusPendingVisit    Status = "PENDING_VISIT"
	StatusInProgress      Status = "IN_PROGRESS"
	StatusPendingConfirm  Status = "PENDING_CONFIRM"
	StatusCompleted       Status = "COMPLETED"
	StatusCancelled       Status = "CANCELLED"
)

// Validate checks membership in the install task status enum.
func (s Status) Validate() error {
	switch s {
	case StatusPendingDispatch, StatusDispatching, StatusPendingAccept,
		StatusPendingVisit, StatusInProgress, StatusPendingConfirm,
		StatusCompleted, StatusCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("install task status is invalid",
			fmt.Errorf("%q is not a valid install task status", string(s)))
	}
}

// IsCompleted reports whether the task finished successfully.
func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

// IsActive reports whether a crew is actively working the task: dispatched
// or on site, but not yet done. Tasks in this state hold the parent order at
// PENDING_INSTALL.
func (s Status) IsActive() bool {
	switch s {
	case StatusDispatching, StatusPendingAccept, StatusPendingVisit,
		StatusInProgress, StatusPendingConfirm:
		return true
	default:
		return false
	}
}

// InstallTask is a read-only projection of a field service install task,
// reduced to the fields the status synchronizer needs.
type InstallTask struct {
	id      kernel.UUID
	orderID kernel.UUID
	status  Status
}

// NewInstallTask creates a read view of an install task.
func NewInstallTask(id kernel.UUID, orderID kernel.UUID, status Status) (*InstallTask, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return &InstallTask{id: id, orderID: orderID, status: status}, nil
}

// ID returns the task's identifier.
func (t *InstallTask) ID() kernel.UUID {
	return t.id
}

// OrderID returns the parent sales order's identifier.
func (t *InstallTask) OrderID() kernel.UUID {
	return t.orderID
}

// Status returns the field-service-owned status.
func (t *InstallTask) Status() Status {
	return t.status
}
