package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrConcurrencyConflict is the sentinel for version-guarded writes that
	// lost the race against another writer. The caller must re-read and
	// decide whether to retry; nothing in this module retries automatically.
	ErrConcurrencyConflict = errors.New("concurrency conflict")

	// ErrInvalidStateTransition is the sentinel for transitions rejected by
	// the order state machine.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrInvalidOperation is the sentinel for operations whose business
	// precondition failed even though the raw transition might be legal.
	ErrInvalidOperation = errors.New("operation is invalid")

	// ErrApprovalSubmissionFailed is the sentinel for approval submissions
	// that failed for a reason other than "flow not configured".
	ErrApprovalSubmissionFailed = errors.New("approval submission failed")
)

// ConcurrencyConflictError reports that a conditional write matched no row
// because the supplied version was stale.
type ConcurrencyConflictError struct {
	ParamName       string
	ID              any
	ExpectedVersion int64
}

// NewConcurrencyConflictError creates a ConcurrencyConflictError for the
// given record and the version the caller expected.
func NewConcurrencyConflictError(paramName string, id any, expectedVersion int64) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{ParamName: paramName, ID: id, ExpectedVersion: expectedVersion}
}

func (e *ConcurrencyConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %v was modified concurrently, expected version %d",
		ErrConcurrencyConflict, e.ParamName, e.ID, e.ExpectedVersion))
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}

// InvalidStateTransitionError reports an edge rejected by the transition
// table.
type InvalidStateTransitionError struct {
	From string
	To   string
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError for
// the rejected edge.
func NewInvalidStateTransitionError(from, to string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{From: from, To: to}
}

func (e *InvalidStateTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidStateTransition, e.From, e.To))
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// InvalidOperationError reports a failed business precondition.
type InvalidOperationError struct {
	Operation string
	Reason    string
	Cause     error
}

// NewInvalidOperationError creates an InvalidOperationError without a cause.
func NewInvalidOperationError(operation, reason string) *InvalidOperationError {
	return &InvalidOperationError{Operation: operation, Reason: reason}
}

// NewInvalidOperationErrorWithCause creates an InvalidOperationError
// wrapping an underlying cause.
func NewInvalidOperationErrorWithCause(operation, reason string, cause error) *InvalidOperationError {
	return &InvalidOperationError{Operation: operation, Reason: reason, Cause: cause}
}

func (e *InvalidOperationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s: %s (cause: %s)", ErrInvalidOperation, e.Operation, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrInvalidOperation, e.Operation, e.Reason))
}

func (e *InvalidOperationError) Unwrap() error {
	return ErrInvalidOperation
}

// ApprovalSubmissionFailedError reports an approval submission rejected for a
// reason other than a missing flow configuration.
type ApprovalSubmissionFailedError struct {
	FlowCode string
	Cause    error
}

// NewApprovalSubmissionFailedError creates an ApprovalSubmissionFailedError
// wrapping the transport or business cause.
func NewApprovalSubmissionFailedError(flowCode string, cause error) *ApprovalSubmissionFailedError {
	return &ApprovalSubmissionFailedError{FlowCode: flowCode, Cause: cause}
}

func (e *ApprovalSubmissionFailedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrApprovalSubmissionFailed, e.FlowCode, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrApprovalSubmissionFailed, e.FlowCode))
}

func (e *ApprovalSubmissionFailedError) Unwrap() error {
	return ErrApprovalSubmissionFailed
}
