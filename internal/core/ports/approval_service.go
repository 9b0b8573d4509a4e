package ports

import (
	"context"
	"errors"
)

// ErrApprovalFlowNotConfigured signals that no approval flow is defined or
// enabled for the requested flow code. It is the only submission failure the
// orchestrator treats specially: cancellation falls back to the synchronous
// path instead of propagating the error.
var ErrApprovalFlowNotConfigured = errors.New("approval flow not defined or disabled")

// ApprovalSubmission is the request handed to the external approval system.
type ApprovalSubmission struct {
	FlowCode   string
	EntityType string
	EntityID   string
	TenantID   string
	Amount     float64
	Comment    string
}

// ApprovalService is the contract for the external approval system.
type ApprovalService interface {
	// Submit opens an approval instance for the given submission and returns
	// its identifier. A missing flow configuration is reported as
	// ErrApprovalFlowNotConfigured; any other failure is wrapped in
	// errs.ApprovalSubmissionFailedError.
	Submit(ctx context.Context, submission ApprovalSubmission) (approvalID string, err error)
}
