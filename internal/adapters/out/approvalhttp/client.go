// Package approvalhttp talks to the external approval system over HTTP.
package approvalhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// flowNotConfiguredCode is the error code the approval system answers with
// when the requested flow is not defined or disabled for the tenant.
const flowNotConfiguredCode = "FLOW_NOT_CONFIGURED"

// Client implements ports.ApprovalService against the approval system's REST
// API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an approval client for the given base URL. A nil
// httpClient gets a default with a 10 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

type submitRequest struct {
	FlowCode   string  `json:"flowCode"`
	EntityType string  `json:"entityType"`
	EntityID   string  `json:"entityId"`
	TenantID   string  `json:"tenantId"`
	Amount     float64 `json:"amount"`
	Comment    string  `json:"comment"`
}

type submitResponse struct {
	Success    bool   `json:"success"`
	ApprovalID string `json:"approvalId"`
	ErrorCode  string `json:"errorCode"`
	Error      string `json:"error"`
}

// Submit opens an approval instance. A flow the approval system reports as
// not configured maps to ports.ErrApprovalFlowNotConfigured so the caller can
// take its fallback path; every other failure is an
// errs.ApprovalSubmissionFailedError.
func (c *Client) Submit(ctx context.Context, submission ports.ApprovalSubmission) (string, error) {
	payload, err := json.Marshal(submitRequest{
		FlowCode:   submission.FlowCode,
		EntityType: submission.EntityType,
		EntityID:   submission.EntityID,
		TenantID:   submission.TenantID,
		Amount:     submission.Amount,
		Comment:    submission.Comment,
	})
	if err != nil {
		return "", errs.NewApprovalSubmissionFailedError(submission.FlowCode, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/approvals", bytes.NewReader(payload))
	if err != nil {
		return "", errs.NewApprovalSubmissionFailedError(submission.FlowCode, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.NewApprovalSubmissionFailedError(submission.FlowCode, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", errs.NewApprovalSubmissionFailedError(submission.FlowCode, err)
	}

	var decoded submitResponse
	if err = json.Unmarshal(body, &decoded); err != nil {
		return "", errs.NewApprovalSubmissionFailedError(submission.FlowCode,
			fmt.Errorf("undecodable response (status %d): %w", resp.StatusCode, err))
	}

	if decoded.ErrorCode == flowNotConfiguredCode {
		return "", ports.ErrApprovalFlowNotConfigured
	}

	if resp.StatusCode != http.StatusOK || !decoded.Success {
		return "", errs.NewApprovalSubmissionFailedError(submission.FlowCode,
			fmt.Errorf("status %d: %s", resp.StatusCode, decoded.Error))
	}

	return decoded.ApprovalID, nil
}
