// Package routinghttp calls the procurement service's order-split endpoint.
package routinghttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"orderflow/internal/core/domain/model/kernel"
)

// Client implements ports.SplitRouting against the procurement service.
// Callers invoke it after the production transition has committed, so a
// failure here is reported back but never reverts anything.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a split-routing client for the given base URL. A nil
// httpClient gets a default with a 10 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

type splitRequest struct {
	OrderID  string `json:"orderId"`
	TenantID string `json:"tenantId"`
}

// TriggerSplit asks procurement to split the order into supplier-specific
// purchase orders.
func (c *Client) TriggerSplit(ctx context.Context, orderID kernel.UUID, tenantID kernel.UUID) error {
	payload, err := json.Marshal(splitRequest{
		OrderID:  orderID.String(),
		TenantID: tenantID.String(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/orders/split", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("split routing rejected order %s: status %d", orderID.String(), resp.StatusCode)
	}

	return nil
}
