package order

import (
	"encoding/json"
	"fmt"

	"orderflow/internal/pkg/errs"
)

// PauseReasonCode classifies why an order was halted.
type PauseReasonCode string

const (
	// ReasonCustomerRequest means the customer asked to suspend the order.
	ReasonCustomerRequest PauseReasonCode = "CUSTOMER_REQUEST"

	// ReasonStockShortage means a supplier cannot currently deliver.
	ReasonStockShortage PauseReasonCode = "STOCK_SHORTAGE"

	// ReasonQualityIssue means a defect was found that blocks progress.
	ReasonQualityIssue PauseReasonCode = "QUALITY_ISSUE"

	// ReasonSiteNotReady means the customer's site is not ready for work.
	ReasonSiteNotReady PauseReasonCode = "SITE_NOT_READY"

	// ReasonOther covers everything else, including legacy free-text reasons
	// that predate the structured payload.
	ReasonOther PauseReasonCode = "OTHER"
)

// Validate checks membership in the reason code enum. The empty code is
// accepted because callers may omit it and let it default to ReasonOther.
func (c PauseReasonCode) Validate() error {
	switch c {
	case "", ReasonCustomerRequest, ReasonStockShortage, ReasonQualityIssue, ReasonSiteNotReady, ReasonOther:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("pause reason is invalid",
			fmt.Errorf("%q is not a valid pause reason code", string(c)))
	}
}

// PauseReason is the structured snapshot stored while an order is halted.
// PreviousStatus records the pre-halt status so a resume can restore it
// without re-deriving it.
//
// Historically this column held either a JSON document or a bare free-text
// string; ParsePauseReason absorbs both shapes so legacy rows keep loading.
type PauseReason struct {
	Code           PauseReasonCode `json:"reason"`
	Remark         string          `json:"remark,omitempty"`
	PreviousStatus Status          `json:"previousStatus,omitempty"`
}

// NewPauseReason creates a PauseReason with the given classification and
// free-text remark. An empty code falls back to ReasonOther.
func NewPauseReason(code PauseReasonCode, remark string) PauseReason {
	if code == "" {
		code = ReasonOther
	}
	return PauseReason{Code: code, Remark: remark}
}

// Serialize renders the reason as its canonical JSON form for persistence.
func (r PauseReason) Serialize() (string, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ParsePauseReason decodes a persisted pause reason. Legacy rows that hold a
// bare string instead of JSON are mapped to ReasonOther with the raw value as
// the remark rather than surfacing a parse error.
func ParsePauseReason(raw string) PauseReason {
	if raw == "" {
		return PauseReason{Code: ReasonOther}
	}

	var reason PauseReason
	if err := json.Unmarshal([]byte(raw), &reason); err != nil {
		return PauseReason{Code: ReasonOther, Remark: raw}
	}
	if reason.Code == "" {
		reason.Code = ReasonOther
	}
	return reason
}
