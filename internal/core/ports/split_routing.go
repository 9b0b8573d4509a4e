package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
)

// SplitRouting is the downstream collaborator that splits a confirmed order
// into supplier-specific purchase orders. It is invoked after the status
// transition has committed; a failure here is reported but never reverts the
// transition.
type SplitRouting interface {
	TriggerSplit(ctx context.Context, orderID kernel.UUID, tenantID kernel.UUID) error
}
