package ports

import (
	"context"
	"time"
)

// AuditRecord describes a single audited mutation. OldValues and NewValues
// hold JSON documents of the touched fields.
type AuditRecord struct {
	TenantID      string
	UserID        string
	TableName     string
	RecordID      string
	Action        string
	OldValues     string
	NewValues     string
	ChangedFields []string
	OccurredAt    time.Time
}

// AuditTrail records who changed what. Implementations bound to a unit of
// work write within its transaction so the audit row commits together with
// the mutation it describes; callers treat a failed audit write on the
// post-commit path as non-fatal.
type AuditTrail interface {
	Record(ctx context.Context, record AuditRecord) error
}
