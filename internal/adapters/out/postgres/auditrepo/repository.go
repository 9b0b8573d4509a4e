// Package auditrepo writes audit trail rows. Bound to a unit of work it
// shares the transaction of the mutation it describes, so the two commit or
// roll back together.
package auditrepo

import (
	"context"
	"strings"
	"time"

	"orderflow/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogDTO is one audited mutation.
type AuditLogDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID      string    `gorm:"index"`
	UserID        string
	AuditedTable  string `gorm:"column:table_name;index"`
	RecordID      string `gorm:"index"`
	Action        string
	OldValues     string
	NewValues     string
	ChangedFields string
	OccurredAt    time.Time
}

// TableName overrides GORM's default naming to use "audit_logs".
func (AuditLogDTO) TableName() string {
	return "audit_logs"
}

// GormAuditTrail implements ports.AuditTrail using GORM.
type GormAuditTrail struct {
	db *gorm.DB
}

// NewGormAuditTrail creates a new GORM audit trail writer.
func NewGormAuditTrail(db *gorm.DB) *GormAuditTrail {
	return &GormAuditTrail{db: db}
}

// Record inserts one audit row.
func (t *GormAuditTrail) Record(ctx context.Context, record ports.AuditRecord) error {
	dto := AuditLogDTO{
		ID:            uuid.New(),
		TenantID:      record.TenantID,
		UserID:        record.UserID,
		AuditedTable:  record.TableName,
		RecordID:      record.RecordID,
		Action:        record.Action,
		OldValues:     record.OldValues,
		NewValues:     record.NewValues,
		ChangedFields: strings.Join(record.ChangedFields, ","),
		OccurredAt:    record.OccurredAt,
	}

	return t.db.WithContext(ctx).Create(&dto).Error
}
