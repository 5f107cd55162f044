package repository

import (
	"context"

	"traveldesk-admin/internal/domain/entity"
)

// AuditRepository defines the interface for the admin mutation audit trail
type AuditRepository interface {
	Record(ctx context.Context, rec *entity.AuditRecord) error
	Recent(ctx context.Context, limit int) ([]entity.AuditRecord, error)
}
