package repository

import (
	"context"
	"time"

	"traveldesk-admin/internal/domain/entity"
	"traveldesk-admin/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAuditRepository implements the AuditRepository interface
type GormAuditRepository struct {
	db *gorm.DB
}

// AuditRecords GORM model for database mapping
type AuditRecords struct {
	ID         uint   `gorm:"primaryKey"`
	Actor      string `gorm:"column:actor"`
	Action     string `gorm:"column:action"`
	Collection string `gorm:"column:collection"`
	DocID      string `gorm:"column:doc_id;index"`
	Detail     string `gorm:"column:detail"`
	CreatedAt  time.Time
}

// TableName overrides the default table name
func (AuditRecords) TableName() string {
	return "admin_audit_records"
}

// NewGormAuditRepository creates a new GORM audit repository
func NewGormAuditRepository(db *gorm.DB) (repository.AuditRepository, error) {
	if err := db.AutoMigrate(&AuditRecords{}); err != nil {
		return nil, err
	}
	return &GormAuditRepository{
		db: db,
	}, nil
}

// Record appends one mutation to the audit trail
func (r *GormAuditRepository) Record(ctx context.Context, rec *entity.AuditRecord) error {
	row := AuditRecords{
		Actor:      rec.Actor,
		Action:     rec.Action,
		Collection: rec.Collection,
		DocID:      rec.DocID,
		Detail:     rec.Detail,
	}
	result := r.db.WithContext(ctx).Create(&row)
	if result.Error != nil {
		return result.Error
	}
	rec.ID = row.ID
	rec.CreatedAt = row.CreatedAt
	return nil
}

// Recent returns the latest audit entries, newest first
func (r *GormAuditRepository) Recent(ctx context.Context, limit int) ([]entity.AuditRecord, error) {
	var rows []AuditRecords
	result := r.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	// Convert GORM models to domain entities
	records := make([]entity.AuditRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, entity.AuditRecord{
			ID:         row.ID,
			Actor:      row.Actor,
			Action:     row.Action,
			Collection: row.Collection,
			DocID:      row.DocID,
			Detail:     row.Detail,
			CreatedAt:  row.CreatedAt,
		})
	}
	return records, nil
}
