// internal/domain/entity/audit.go
package entity

import "time"

// AuditRecord is one admin mutation written to the audit trail
type AuditRecord struct {
	ID         uint      `json:"id"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"` // create|update|delete
	Collection string    `json:"collection"`
	DocID      string    `json:"docId"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
