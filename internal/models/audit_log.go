package models

import "time"

// AuditLog records ledger mutations for operational traceability.
type AuditLog struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Action       string    `gorm:"not null" json:"action"`
	ResourceType string    `gorm:"not null" json:"resource_type"`
	ResourceID   string    `gorm:"type:uuid" json:"resource_id"`
	IPAddress    string    `json:"ip_address"`
	Details      string    `json:"details,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
