package models

import "time"

// Audit logging
type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `json:"user_id"`
	EntityType string    `json:"entity_type"` // ex: "Payment", "MaintenanceRequest"
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"` // ex: "create", "update", "charge"
	Field      string    `json:"field,omitempty"`
	OldValue   string    `json:"old_value,omitempty"`
	NewValue   string    `json:"new_value,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
