package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MaintenanceStatusPending    = "pending"
	MaintenanceStatusAssigned   = "assigned"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusCompleted  = "completed"
	MaintenanceStatusCancelled  = "cancelled"
)

// MaintenanceRequest filed by a tenant against their unit.
type MaintenanceRequest struct {
	ID                  string     `gorm:"primaryKey;size:36" json:"id"`
	TenantID            string     `gorm:"not null;index" json:"tenant_id"`
	UnitID              string     `gorm:"size:36" json:"unit_id"`
	Title               string     `gorm:"not null" json:"title"`
	Description         string     `json:"description"`
	Category            string     `json:"category"` // plumbing, electrical, hvac, appliance, structural, pest, other
	Priority            string     `gorm:"not null;default:'medium'" json:"priority"` // low, medium, high, emergency
	Status              string     `gorm:"not null;default:'pending'" json:"status"`
	AssignedTo          string     `json:"assigned_to,omitempty"`
	EstimatedCompletion *time.Time `json:"estimated_completion,omitempty"`
	ActualCompletion    *time.Time `json:"actual_completion,omitempty"`
	Cost                int64      `json:"cost,omitempty"` // minor units
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (m *MaintenanceRequest) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
