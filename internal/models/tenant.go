package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenant links a portal user account to a leased unit.
type Tenant struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	UserID          uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `gorm:"index" json:"email"`
	Phone           string    `json:"phone"`
	UnitID          string    `gorm:"size:36;index" json:"unit_id"`
	LeaseStart      time.Time `json:"lease_start"`
	LeaseEnd        time.Time `json:"lease_end"`
	RentAmount      int64     `json:"rent_amount"`      // minor units
	SecurityDeposit int64     `json:"security_deposit"` // minor units
	Status          string    `gorm:"not null;default:'active'" json:"status"`

	EmergencyContactName         string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone        string `json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Tenant) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
