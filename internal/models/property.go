package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Property and unit inventory
type Property struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zip_code"`
	PropertyType string    `json:"property_type"` // apartment, house, condo
	TotalUnits   int       `json:"total_units"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *Property) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type Unit struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	PropertyID string    `gorm:"size:36;index" json:"property_id"`
	Property   Property  `gorm:"foreignKey:PropertyID" json:"-"`
	UnitNumber string    `gorm:"not null" json:"unit_number"`
	Floor      int       `json:"floor"`
	Bedrooms   int       `json:"bedrooms"`
	Bathrooms  int       `json:"bathrooms"`
	SquareFeet int       `json:"square_feet"`
	RentAmount int64     `json:"rent_amount"` // minor units
	Status     string    `gorm:"not null;default:'vacant'" json:"status"` // occupied, vacant, maintenance
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (u *Unit) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
