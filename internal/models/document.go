package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document metadata; file bytes live in external object storage, only the
// URL is tracked here.
type Document struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`
	TenantID   string     `gorm:"not null;index" json:"tenant_id"`
	Title      string     `gorm:"not null" json:"title"`
	Type       string     `json:"type"` // lease, notice, receipt, maintenance, other
	FileURL    string     `json:"file_url"`
	FileSize   int64      `json:"file_size"`
	MimeType   string     `json:"mime_type"`
	Status     string     `gorm:"not null;default:'active'" json:"status"` // active, archived
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	UploadedBy uint       `json:"uploaded_by"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (d *Document) BeforeCreate(_ *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
