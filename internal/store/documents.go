package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/jumaanebey/tbd-property-management/internal/models"
)

type DocumentStore struct {
	DB *gorm.DB
}

func NewDocumentStore(db *gorm.DB) *DocumentStore { return &DocumentStore{DB: db} }

func (s *DocumentStore) List(ctx context.Context, tenantID string) ([]models.Document, error) {
	var out []models.Document
	err := s.DB.WithContext(ctx).
		Where("tenant_id = ? AND status = ?", tenantID, "active").
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

func (s *DocumentStore) Create(ctx context.Context, doc *models.Document) error {
	return s.DB.WithContext(ctx).Create(doc).Error
}
