package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/jumaanebey/tbd-property-management/internal/models"
)

type MaintenanceStore struct {
	DB *gorm.DB
}

func NewMaintenanceStore(db *gorm.DB) *MaintenanceStore { return &MaintenanceStore{DB: db} }

func (s *MaintenanceStore) List(ctx context.Context, tenantID string) ([]models.MaintenanceRequest, error) {
	var out []models.MaintenanceRequest
	err := s.DB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

func (s *MaintenanceStore) Create(ctx context.Context, req *models.MaintenanceRequest) error {
	return s.DB.WithContext(ctx).Create(req).Error
}

func (s *MaintenanceStore) Update(ctx context.Context, id string, updates map[string]any) error {
	return s.DB.WithContext(ctx).Model(&models.MaintenanceRequest{}).Where("id = ?", id).Updates(updates).Error
}
