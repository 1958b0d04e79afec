package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/jumaanebey/tbd-property-management/internal/models"
)

const notificationPageSize = 50

type NotificationStore struct {
	DB *gorm.DB
}

func NewNotificationStore(db *gorm.DB) *NotificationStore { return &NotificationStore{DB: db} }

func (s *NotificationStore) List(ctx context.Context, tenantID string) ([]models.Notification, error) {
	var out []models.Notification
	err := s.DB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at desc").
		Limit(notificationPageSize).
		Find(&out).Error
	return out, err
}

func (s *NotificationStore) Create(ctx context.Context, n *models.Notification) error {
	return s.DB.WithContext(ctx).Create(n).Error
}

func (s *NotificationStore) MarkRead(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Model(&models.Notification{}).Where("id = ?", id).Update("read", true).Error
}
