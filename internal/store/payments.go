// Package store wraps gorm access to the portal entities. Each store
// realizes one slice of the persistence contract the services consume;
// none of them contain business logic.
package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jumaanebey/tbd-property-management/internal/models"
)

type PaymentStore struct {
	DB *gorm.DB
}

func NewPaymentStore(db *gorm.DB) *PaymentStore { return &PaymentStore{DB: db} }

// GetPayments returns a tenant's payments, most recent due date first.
func (s *PaymentStore) GetPayments(ctx context.Context, tenantID string) ([]models.Payment, error) {
	var out []models.Payment
	err := s.DB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("due_date desc").
		Find(&out).Error
	return out, err
}

// History returns payments created within the trailing number of months.
func (s *PaymentStore) History(ctx context.Context, tenantID string, months int) ([]models.Payment, error) {
	if months <= 0 {
		months = 12
	}
	since := time.Now().AddDate(0, -months, 0)
	var out []models.Payment
	err := s.DB.WithContext(ctx).
		Where("tenant_id = ? AND created_at >= ?", tenantID, since).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// ByID fetches one payment.
func (s *PaymentStore) ByID(ctx context.Context, id string) (models.Payment, error) {
	var p models.Payment
	err := s.DB.WithContext(ctx).First(&p, "id = ?", id).Error
	return p, err
}

// Create inserts a new payment obligation (billing-period start).
func (s *PaymentStore) Create(ctx context.Context, p *models.Payment) error {
	return s.DB.WithContext(ctx).Create(p).Error
}

// UpdateStatus transitions a payment's stored status, optionally recording
// the settlement date and gateway transaction id.
func (s *PaymentStore) UpdateStatus(ctx context.Context, id, status string, paidDate *time.Time, transactionID string) error {
	updates := map[string]any{"status": status}
	if paidDate != nil {
		updates["paid_date"] = *paidDate
	}
	if transactionID != "" {
		updates["transaction_id"] = transactionID
	}
	return s.DB.WithContext(ctx).Model(&models.Payment{}).Where("id = ?", id).Updates(updates).Error
}
