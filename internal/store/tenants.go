package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/jumaanebey/tbd-property-management/internal/models"
)

type TenantStore struct {
	DB *gorm.DB
}

func NewTenantStore(db *gorm.DB) *TenantStore { return &TenantStore{DB: db} }

// ByUserID resolves the tenant record behind a portal user account.
func (s *TenantStore) ByUserID(ctx context.Context, userID uint) (models.Tenant, error) {
	var t models.Tenant
	err := s.DB.WithContext(ctx).First(&t, "user_id = ?", userID).Error
	return t, err
}

// UpdateProfile applies the tenant-editable profile fields only; lease
// terms and amounts stay under management control.
func (s *TenantStore) UpdateProfile(ctx context.Context, tenantID string, updates map[string]any) error {
	allowed := map[string]bool{
		"first_name": true, "last_name": true, "email": true, "phone": true,
		"emergency_contact_name": true, "emergency_contact_phone": true,
		"emergency_contact_relationship": true,
	}
	filtered := map[string]any{}
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	return s.DB.WithContext(ctx).Model(&models.Tenant{}).Where("id = ?", tenantID).Updates(filtered).Error
}
