package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jumaanebey/tbd-property-management/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Tenant{}, &models.Payment{}, &models.MaintenanceRequest{}, &models.Document{}, &models.Notification{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedTenant(t *testing.T, db *gorm.DB) models.Tenant {
	t.Helper()
	u := models.User{Email: "tenant@test", Password: "hash"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("user: %v", err)
	}
	tn := models.Tenant{UserID: u.ID, FirstName: "John", LastName: "Smith", Email: "tenant@test", RentAmount: 420000}
	if err := db.Create(&tn).Error; err != nil {
		t.Fatalf("tenant: %v", err)
	}
	return tn
}

func TestPaymentStoreCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	tn := seedTenant(t, db)
	ps := NewPaymentStore(db)
	ctx := context.Background()

	due := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		p := models.Payment{TenantID: tn.ID, Amount: 420000, DueDate: due.AddDate(0, i, 0), Status: models.PaymentStatusPending}
		if err := ps.Create(ctx, &p); err != nil {
			t.Fatalf("create: %v", err)
		}
		if p.ID == "" {
			t.Fatalf("expected generated id")
		}
	}

	got, err := ps.GetPayments(ctx, tn.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 payments got %d", len(got))
	}
	// most recent due date first
	if !got[0].DueDate.After(got[2].DueDate) {
		t.Fatalf("expected descending due dates: %v then %v", got[0].DueDate, got[2].DueDate)
	}
}

func TestPaymentStoreUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	tn := seedTenant(t, db)
	ps := NewPaymentStore(db)
	ctx := context.Background()

	p := models.Payment{TenantID: tn.ID, Amount: 420000, DueDate: time.Now(), Status: models.PaymentStatusPending}
	if err := ps.Create(ctx, &p); err != nil {
		t.Fatalf("create: %v", err)
	}
	paid := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	if err := ps.UpdateStatus(ctx, p.ID, models.PaymentStatusPaid, &paid, "txn_42"); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := ps.ByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("byid: %v", err)
	}
	if got.Status != models.PaymentStatusPaid || got.TransactionID != "txn_42" {
		t.Fatalf("unexpected payment: %+v", got)
	}
	if got.PaidDate == nil || !got.PaidDate.Equal(paid) {
		t.Fatalf("paid date not recorded: %+v", got.PaidDate)
	}
}

func TestTenantStoreProfileUpdateFiltersFields(t *testing.T) {
	db := setupTestDB(t)
	tn := seedTenant(t, db)
	ts := NewTenantStore(db)
	ctx := context.Background()

	err := ts.UpdateProfile(ctx, tn.ID, map[string]any{
		"phone":       "(555) 123-4567",
		"rent_amount": 1, // not tenant-editable
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := ts.ByUserID(ctx, tn.UserID)
	if err != nil {
		t.Fatalf("byuser: %v", err)
	}
	if got.Phone != "(555) 123-4567" {
		t.Fatalf("phone not updated: %q", got.Phone)
	}
	if got.RentAmount != 420000 {
		t.Fatalf("rent amount should be untouched, got %d", got.RentAmount)
	}
}

func TestNotificationStoreMarkRead(t *testing.T) {
	db := setupTestDB(t)
	tn := seedTenant(t, db)
	ns := NewNotificationStore(db)
	ctx := context.Background()

	n := models.Notification{TenantID: tn.ID, Title: "Rent due", Type: "payment"}
	if err := ns.Create(ctx, &n); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := ns.MarkRead(ctx, n.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	list, err := ns.List(ctx, tn.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || !list[0].Read {
		t.Fatalf("expected one read notification: %+v", list)
	}
}
