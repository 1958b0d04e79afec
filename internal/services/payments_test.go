package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jumaanebey/tbd-property-management/internal/gateway"
	"github.com/jumaanebey/tbd-property-management/internal/models"
)

type stubCharger struct {
	result  gateway.ChargeResult
	err     error
	charges int
}

func (c *stubCharger) Charge(_ context.Context, _ int64, _, _ string) (gateway.ChargeResult, error) {
	c.charges++
	return c.result, c.err
}

func setupPaymentTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Tenant{}, &models.Payment{}, &models.Notification{}, &models.AuditLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedPaymentFixtures(t *testing.T, db *gorm.DB) (models.Tenant, models.Payment) {
	t.Helper()
	u := models.User{Email: "pay@test", Password: "hash"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("user: %v", err)
	}
	tn := models.Tenant{UserID: u.ID, FirstName: "John", LastName: "Smith", RentAmount: 420000}
	if err := db.Create(&tn).Error; err != nil {
		t.Fatalf("tenant: %v", err)
	}
	p := models.Payment{
		TenantID: tn.ID,
		Amount:   420000,
		DueDate:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:   models.PaymentStatusPending,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("payment: %v", err)
	}
	return tn, p
}

func fixedNow() time.Time { return time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC) }

func TestProcessPaymentSettles(t *testing.T) {
	db := setupPaymentTestDB(t)
	tn, p := seedPaymentFixtures(t, db)
	charger := &stubCharger{result: gateway.ChargeResult{Success: true, TransactionID: "txn_1"}}
	svc := NewPaymentService(db, charger, nil)
	svc.Now = fixedNow

	out, violations, err := svc.ProcessPayment(context.Background(), tn, PaymentRequest{
		PaymentID: p.ID, Amount: 420000, Method: models.MethodBankTransfer,
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if !violations.Empty() {
		t.Fatalf("unexpected violations: %v", violations)
	}
	if out.Payment.Status != models.PaymentStatusPaid {
		t.Fatalf("status: %s", out.Payment.Status)
	}
	if out.TransactionID != "txn_1" || out.Payment.TransactionID != "txn_1" {
		t.Fatalf("transaction id not recorded: %+v", out)
	}
	if out.Payment.PaidDate == nil {
		t.Fatalf("paid date not recorded")
	}
	if out.Receipt == "" {
		t.Fatalf("expected receipt text")
	}
	if charger.charges != 1 {
		t.Fatalf("expected 1 charge got %d", charger.charges)
	}

	// follow-up records
	var notifCount, auditCount int64
	db.Model(&models.Notification{}).Where("tenant_id = ?", tn.ID).Count(&notifCount)
	db.Model(&models.AuditLog{}).Where("entity_id = ?", p.ID).Count(&auditCount)
	if notifCount != 1 || auditCount != 1 {
		t.Fatalf("expected notification and audit entry, got %d/%d", notifCount, auditCount)
	}
}

func TestProcessPaymentPartialAmount(t *testing.T) {
	db := setupPaymentTestDB(t)
	tn, p := seedPaymentFixtures(t, db)
	charger := &stubCharger{result: gateway.ChargeResult{Success: true, TransactionID: "txn_2"}}
	svc := NewPaymentService(db, charger, nil)
	svc.Now = fixedNow

	out, violations, err := svc.ProcessPayment(context.Background(), tn, PaymentRequest{
		PaymentID: p.ID, Amount: 210000, Method: models.MethodCheck,
	})
	if err != nil || !violations.Empty() {
		t.Fatalf("process: %v %v", err, violations)
	}
	if out.Payment.Status != models.PaymentStatusPartial {
		t.Fatalf("expected partial got %s", out.Payment.Status)
	}
	// only full settlement records a paid date
	if out.Payment.PaidDate != nil {
		t.Fatalf("partial charge must not set paid_date, got %v", out.Payment.PaidDate)
	}
	var stored models.Payment
	if err := db.First(&stored, "id = ?", p.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.PaidDate != nil {
		t.Fatalf("stored partial payment has paid_date %v", stored.PaidDate)
	}
	if stored.TransactionID != "txn_2" {
		t.Fatalf("expected transaction id recorded, got %q", stored.TransactionID)
	}
}

func TestProcessPaymentValidationFailures(t *testing.T) {
	db := setupPaymentTestDB(t)
	tn, p := seedPaymentFixtures(t, db)
	charger := &stubCharger{result: gateway.ChargeResult{Success: true, TransactionID: "txn_3"}}
	svc := NewPaymentService(db, charger, nil)
	svc.Now = fixedNow

	_, violations, err := svc.ProcessPayment(context.Background(), tn, PaymentRequest{
		PaymentID: p.ID,
		Amount:    700000, // above 150% of due
		Method:    models.MethodCreditCard,
		Card:      &CardDetails{Number: "4242424242424241", Expiry: "01/20", CVV: "12"},
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	for _, field := range []string{"amount", "card.number", "card.expiry", "card.cvv", "method_token"} {
		if violations[field] == "" {
			t.Fatalf("expected violation for %s: %v", field, violations)
		}
	}
	if charger.charges != 0 {
		t.Fatalf("charger must not be called on validation failure")
	}
}

func TestProcessPaymentDeclined(t *testing.T) {
	db := setupPaymentTestDB(t)
	tn, p := seedPaymentFixtures(t, db)
	charger := &stubCharger{result: gateway.ChargeResult{Success: false, Err: "card declined"}}
	svc := NewPaymentService(db, charger, nil)
	svc.Now = fixedNow

	_, _, err := svc.ProcessPayment(context.Background(), tn, PaymentRequest{
		PaymentID: p.ID, Amount: 420000, Method: models.MethodCash,
	})
	if !errors.Is(err, ErrChargeDeclined) {
		t.Fatalf("expected ErrChargeDeclined got %v", err)
	}
	var got models.Payment
	if err := db.First(&got, "id = ?", p.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != models.PaymentStatusPending {
		t.Fatalf("declined charge must not change status: %s", got.Status)
	}
}

func TestProcessPaymentOwnershipAndReplay(t *testing.T) {
	db := setupPaymentTestDB(t)
	tn, p := seedPaymentFixtures(t, db)
	charger := &stubCharger{result: gateway.ChargeResult{Success: true, TransactionID: "txn_4"}}
	svc := NewPaymentService(db, charger, nil)
	svc.Now = fixedNow

	other := models.Tenant{UserID: tn.UserID + 100, FirstName: "Eve"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("other tenant: %v", err)
	}
	if _, _, err := svc.ProcessPayment(context.Background(), other, PaymentRequest{PaymentID: p.ID, Amount: 420000, Method: models.MethodCash}); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound got %v", err)
	}

	if _, _, err := svc.ProcessPayment(context.Background(), tn, PaymentRequest{PaymentID: p.ID, Amount: 420000, Method: models.MethodCash}); err != nil {
		t.Fatalf("first settle: %v", err)
	}
	if _, _, err := svc.ProcessPayment(context.Background(), tn, PaymentRequest{PaymentID: p.ID, Amount: 420000, Method: models.MethodCash}); !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("expected ErrAlreadyPaid got %v", err)
	}
}

func TestWithStatusesDerivesOverdue(t *testing.T) {
	db := setupPaymentTestDB(t)
	_, p := seedPaymentFixtures(t, db)
	svc := NewPaymentService(db, &stubCharger{}, nil)

	decorated := svc.WithStatuses([]models.Payment{p}, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))
	if decorated[0].Status != models.PaymentStatusOverdue {
		t.Fatalf("expected overdue got %s", decorated[0].Status)
	}
	if decorated[0].LateFees != 21000 {
		t.Fatalf("late fees: %d", decorated[0].LateFees)
	}
	// input slice untouched
	if p.Status != models.PaymentStatusPending || p.LateFees != 0 {
		t.Fatalf("input mutated: %+v", p)
	}
}
