package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/jumaanebey/tbd-property-management/internal/models"
)

func TestReceiptRendersPDF(t *testing.T) {
	paid := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	p := models.Payment{
		ID:            "pay_pdf_1",
		TenantID:      "t1",
		Amount:        180000,
		DueDate:       paid,
		Status:        models.PaymentStatusPaid,
		PaidDate:      &paid,
		PaymentMethod: models.MethodCreditCard,
		TransactionID: "txn_pdf_1",
	}
	body, err := Receipt(p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(body) == 0 {
		t.Fatal("empty pdf body")
	}
	if !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Fatalf("expected %%PDF header, got %q", body[:min(8, len(body))])
	}
}

func TestReceiptRendersMissingFields(t *testing.T) {
	p := models.Payment{ID: "pay_pdf_2", TenantID: "t1", Amount: 420000, DueDate: time.Now(), Status: models.PaymentStatusPending}
	body, err := Receipt(p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Fatal("expected a pdf document")
	}
}
