package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment statuses as stored. "pending" is not authoritative: the billing
// package re-derives it against the due date on every read.
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusOverdue = "overdue"
	PaymentStatusPartial = "partial"
)

const (
	MethodCreditCard   = "credit_card"
	MethodDebitCard    = "debit_card"
	MethodBankTransfer = "bank_transfer"
	MethodCheck        = "check"
	MethodCash         = "cash"
)

// Payment is one billing-period obligation of a tenant. Amount and LateFees
// are in minor currency units (cents); LateFees is recomputed on read and
// never persisted as ground truth.
type Payment struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	TenantID      string     `gorm:"not null;index" json:"tenant_id"`
	Amount        int64      `gorm:"not null" json:"amount"`
	DueDate       time.Time  `gorm:"not null" json:"due_date"`
	Status        string     `gorm:"not null;default:'pending'" json:"status"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	TransactionID string     `json:"transaction_id,omitempty"`
	LateFees      int64      `gorm:"-" json:"late_fees,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (p *Payment) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ValidMethod reports whether m is one of the accepted payment methods.
func ValidMethod(m string) bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodBankTransfer, MethodCheck, MethodCash:
		return true
	}
	return false
}
