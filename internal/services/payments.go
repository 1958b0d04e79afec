package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/jumaanebey/tbd-property-management/internal/billing"
	"github.com/jumaanebey/tbd-property-management/internal/events"
	"github.com/jumaanebey/tbd-property-management/internal/gateway"
	"github.com/jumaanebey/tbd-property-management/internal/metrics"
	"github.com/jumaanebey/tbd-property-management/internal/models"
	"github.com/jumaanebey/tbd-property-management/internal/store"
	"github.com/jumaanebey/tbd-property-management/validation"
)

var (
	ErrPaymentNotFound = errors.New("payment_not_found")
	ErrAlreadyPaid     = errors.New("already_paid")
	ErrChargeDeclined  = errors.New("charge_declined")
)

// CardDetails are the raw card fields as typed by the tenant. They are
// validated here and then discarded; only the gateway token is charged.
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"` // MM/YY
	CVV    string `json:"cvv"`
}

// PaymentRequest asks to settle (part of) a payment obligation.
type PaymentRequest struct {
	PaymentID   string       `json:"payment_id"`
	Amount      int64        `json:"amount"` // minor units
	Method      string       `json:"method"`
	MethodToken string       `json:"method_token,omitempty"`
	Card        *CardDetails `json:"card,omitempty"`
}

// PaymentOutcome is what the handler renders after a successful charge.
type PaymentOutcome struct {
	Payment       models.Payment       `json:"payment"`
	Status        billing.StatusResult `json:"status"`
	TransactionID string               `json:"transaction_id"`
	Receipt       string               `json:"receipt"`
}

// PaymentService orchestrates a rent payment: billing validation, the
// gateway charge, the status write-back and the follow-up records
// (audit entry, notification, event). The arithmetic itself lives in the
// billing package.
type PaymentService struct {
	Payments      *store.PaymentStore
	Notifications *store.NotificationStore
	DB            *gorm.DB
	Charger       gateway.Charger
	Events        *events.Publisher
	Now           func() time.Time
}

func NewPaymentService(db *gorm.DB, charger gateway.Charger, pub *events.Publisher) *PaymentService {
	return &PaymentService{
		Payments:      store.NewPaymentStore(db),
		Notifications: store.NewNotificationStore(db),
		DB:            db,
		Charger:       charger,
		Events:        pub,
		Now:           time.Now,
	}
}

// Validate maps billing validation failures onto per-field violation codes.
// Card fields are only checked for card methods and only when supplied.
func (s *PaymentService) Validate(req PaymentRequest, due models.Payment) validation.Violations {
	v := validation.Violations{}
	if err := billing.ValidateAmount(req.Amount, due.Amount); err != nil {
		v.Add("amount", err.Error())
	}
	if !models.ValidMethod(req.Method) {
		v.Add("method", "invalid_value")
	}
	cardMethod := req.Method == models.MethodCreditCard || req.Method == models.MethodDebitCard
	if cardMethod && req.Card != nil {
		now := s.Now()
		if err := billing.ValidateCardNumber(req.Card.Number); err != nil {
			v.Add("card.number", err.Error())
		}
		if err := billing.ValidateExpiry(req.Card.Expiry, now); err != nil {
			v.Add("card.expiry", err.Error())
		}
		if err := billing.ValidateCVV(req.Card.CVV); err != nil {
			v.Add("card.cvv", err.Error())
		}
	}
	if cardMethod && req.MethodToken == "" {
		v.Add("method_token", "required")
	}
	return v
}

// ProcessPayment runs the full flow. Validation failures come back as
// violations; a declined charge is ErrChargeDeclined with the gateway's
// reason wrapped in.
func (s *PaymentService) ProcessPayment(ctx context.Context, tenant models.Tenant, req PaymentRequest) (PaymentOutcome, validation.Violations, error) {
	p, err := s.Payments.ByID(ctx, req.PaymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PaymentOutcome{}, nil, ErrPaymentNotFound
		}
		return PaymentOutcome{}, nil, err
	}
	if p.TenantID != tenant.ID {
		// do not leak other tenants' payment ids
		return PaymentOutcome{}, nil, ErrPaymentNotFound
	}
	if p.Status == models.PaymentStatusPaid {
		return PaymentOutcome{}, nil, ErrAlreadyPaid
	}

	if v := s.Validate(req, p); !v.Empty() {
		return PaymentOutcome{}, v, nil
	}

	res, err := s.Charger.Charge(ctx, req.Amount, "USD", req.MethodToken)
	if err != nil {
		metrics.IncPayment("error", req.Method)
		return PaymentOutcome{}, nil, fmt.Errorf("gateway charge: %w", err)
	}
	if !res.Success {
		metrics.IncPayment("declined", req.Method)
		s.publish(ctx, events.PaymentEvent{
			Type: events.TypePaymentFailed, PaymentID: p.ID, TenantID: p.TenantID,
			Amount: req.Amount, Method: req.Method, Reason: res.Err, OccurredAt: s.Now(),
		})
		return PaymentOutcome{}, nil, fmt.Errorf("%w: %s", ErrChargeDeclined, res.Err)
	}

	status := models.PaymentStatusPaid
	if req.Amount < p.Amount {
		status = models.PaymentStatusPartial
	}
	now := s.Now()
	// paid_date marks full settlement only; a partial charge leaves it unset
	var paidAt *time.Time
	if status == models.PaymentStatusPaid {
		paidAt = &now
	}
	if err := s.Payments.UpdateStatus(ctx, p.ID, status, paidAt, res.TransactionID); err != nil {
		// the charge went through; surface the write failure loudly
		return PaymentOutcome{}, nil, fmt.Errorf("charge %s succeeded but status update failed: %w", res.TransactionID, err)
	}
	if req.Method != "" {
		if err := s.DB.WithContext(ctx).Model(&models.Payment{}).Where("id = ?", p.ID).Update("payment_method", req.Method).Error; err != nil {
			log.Printf("payment %s: record method: %v", p.ID, err)
		}
	}

	s.audit(ctx, tenant.UserID, p.ID, p.Status, status)
	s.notify(ctx, p.TenantID, req.Amount)
	metrics.IncPayment("settled", req.Method)
	s.publish(ctx, events.PaymentEvent{
		Type: events.TypePaymentSettled, PaymentID: p.ID, TenantID: p.TenantID,
		Amount: req.Amount, Method: req.Method, TransactionID: res.TransactionID, OccurredAt: now,
	})

	updated, err := s.Payments.ByID(ctx, p.ID)
	if err != nil {
		return PaymentOutcome{}, nil, err
	}
	return PaymentOutcome{
		Payment:       updated,
		Status:        billing.DeriveStatus(updated, now),
		TransactionID: res.TransactionID,
		Receipt:       billing.Receipt(updated),
	}, nil, nil
}

// WithStatuses decorates payments with their derived status and accrued
// late fees as of now.
func (s *PaymentService) WithStatuses(payments []models.Payment, asOf time.Time) []models.Payment {
	out := make([]models.Payment, len(payments))
	for i, p := range payments {
		res := billing.DeriveStatus(p, asOf)
		p.Status = res.Status
		p.LateFees = res.LateFees
		out[i] = p
	}
	return out
}

func (s *PaymentService) audit(ctx context.Context, userID uint, paymentID, oldStatus, newStatus string) {
	entry := models.AuditLog{
		UserID: userID, EntityType: "Payment", EntityID: paymentID,
		Action: "charge", Field: "status", OldValue: oldStatus, NewValue: newStatus,
	}
	if err := s.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("audit payment %s: %v", paymentID, err)
	}
}

func (s *PaymentService) notify(ctx context.Context, tenantID string, amount int64) {
	n := models.Notification{
		TenantID: tenantID,
		Title:    "Payment received",
		Message:  fmt.Sprintf("We received your payment of %s.", billing.FormatCurrency(amount, "USD")),
		Type:     "payment",
	}
	if err := s.Notifications.Create(ctx, &n); err != nil {
		log.Printf("notify tenant %s: %v", tenantID, err)
	}
}

func (s *PaymentService) publish(ctx context.Context, ev events.PaymentEvent) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(ctx, ev); err != nil {
		log.Printf("publish %s for payment %s: %v", ev.Type, ev.PaymentID, err)
	}
}
