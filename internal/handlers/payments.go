package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/jumaanebey/tbd-property-management/httpx"
	"github.com/jumaanebey/tbd-property-management/internal/billing"
	"github.com/jumaanebey/tbd-property-management/internal/models"
	"github.com/jumaanebey/tbd-property-management/internal/pdf"
	"github.com/jumaanebey/tbd-property-management/internal/services"
	"github.com/jumaanebey/tbd-property-management/internal/store"
)

type PaymentHandler struct {
	Tenants  *store.TenantStore
	Payments *store.PaymentStore
	Svc      *services.PaymentService
}

func NewPaymentHandler(db *gorm.DB, svc *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		Tenants:  store.NewTenantStore(db),
		Payments: store.NewPaymentStore(db),
		Svc:      svc,
	}
}

// List: GET /api/payments[?months=N] – statuses and late fees are derived
// against today, not read from storage.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	tn, ok := requireTenant(w, r, h.Tenants)
	if !ok {
		return
	}
	var payments []models.Payment
	var err error
	if v := r.URL.Query().Get("months"); v != "" {
		months, convErr := strconv.Atoi(v)
		if convErr != nil || months <= 0 || months > 120 {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_months", nil)
			return
		}
		payments, err = h.Payments.History(r.Context(), tn.ID, months)
	} else {
		payments, err = h.Payments.GetPayments(r.Context(), tn.ID)
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_payments", nil)
		return
	}
	decorated := h.Svc.WithStatuses(payments, h.Svc.Now())
	httpx.JSON(w, http.StatusOK, map[string]any{"items": decorated, "total": len(decorated)})
}

// Summary: GET /api/payments/summary
func (h *PaymentHandler) Summary(w http.ResponseWriter, r *http.Request) {
	tn, ok := requireTenant(w, r, h.Tenants)
	if !ok {
		return
	}
	payments, err := h.Payments.GetPayments(r.Context(), tn.ID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_payments", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, billing.Summarize(payments, h.Svc.Now()))
}

// Pay: POST /api/payments/pay
func (h *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	tn, ok := requireTenant(w, r, h.Tenants)
	if !ok {
		return
	}
	var req services.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	out, violations, err := h.Svc.ProcessPayment(r.Context(), tn, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPaymentNotFound):
			httpx.JSONError(w, http.StatusNotFound, "payment_not_found", nil)
		case errors.Is(err, services.ErrAlreadyPaid):
			httpx.JSONError(w, http.StatusConflict, "already_paid", nil)
		case errors.Is(err, services.ErrChargeDeclined):
			httpx.JSONError(w, http.StatusPaymentRequired, "payment_declined", err.Error())
		default:
			httpx.JSONError(w, http.StatusBadGateway, "charge_failed", nil)
		}
		return
	}
	if !violations.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", violations)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Receipt: GET /api/payments/receipt?id=...&format=text|pdf
func (h *PaymentHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	tn, ok := requireTenant(w, r, h.Tenants)
	if !ok {
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	p, err := h.Payments.ByID(r.Context(), id)
	if err != nil || p.TenantID != tn.ID {
		httpx.JSONError(w, http.StatusNotFound, "payment_not_found", nil)
		return
	}
	if r.URL.Query().Get("format") == "pdf" {
		body, err := pdf.Receipt(p)
		if err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "receipt_failed", nil)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="receipt-`+p.ID+`.pdf"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		return
	}
	httpx.Text(w, http.StatusOK, billing.Receipt(p))
}
