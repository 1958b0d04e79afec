package billing

import (
	"math"
	"time"

	"github.com/jumaanebey/tbd-property-management/internal/models"
)

// Summary aggregates a payment history. All totals are minor units;
// AveragePaymentTime is whole days between due date and settlement,
// averaged over paid payments that have a paid date.
type Summary struct {
	TotalPaid          int64 `json:"total_paid"`
	TotalPending       int64 `json:"total_pending"`
	TotalOverdue       int64 `json:"total_overdue"`
	OnTimePayments     int   `json:"on_time_payments"`
	LatePayments       int   `json:"late_payments"`
	AveragePaymentTime int   `json:"average_payment_time"`
}

// Summarize derives each payment's status as of the given date and
// accumulates totals in a single pass. The input is not mutated. A paid
// payment with no recorded paid date counts toward TotalPaid but toward
// neither the on-time nor the late counter.
func Summarize(payments []models.Payment, asOf time.Time) Summary {
	var s Summary
	settled := 0
	totalDays := 0
	for _, p := range payments {
		switch DeriveStatus(p, asOf).Status {
		case models.PaymentStatusPaid:
			s.TotalPaid += p.Amount
			if p.PaidDate != nil {
				diff := DaysBetween(p.DueDate, *p.PaidDate)
				if diff <= 0 {
					s.OnTimePayments++
				} else {
					s.LatePayments++
				}
				if diff < 0 {
					diff = -diff
				}
				totalDays += diff
				settled++
			}
		case models.PaymentStatusPending:
			s.TotalPending += p.Amount
		case models.PaymentStatusOverdue:
			s.TotalOverdue += p.Amount
		}
	}
	if settled > 0 {
		s.AveragePaymentTime = int(math.Round(float64(totalDays) / float64(settled)))
	}
	return s
}
