// Package billing holds the pure payment computations of the portal:
// status derivation, late fees, card/amount validation, history
// aggregation, currency formatting and receipts. Nothing here touches the
// database or the card gateway; callers feed it Payment records and render
// what comes back.
package billing

import (
	"time"

	"github.com/jumaanebey/tbd-property-management/internal/models"
)

const (
	lateFeeRatePct   = 5  // per started 30-day period
	lateFeeCapPct    = 10 // of principal, total
	lateFeePeriodDay = 30
)

// StatusResult is the effective state of a payment at a point in time.
// DaysLate and LateFees are only set for overdue payments.
type StatusResult struct {
	Status   string `json:"status"`
	DaysLate int    `json:"days_late,omitempty"`
	LateFees int64  `json:"late_fees,omitempty"`
}

// DeriveStatus computes the effective status of p as of the given date.
// Stored "paid" and "partial" statuses are ground truth; a stored "pending"
// past its due date is reported as overdue with accrued late fees.
func DeriveStatus(p models.Payment, asOf time.Time) StatusResult {
	if p.Status == models.PaymentStatusPaid {
		return StatusResult{Status: models.PaymentStatusPaid}
	}
	if p.Status == models.PaymentStatusPartial {
		return StatusResult{Status: models.PaymentStatusPartial}
	}
	daysLate := DaysBetween(p.DueDate, asOf)
	if daysLate > 0 {
		return StatusResult{
			Status:   models.PaymentStatusOverdue,
			DaysLate: daysLate,
			LateFees: LateFee(p.Amount, daysLate),
		}
	}
	return StatusResult{Status: models.PaymentStatusPending}
}

// LateFee charges 5% of the principal per started 30-day period late,
// capped at 10% of the principal. Amounts are minor units; the math stays
// in integers. Day 1 and day 30 cost one period, day 31 costs two.
func LateFee(amount int64, daysLate int) int64 {
	if amount <= 0 || daysLate <= 0 {
		return 0
	}
	periods := int64((daysLate + lateFeePeriodDay - 1) / lateFeePeriodDay)
	fee := amount * lateFeeRatePct * periods / 100
	if cap := amount * lateFeeCapPct / 100; fee > cap {
		fee = cap
	}
	return fee
}

// DaysBetween returns whole calendar days from one date to another,
// negative when "to" precedes "from". Time-of-day is ignored.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
