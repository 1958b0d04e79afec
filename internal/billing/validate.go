package billing

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Validation failures are sentinel errors so handlers can map them to
// per-field violation codes. None of these are ever panics or I/O errors.
var (
	ErrInvalidAmount       = errors.New("invalid_amount")
	ErrAmountTooHigh       = errors.New("amount_too_high")
	ErrInvalidCard         = errors.New("invalid_card")
	ErrInvalidExpiry       = errors.New("invalid_expiry")
	ErrInvalidCVV          = errors.New("invalid_cvv")
	ErrInvalidAmountFormat = errors.New("invalid_amount_format")
)

// minCardDigits rejects inputs too short to be a card number. Without it an
// empty string sums to 0 under Luhn and 0 % 10 == 0 would accept it.
const minCardDigits = 12

// ValidateAmount accepts a payment of amount against dueAmount (both minor
// units). Payments above 150% of the due amount are refused; the headroom
// covers late fees on top of the principal.
func ValidateAmount(amount, dueAmount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if 2*amount > 3*dueAmount {
		return ErrAmountTooHigh
	}
	return nil
}

// ValidateCardNumber runs the Luhn checksum over the digits of s, ignoring
// spaces and dashes.
func ValidateCardNumber(s string) error {
	digits := make([]int, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	if len(digits) < minCardDigits {
		return ErrInvalidCard
	}
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	if sum%10 != 0 {
		return ErrInvalidCard
	}
	return nil
}

// ValidateExpiry checks an "MM/YY" expiry against now. The current calendar
// month is still valid; anything strictly before it is expired.
func ValidateExpiry(s string, now time.Time) error {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return ErrInvalidExpiry
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return ErrInvalidExpiry
	}
	yy, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || yy < 0 || yy > 99 {
		return ErrInvalidExpiry
	}
	if month < 1 || month > 12 {
		return ErrInvalidExpiry
	}
	year := 2000 + yy
	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return ErrInvalidExpiry
	}
	return nil
}

// ValidateCVV accepts 3 or 4 ASCII digits.
func ValidateCVV(cvv string) error {
	if len(cvv) != 3 && len(cvv) != 4 {
		return ErrInvalidCVV
	}
	for _, r := range cvv {
		if r < '0' || r > '9' {
			return ErrInvalidCVV
		}
	}
	return nil
}
