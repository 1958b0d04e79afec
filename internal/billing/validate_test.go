package billing

import (
	"errors"
	"testing"
	"time"
)

func TestValidateAmount(t *testing.T) {
	cases := []struct {
		amount, due int64
		want        error
	}{
		{420000, 420000, nil},
		{630000, 420000, nil}, // exactly 150%
		{630001, 420000, ErrAmountTooHigh},
		{0, 420000, ErrInvalidAmount},
		{-100, 420000, ErrInvalidAmount},
	}
	for _, c := range cases {
		if err := ValidateAmount(c.amount, c.due); !errors.Is(err, c.want) {
			t.Fatalf("amount=%d due=%d: got %v want %v", c.amount, c.due, err, c.want)
		}
	}
}

func TestValidateCardNumberLuhn(t *testing.T) {
	if err := ValidateCardNumber("4242424242424242"); err != nil {
		t.Fatalf("known-good test number rejected: %v", err)
	}
	if err := ValidateCardNumber("4242 4242 4242 4242"); err != nil {
		t.Fatalf("spaced input rejected: %v", err)
	}
	if err := ValidateCardNumber("4242424242424241"); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("tampered number accepted: %v", err)
	}
}

func TestValidateCardNumberEmptyAndShort(t *testing.T) {
	// an empty digit string sums to 0, which would pass a naive Luhn check
	for _, s := range []string{"", "   ", "abc", "0", "00000000"} {
		if err := ValidateCardNumber(s); !errors.Is(err, ErrInvalidCard) {
			t.Fatalf("%q accepted: %v", s, err)
		}
	}
}

func TestValidateExpiry(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		in   string
		want error
	}{
		{"01/24", ErrInvalidExpiry}, // expired
		{"05/24", ErrInvalidExpiry},
		{"06/24", nil}, // current month still valid
		{"12/24", nil},
		{"01/25", nil},
		{"13/25", ErrInvalidExpiry},
		{"00/25", ErrInvalidExpiry},
		{"0624", ErrInvalidExpiry},
		{"aa/bb", ErrInvalidExpiry},
		{"", ErrInvalidExpiry},
	}
	for _, c := range cases {
		if err := ValidateExpiry(c.in, now); !errors.Is(err, c.want) {
			t.Fatalf("%q: got %v want %v", c.in, err, c.want)
		}
	}
	// current month relative to an earlier clock
	early := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if err := ValidateExpiry("01/24", early); err != nil {
		t.Fatalf("01/24 at 2024-01-15 should be valid: %v", err)
	}
}

func TestValidateCVV(t *testing.T) {
	for _, ok := range []string{"123", "0000"} {
		if err := ValidateCVV(ok); err != nil {
			t.Fatalf("%q rejected: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "12", "12345", "12a", "ab3"} {
		if err := ValidateCVV(bad); !errors.Is(err, ErrInvalidCVV) {
			t.Fatalf("%q accepted: %v", bad, err)
		}
	}
}
