package billing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// groupPrinter inserts en-US thousands separators on %d.
var groupPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders minor units as a display string, e.g. 420000 ->
// "$4,200.00". Internal accounting never goes through this; the division by
// 100 happens only here at the display boundary.
func FormatCurrency(minor int64, code string) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	major, cents := minor/100, minor%100
	return fmt.Sprintf("%s%s%s.%02d", sign, currencySymbol(code), groupPrinter.Sprintf("%d", major), cents)
}

func currencySymbol(code string) string {
	switch strings.ToUpper(code) {
	case "", "USD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	default:
		return strings.ToUpper(code) + " "
	}
}

// ParseCurrency turns user input like "$4,200.00" into minor units,
// stripping everything except digits, the decimal point and a leading
// minus. Returns ErrInvalidAmountFormat when nothing numeric remains.
func ParseCurrency(s string) (int64, error) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, ErrInvalidAmountFormat
	}
	return int64(math.Round(f * 100)), nil
}
