package billing

import (
	"fmt"
	"strings"

	"github.com/jumaanebey/tbd-property-management/internal/models"
)

// Receipt renders a deterministic plain-text receipt for a payment.
// Missing optional fields print as "N/A".
func Receipt(p models.Payment) string {
	paid := "N/A"
	if p.PaidDate != nil {
		paid = p.PaidDate.Format("2006-01-02")
	}
	method := p.PaymentMethod
	if method == "" {
		method = "N/A"
	}
	txn := p.TransactionID
	if txn == "" {
		txn = "N/A"
	}
	var b strings.Builder
	b.WriteString("PAYMENT RECEIPT\n\n")
	fmt.Fprintf(&b, "Receipt ID: %s\n", p.ID)
	fmt.Fprintf(&b, "Date: %s\n", paid)
	fmt.Fprintf(&b, "Amount: %s\n", FormatCurrency(p.Amount, "USD"))
	fmt.Fprintf(&b, "Method: %s\n", method)
	fmt.Fprintf(&b, "Transaction ID: %s\n\n", txn)
	b.WriteString("Thank you for your payment!\n")
	return b.String()
}
