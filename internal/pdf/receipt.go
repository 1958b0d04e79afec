// Package pdf renders payment receipts as PDF documents for the documents
// tab and email attachments.
package pdf

import (
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jumaanebey/tbd-property-management/internal/billing"
	"github.com/jumaanebey/tbd-property-management/internal/models"
)

// Receipt renders the same fields as billing.Receipt into a one-page PDF.
func Receipt(p models.Payment) ([]byte, error) {
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

	m := maroto.New()
	m.AddRow(14, text.NewCol(12, "PAYMENT RECEIPT", props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}))
	addField(m, "Receipt ID", p.ID)
	addField(m, "Date", paid)
	addField(m, "Amount", billing.FormatCurrency(p.Amount, "USD"))
	addField(m, "Method", method)
	addField(m, "Transaction ID", txn)
	m.AddRow(12, text.NewCol(12, "Thank you for your payment!", props.Text{Size: 10, Align: align.Center, Top: 4}))

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func addField(m core.Maroto, label, value string) {
	m.AddRow(8,
		text.NewCol(4, label, props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(8, value, props.Text{Size: 10}),
	)
}
