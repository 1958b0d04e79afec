// Package gateway is the boundary to the hosted card processor. The portal
// only needs one operation from it: move money and report a transaction id.
package gateway

import "context"

// ChargeResult reports the outcome of a charge attempt. Err carries the
// gateway's decline reason when Success is false; transport failures come
// back as the error return instead.
type ChargeResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	Err           string `json:"error,omitempty"`
}

// Charger executes a charge of amount minor units against a tokenized
// payment method.
type Charger interface {
	Charge(ctx context.Context, amountMinor int64, currency, methodToken string) (ChargeResult, error)
}
