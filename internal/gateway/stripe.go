package gateway

import (
	"context"
	"strings"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// StripeCharger confirms a PaymentIntent against an already-tokenized
// payment method. Tokenization happens on the client; raw card numbers
// never reach this server.
type StripeCharger struct{}

// NewStripeCharger configures the global stripe client key and returns a
// charger. Stripe's Go SDK keys the client off package state.
func NewStripeCharger(secretKey string) *StripeCharger {
	stripe.Key = secretKey
	return &StripeCharger{}
}

func (c *StripeCharger) Charge(ctx context.Context, amountMinor int64, currency, methodToken string) (ChargeResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amountMinor),
		Currency:      stripe.String(strings.ToLower(currency)),
		PaymentMethod: stripe.String(methodToken),
		Confirm:       stripe.Bool(true),
	}
	params.Context = ctx
	pi, err := paymentintent.New(params)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok {
			return ChargeResult{Success: false, Err: stripeErr.Msg}, nil
		}
		return ChargeResult{}, err
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return ChargeResult{Success: false, Err: "payment not completed: " + string(pi.Status)}, nil
	}
	return ChargeResult{Success: true, TransactionID: pi.ID}, nil
}
