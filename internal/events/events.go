// Package events publishes payment lifecycle events to Kafka so downstream
// consumers (reporting, notifications) can react without polling the
// database. Publishing is best effort and disabled when no brokers are
// configured.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	TypePaymentSettled = "payment.settled"
	TypePaymentFailed  = "payment.failed"
)

// PaymentEvent is the wire shape of one payment outcome.
type PaymentEvent struct {
	Type          string    `json:"type"`
	PaymentID     string    `json:"payment_id"`
	TenantID      string    `json:"tenant_id"`
	Amount        int64     `json:"amount"` // minor units
	Method        string    `json:"method,omitempty"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher returns nil when brokers is empty; callers treat a nil
// publisher as a no-op.
func NewPublisher(brokers []string, topic string) *Publisher {
	if len(brokers) == 0 {
		return nil
	}
	return &Publisher{writer: &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}}
}

// Publish writes one event keyed by payment id.
func (p *Publisher) Publish(ctx context.Context, ev PaymentEvent) error {
	if p == nil {
		return nil
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(ev.PaymentID), Value: payload})
}

// Close releases the underlying writer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
