package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// MockCharger simulates the card processor for development and tests:
// charges succeed at the configured rate with synthetic transaction ids.
// One charger instance serves all requests concurrently, so it draws from
// the locked top-level rand source instead of holding its own *rand.Rand.
type MockCharger struct {
	SuccessRate float64 // 0..1
}

func NewMockCharger(successRate float64) *MockCharger {
	if successRate <= 0 || successRate > 1 {
		successRate = 0.95
	}
	return &MockCharger{SuccessRate: successRate}
}

func (c *MockCharger) Charge(_ context.Context, _ int64, _, _ string) (ChargeResult, error) {
	if rand.Float64() > c.SuccessRate {
		return ChargeResult{Success: false, Err: "Payment declined. Please try again."}, nil
	}
	txn := fmt.Sprintf("mock_txn_%d_%06d", time.Now().UnixMilli(), rand.Intn(1000000))
	return ChargeResult{Success: true, TransactionID: txn}, nil
}
