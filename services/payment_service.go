package services

import (
	"context"
	"log"
	"time"

	"github.com/hostelhub/hostelhub_backend/utils"
)

// PaymentService stands in for a card payment gateway. It waits a fixed
// artificial round-trip delay and then approves the charge; the demo
// models no declines, timeouts or retries.
type PaymentService struct {
	delay time.Duration
}

// NewPaymentService creates a payment service with the given simulated
// gateway delay. Tests pass zero.
func NewPaymentService(delay time.Duration) *PaymentService {
	return &PaymentService{delay: delay}
}

// Charge simulates collecting the given amount and returns the minted
// payment reference. The context cancels the wait, which is the only
// failure the simulated gateway can produce.
func (ps *PaymentService) Charge(ctx context.Context, amount int) (string, error) {
	if ps.delay > 0 {
		select {
		case <-time.After(ps.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	reference := utils.NewPaymentReference()
	log.Printf("Simulated payment of ₦%s approved, reference %s", utils.FormatAmount(amount), reference)
	return reference, nil
}
