package ports

import (
	"context"

	"github.com/pixelplot/ShootBooker/internal/domain"
)

type PaymentProvider interface {
	// Charge runs an immediate off-session charge and returns the payment
	// transaction identifier.
	Charge(ctx context.Context, in domain.ChargeInput) (string, error)
	// Refund refunds part or all of a prior charge and returns the refund
	// transaction identifier.
	Refund(ctx context.Context, paymentIntentID string, amountPence int64) (string, error)
	// CreateCheckout creates a hosted checkout session for deferred
	// collection.
	CreateCheckout(ctx context.Context, in domain.CheckoutInput) (*domain.CheckoutSession, error)
}
