package payment

import (
	"context"
	"fmt"

	"github.com/pixelplot/ShootBooker/internal/domain"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// StripeProvider wraps the three payment primitives the booking lifecycle
// needs: immediate off-session charge, refund, and hosted checkout. Payment
// calls are never retried; a failed call surfaces to the caller, which flags
// the booking for manual review.
type StripeProvider struct {
	api        *client.API
	currency   string
	successURL string
	cancelURL  string
}

func NewStripeProvider(secretKey, currency, successURL, cancelURL string) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeProvider{
		api:        api,
		currency:   currency,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

func (p *StripeProvider) Charge(ctx context.Context, in domain.ChargeInput) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		Amount:        stripe.Int64(in.AmountPence),
		Currency:      stripe.String(p.pickCurrency(in.Currency)),
		PaymentMethod: stripe.String(in.PaymentMethodID),
		Confirm:       stripe.Bool(true),
		OffSession:    stripe.Bool(true),
	}
	if in.CustomerID != "" {
		params.Customer = stripe.String(in.CustomerID)
	}
	if in.Description != "" {
		params.Description = stripe.String(in.Description)
	}
	params.AddMetadata("booking_ref", in.BookingRef)

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	return pi.ID, nil
}

func (p *StripeProvider) Refund(ctx context.Context, paymentIntentID string, amountPence int64) (string, error) {
	params := &stripe.RefundParams{
		Params:        stripe.Params{Context: ctx},
		PaymentIntent: stripe.String(paymentIntentID),
	}
	if amountPence > 0 {
		params.Amount = stripe.Int64(amountPence)
	}

	ref, err := p.api.Refunds.New(params)
	if err != nil {
		return "", fmt.Errorf("create refund: %w", err)
	}

	return ref.ID, nil
}

func (p *StripeProvider) CreateCheckout(ctx context.Context, in domain.CheckoutInput) (*domain.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Params:     stripe.Params{Context: ctx},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(p.successURL),
		CancelURL:  stripe.String(p.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(p.pickCurrency(in.Currency)),
				UnitAmount: stripe.Int64(in.AmountPence),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(in.ProductName),
				},
			},
		}},
	}
	if in.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(in.CustomerEmail)
	}
	params.AddMetadata("booking_ref", in.BookingRef)
	params.AddMetadata("kind", string(in.Kind))

	sess, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return &domain.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

func (p *StripeProvider) pickCurrency(c string) string {
	if c != "" {
		return c
	}
	return p.currency
}
